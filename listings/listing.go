package listings

import (
	"time"

	"github.com/ggwhite/go-masker"
)

var (
	Types = []string{"adozione", "stallo", "segnalazione"}
	Sexes = []string{"maschio", "femmina", "sconosciuto"}
)

// Listing is a published classified as stored by the listing sources.
// PriceAmount is nil for "price on request".
type Listing struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ListingType     string    `json:"listingType"`
	PriceAmount     *float64  `json:"priceAmount"`
	Currency        string    `json:"currency"`
	AgeText         string    `json:"ageText"`
	Sex             string    `json:"sex"`
	Breed           string    `json:"breed"`
	RegionID        string    `json:"regionId"`
	ProvinceID      string    `json:"provinceId"`
	ComuneID        string    `json:"comuneId"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	PrimaryImageURL *string   `json:"primaryImageUrl,omitempty"`
	PublishedAt     time.Time `json:"publishedAt"`
}

// Summary is the listing as rendered in a result grid.
type Summary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ListingType     string    `json:"listingType"`
	PriceAmount     *float64  `json:"priceAmount"`
	Currency        string    `json:"currency"`
	AgeText         string    `json:"ageText"`
	Sex             string    `json:"sex"`
	Breed           string    `json:"breed"`
	ComuneID        string    `json:"comuneId"`
	ComuneName      string    `json:"comuneName,omitempty"`
	ProvinceID      string    `json:"provinceId"`
	ProvinceCode    string    `json:"provinceCode,omitempty"`
	RegionID        string    `json:"regionId"`
	RegionName      string    `json:"regionName,omitempty"`
	ContactPhone    string    `json:"contactPhone,omitempty"`
	PrimaryImageURL *string   `json:"primaryImageUrl,omitempty"`
	PublishedAt     time.Time `json:"publishedAt"`
}

// Place carries the display names of a listing's location.
type Place struct {
	ComuneName   string
	ProvinceCode string
	RegionName   string
}

const descriptionExcerpt = 240

// Summarize builds the grid representation. The contact phone is masked,
// full contact details are only shown on the listing page.
func Summarize(l Listing, place Place) Summary {
	s := Summary{
		ID:              l.ID,
		Title:           l.Title,
		Description:     excerpt(l.Description, descriptionExcerpt),
		ListingType:     l.ListingType,
		PriceAmount:     l.PriceAmount,
		Currency:        l.Currency,
		AgeText:         l.AgeText,
		Sex:             l.Sex,
		Breed:           l.Breed,
		ComuneID:        l.ComuneID,
		ComuneName:      place.ComuneName,
		ProvinceID:      l.ProvinceID,
		ProvinceCode:    place.ProvinceCode,
		RegionID:        l.RegionID,
		RegionName:      place.RegionName,
		PrimaryImageURL: l.PrimaryImageURL,
		PublishedAt:     l.PublishedAt,
	}
	if l.ContactPhone != "" {
		s.ContactPhone = masker.Telephone(l.ContactPhone)
	}
	return s
}

func excerpt(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
