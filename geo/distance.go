package geo

import (
	"fmt"
	"math"
	"sort"
)

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle (haversine) distance between two points.
func DistanceKm(a, b Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// NearbyProvince is a province together with its distance from the origin.
type NearbyProvince struct {
	ProvinceID string  `json:"provinceId"`
	DistanceKm float64 `json:"distanceKm"`
}

// NearbyProvinces lists the provinces whose centroid lies within radiusKm of
// the centroid of areaID (a comune or a province), closest first. Equal
// distances are ordered by id.
func (idx *Index) NearbyProvinces(areaID string, radiusKm float64) ([]NearbyProvince, error) {
	origin, ok := idx.areas[areaID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, areaID)
	}
	if origin.Kind == KindRegion {
		return nil, fmt.Errorf("%w: nearby search needs a comune or a province, got region %s", ErrInvalidLocationIntent, areaID)
	}

	var out []NearbyProvince
	for _, a := range idx.areas {
		if a.Kind != KindProvince {
			continue
		}
		d := DistanceKm(origin.Centroid, a.Centroid)
		if d <= radiusKm {
			out = append(out, NearbyProvince{ProvinceID: a.ID, DistanceKm: d})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].ProvinceID < out[j].ProvinceID
	})

	return out, nil
}
