package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Emacore17/adottaungatto-it-sub001/geo"
	"github.com/Emacore17/adottaungatto-it-sub001/listings"
	"github.com/Emacore17/adottaungatto-it-sub001/search"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const statusPublished = "published"

var listingColumns = []string{
	"id",
	"title",
	"COALESCE(description, '')",
	"listing_type",
	"price_amount",
	"COALESCE(currency, 'EUR')",
	"COALESCE(age_text, '')",
	"COALESCE(sex, '')",
	"COALESCE(breed, '')",
	"region_id",
	"province_id",
	"comune_id",
	"COALESCE(contact_phone, '')",
	"primary_image_url",
	"published_at",
}

// Repository is the PostgreSQL listing source. Only published listings are
// visible to searches.
type Repository struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connStr string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Repository{
		pool: pool,
	}, nil
}

func (repo *Repository) Close() {
	repo.pool.Close()
}

func (repo *Repository) Ping(ctx context.Context) error {
	return repo.pool.Ping(ctx)
}

// Candidates pushes geography and price bounds down to SQL. Text filters
// are folded for diacritics, which the database collation does not do, so
// they stay with the matcher.
func (repo *Repository) Candidates(ctx context.Context, areas geo.AreaSet, filters search.Filters) ([]listings.Listing, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second*5)
		defer cancel()
	}

	q, args, err := candidatesQuery(areas, filters)
	if err != nil {
		return nil, fmt.Errorf("could not build listings query: %w", err)
	}

	rows, err := repo.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query listings: %w", err)
	}
	defer rows.Close()

	var results []listings.Listing
	for rows.Next() {
		var l listings.Listing
		err := rows.Scan(&l.ID,
			&l.Title,
			&l.Description,
			&l.ListingType,
			&l.PriceAmount,
			&l.Currency,
			&l.AgeText,
			&l.Sex,
			&l.Breed,
			&l.RegionID,
			&l.ProvinceID,
			&l.ComuneID,
			&l.ContactPhone,
			&l.PrimaryImageURL,
			&l.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan listing: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read listings: %w", err)
	}

	return results, nil
}

func candidatesQuery(areas geo.AreaSet, filters search.Filters) (string, []interface{}, error) {
	query := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"status": statusPublished})

	if !areas.All {
		query = query.Where(sq.Eq{"comune_id": areas.ComuneIDs()})
	}
	if filters.PriceMin != nil {
		query = query.Where(sq.GtOrEq{"price_amount": *filters.PriceMin})
	}
	if filters.PriceMax != nil {
		query = query.Where(sq.LtOrEq{"price_amount": *filters.PriceMax})
	}

	return query.ToSql()
}
