package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrLocationExists  = errors.New("location already exists")
)

// LocationsRepository persists countries, cities and categories.
type LocationsRepository interface {
	ListCountries(ctx context.Context) ([]entity.Country, error)
	GetCountry(ctx context.Context, codeOrSlug string) (*entity.Country, error)
	CreateCountry(ctx context.Context, country *entity.Country) error
	ListCities(ctx context.Context, countryID *uuid.UUID) ([]entity.City, error)
	CreateCity(ctx context.Context, city *entity.City) error
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) error
}

// PGXLocationsRepository implements LocationsRepository using pgx.
type PGXLocationsRepository struct {
	pool pgxPool
}

// NewPGXLocationsRepository wires a pgx backed repository.
func NewPGXLocationsRepository(pool *pgxpool.Pool) *PGXLocationsRepository {
	return &PGXLocationsRepository{pool: pool}
}

const countryColumns = `id, code, name, slug, flag_url, created_at`

func scanCountry(row pgx.Row) (*entity.Country, error) {
	var (
		country entity.Country
		flagURL sql.NullString
	)
	if err := row.Scan(&country.ID, &country.Code, &country.Name, &country.Slug, &flagURL, &country.CreatedAt); err != nil {
		return nil, err
	}
	country.FlagURL = nullStringToPtr(flagURL)
	return &country, nil
}

// ListCountries returns all countries ordered by name.
func (r *PGXLocationsRepository) ListCountries(ctx context.Context) ([]entity.Country, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+countryColumns+` FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var countries []entity.Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country row: %w", err)
		}
		countries = append(countries, *country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return countries, nil
}

// GetCountry looks a country up by id, ISO code or slug.
func (r *PGXLocationsRepository) GetCountry(ctx context.Context, codeOrSlug string) (*entity.Country, error) {
	key := strings.TrimSpace(codeOrSlug)
	country, err := scanCountry(r.pool.QueryRow(ctx, `
        SELECT `+countryColumns+`
        FROM countries
        WHERE id::text = LOWER($1) OR LOWER(code) = LOWER($1) OR slug = LOWER($1)
        LIMIT 1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return country, nil
}

// CreateCountry inserts a country.
func (r *PGXLocationsRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO countries (code, name, slug, flag_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`,
		country.Code, country.Name, country.Slug, stringOrNil(country.FlagURL),
	).Scan(&country.ID, &country.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: %v", ErrLocationExists, err)
		}
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

// ListCities returns the cities of a country, or all cities when countryID is nil.
func (r *PGXLocationsRepository) ListCities(ctx context.Context, countryID *uuid.UUID) ([]entity.City, error) {
	query := `SELECT id, country_id, name, slug, latitude, longitude, created_at FROM cities`
	var args []any
	if countryID != nil {
		query += ` WHERE country_id = $1`
		args = append(args, *countryID)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var cities []entity.City
	for rows.Next() {
		var (
			city entity.City
			lat  sql.NullFloat64
			lng  sql.NullFloat64
		)
		if err := rows.Scan(&city.ID, &city.CountryID, &city.Name, &city.Slug, &lat, &lng, &city.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		city.Latitude = nullFloatToPtr(lat)
		city.Longitude = nullFloatToPtr(lng)
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cities: %w", err)
	}
	return cities, nil
}

// CreateCity inserts a city.
func (r *PGXLocationsRepository) CreateCity(ctx context.Context, city *entity.City) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO cities (country_id, name, slug, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`,
		city.CountryID, city.Name, city.Slug, floatOrNil(city.Latitude), floatOrNil(city.Longitude),
	).Scan(&city.ID, &city.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: %v", ErrLocationExists, err)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return fmt.Errorf("insert city: %w", err)
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (r *PGXLocationsRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, parent_id, slug, name, icon, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var (
			category entity.Category
			parentID uuid.NullUUID
			icon     sql.NullString
		)
		if err := rows.Scan(&category.ID, &parentID, &category.Slug, &category.Name, &icon, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		category.ParentID = nullUUIDToPtr(parentID)
		category.Icon = nullStringToPtr(icon)
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category.
func (r *PGXLocationsRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO categories (parent_id, slug, name, icon)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`,
		uuidOrNil(category.ParentID), category.Slug, category.Name, stringOrNil(category.Icon),
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: %v", ErrLocationExists, err)
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}
