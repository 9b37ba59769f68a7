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

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// ErrListingNotFound is returned when a marketplace listing id does not exist.
var ErrListingNotFound = errors.New("marketplace listing not found")

// MarketplaceRepository describes persistence operations for marketplace listings.
type MarketplaceRepository interface {
	List(ctx context.Context, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error)
	Create(ctx context.Context, listing *entity.MarketplaceListing) error
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXMarketplaceRepository implements MarketplaceRepository using pgx.
type PGXMarketplaceRepository struct {
	pool pgxPool
}

// NewPGXMarketplaceRepository wires a pgx backed repository.
func NewPGXMarketplaceRepository(pool *pgxpool.Pool) *PGXMarketplaceRepository {
	return &PGXMarketplaceRepository{pool: pool}
}

const listingColumns = `
            m.id, m.title, m.description, m.price, m.currency, m.condition, m.status,
            m.category_id, m.country_id, m.city_id, m.seller_id, m.contact_phone, m.images,
            m.created_at, m.updated_at`

// List retrieves listings in the coarse scope of the filter, newest first.
func (r *PGXMarketplaceRepository) List(ctx context.Context, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + listingColumns + `
        FROM marketplace_listings m
        LEFT JOIN countries co ON co.id = m.country_id
        LEFT JOIN categories c ON c.id = m.category_id
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("m.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Country != "" {
		clauses = append(clauses, fmt.Sprintf("(LOWER(co.code) = LOWER($%d) OR co.slug = LOWER($%d))", idx, idx))
		args = append(args, filter.Country)
		idx++
	}
	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("(c.slug = LOWER($%d) OR c.id::text = $%d)", idx, idx))
		args = append(args, filter.Category)
		idx++
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY m.created_at DESC, m.id")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list marketplace listings: %w", err)
	}
	defer rows.Close()

	var listings []entity.MarketplaceListing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan marketplace row: %w", err)
		}
		listings = append(listings, *listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate marketplace listings: %w", err)
	}
	return listings, nil
}

// Get fetches one listing.
func (r *PGXMarketplaceRepository) Get(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error) {
	listing, err := scanListing(r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM marketplace_listings m WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("get marketplace listing: %w", err)
	}
	return listing, nil
}

// Create inserts a listing and fills its generated columns.
func (r *PGXMarketplaceRepository) Create(ctx context.Context, listing *entity.MarketplaceListing) error {
	if listing == nil {
		return fmt.Errorf("marketplace listing payload is nil")
	}

	err := r.pool.QueryRow(ctx, `
        INSERT INTO marketplace_listings (
            title, description, price, currency, condition, status, category_id,
            country_id, city_id, seller_id, contact_phone, images
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`,
		listing.Title,
		stringOrNil(listing.Description),
		listing.Price,
		listing.Currency,
		listing.Condition,
		string(listing.Status),
		uuidOrNil(listing.CategoryID),
		uuidOrNil(listing.CountryID),
		uuidOrNil(listing.CityID),
		uuidOrNil(listing.SellerID),
		stringOrNil(listing.ContactPhone),
		stringSliceOrEmpty(listing.Images),
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return fmt.Errorf("insert marketplace listing: %w", err)
	}
	return nil
}

// SetStatus changes the status of a listing.
func (r *PGXMarketplaceRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE marketplace_listings SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("set marketplace status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

// Delete removes a listing.
func (r *PGXMarketplaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM marketplace_listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete marketplace listing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*entity.MarketplaceListing, error) {
	var (
		m            entity.MarketplaceListing
		description  sql.NullString
		status       string
		categoryID   uuid.NullUUID
		countryID    uuid.NullUUID
		cityID       uuid.NullUUID
		sellerID     uuid.NullUUID
		contactPhone sql.NullString
	)

	if err := row.Scan(
		&m.ID,
		&m.Title,
		&description,
		&m.Price,
		&m.Currency,
		&m.Condition,
		&status,
		&categoryID,
		&countryID,
		&cityID,
		&sellerID,
		&contactPhone,
		&m.Images,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.Description = nullStringToPtr(description)
	m.Status = entity.ListingStatus(status)
	m.CategoryID = nullUUIDToPtr(categoryID)
	m.CountryID = nullUUIDToPtr(countryID)
	m.CityID = nullUUIDToPtr(cityID)
	m.SellerID = nullUUIDToPtr(sellerID)
	m.ContactPhone = nullStringToPtr(contactPhone)
	if m.Images == nil {
		m.Images = []string{}
	}

	return &m, nil
}
