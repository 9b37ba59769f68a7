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

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrSlugDuplicate    = errors.New("slug already exists")
)

// BusinessesRepository describes persistence operations for businesses.
type BusinessesRepository interface {
	List(ctx context.Context, filter dto.BusinessListFilter) ([]entity.Business, error)
	Get(ctx context.Context, idOrSlug string) (*entity.Business, error)
	Create(ctx context.Context, business *entity.Business) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBusinessRequest) (*entity.Business, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpsertBusinesses(ctx context.Context, records []BulkUpsertBusinessInput) (BulkUpsertResult, error)
	RecordClick(ctx context.Context, click entity.BusinessClick) error
	CountActiveByCountry(ctx context.Context, countryID uuid.UUID) (int, error)
}

// BulkUpsertBusinessInput is one row of a CSV import. Category, country and
// city are referenced by slug, code and name.
type BulkUpsertBusinessInput struct {
	Slug         string
	Name         string
	Description  *string
	CategorySlug *string
	CountryCode  *string
	CityName     *string
	Address      *string
	Phone        *string
	Email        *string
	Website      *string
	Latitude     *float64
	Longitude    *float64
	IsPremium    bool
	IsVerified   bool
	Status       entity.ListingStatus
}

// BulkUpsertResult summarises the number of rows inserted or updated.
type BulkUpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

// PGXBusinessesRepository implements BusinessesRepository using pgx.
type PGXBusinessesRepository struct {
	pool pgxPool
}

// NewPGXBusinessesRepository wires a pgx backed repository.
func NewPGXBusinessesRepository(pool *pgxpool.Pool) *PGXBusinessesRepository {
	return &PGXBusinessesRepository{pool: pool}
}

const businessSelect = `
        SELECT
            b.id,
            b.slug,
            b.name,
            b.description,
            b.category_id,
            c.name,
            c.slug,
            b.country_id,
            co.code,
            b.city_id,
            ci.name,
            b.address,
            b.phone,
            b.email,
            b.website,
            b.whatsapp,
            b.latitude,
            b.longitude,
            b.logo_url,
            b.images,
            b.is_premium,
            b.is_verified,
            b.is_sponsored_ad,
            b.status,
            b.owner_id,
            COALESCE((
                SELECT array_agg(r.rating)
                FROM reviews r
                WHERE r.business_id = b.id AND r.status = 'approved'
            ), '{}')::int[] AS ratings,
            b.created_at,
            b.updated_at
        FROM businesses b
        LEFT JOIN categories c ON c.id = b.category_id
        LEFT JOIN countries co ON co.id = b.country_id
        LEFT JOIN cities ci ON ci.id = b.city_id
    `

// List retrieves businesses in the coarse scope of the filter, newest first.
// Text, rating, flag and distance filters are applied by the caller.
func (r *PGXBusinessesRepository) List(ctx context.Context, filter dto.BusinessListFilter) ([]entity.Business, error) {
	query := strings.Builder{}
	query.WriteString(businessSelect)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Country != "" {
		clauses = append(clauses, fmt.Sprintf("(LOWER(co.code) = LOWER($%d) OR co.slug = LOWER($%d))", idx, idx))
		args = append(args, filter.Country)
		idx++
	}
	if filter.City != "" {
		clauses = append(clauses, fmt.Sprintf("(ci.slug = LOWER($%d) OR LOWER(ci.name) = LOWER($%d))", idx, idx))
		args = append(args, filter.City)
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
	query.WriteString(" ORDER BY b.created_at DESC, b.id")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// Get fetches a business by id or slug.
func (r *PGXBusinessesRepository) Get(ctx context.Context, idOrSlug string) (*entity.Business, error) {
	var (
		clause string
		arg    any
	)
	if id, err := uuid.Parse(idOrSlug); err == nil {
		clause, arg = "b.id = $1", id
	} else {
		clause, arg = "b.slug = LOWER($1)", strings.TrimSpace(idOrSlug)
	}

	business, err := scanBusiness(r.pool.QueryRow(ctx, businessSelect+" WHERE "+clause, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return business, nil
}

// Create inserts a business and fills its generated columns.
func (r *PGXBusinessesRepository) Create(ctx context.Context, business *entity.Business) error {
	if business == nil {
		return fmt.Errorf("business payload is nil")
	}

	err := r.pool.QueryRow(ctx, `
        INSERT INTO businesses (
            slug, name, description, category_id, country_id, city_id,
            address, phone, email, website, whatsapp, latitude, longitude,
            logo_url, images, status, owner_id
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id, created_at, updated_at`,
		business.Slug,
		business.Name,
		stringOrNil(business.Description),
		uuidOrNil(business.CategoryID),
		uuidOrNil(business.CountryID),
		uuidOrNil(business.CityID),
		stringOrNil(business.Address),
		stringOrNil(business.Phone),
		stringOrNil(business.Email),
		stringOrNil(business.Website),
		stringOrNil(business.WhatsApp),
		floatOrNil(business.Latitude),
		floatOrNil(business.Longitude),
		stringOrNil(business.LogoURL),
		stringSliceOrEmpty(business.Images),
		string(business.Status),
		uuidOrNil(business.OwnerID),
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "businesses_slug_key") {
			return fmt.Errorf("%w: %v", ErrSlugDuplicate, err)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of req and returns the refreshed row.
func (r *PGXBusinessesRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBusinessRequest) (*entity.Business, error) {
	var (
		setClauses []string
		args       []any
		idx        = 1
	)
	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", stringOrNil(req.Description))
	}
	if req.CategoryID != nil {
		set("category_id", *req.CategoryID)
	}
	if req.CountryID != nil {
		set("country_id", *req.CountryID)
	}
	if req.CityID != nil {
		set("city_id", *req.CityID)
	}
	if req.Address != nil {
		set("address", stringOrNil(req.Address))
	}
	if req.Phone != nil {
		set("phone", stringOrNil(req.Phone))
	}
	if req.Email != nil {
		set("email", stringOrNil(req.Email))
	}
	if req.Website != nil {
		set("website", stringOrNil(req.Website))
	}
	if req.WhatsApp != nil {
		set("whatsapp", stringOrNil(req.WhatsApp))
	}
	if req.Latitude != nil {
		set("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		set("longitude", *req.Longitude)
	}
	if req.LogoURL != nil {
		set("logo_url", stringOrNil(req.LogoURL))
	}
	if req.Images != nil {
		set("images", req.Images)
	}
	if req.IsPremium != nil {
		set("is_premium", *req.IsPremium)
	}
	if req.IsVerified != nil {
		set("is_verified", *req.IsVerified)
	}
	if req.IsSponsoredAd != nil {
		set("is_sponsored_ad", *req.IsSponsoredAd)
	}

	if len(setClauses) > 0 {
		setClauses = append(setClauses, "updated_at = NOW()")
		args = append(args, id)
		query := fmt.Sprintf("UPDATE businesses SET %s WHERE id = $%d", strings.Join(setClauses, ", "), idx)

		cmd, err := r.pool.Exec(ctx, query, args...)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
			}
			return nil, fmt.Errorf("update business: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return nil, ErrBusinessNotFound
		}
	}

	return r.Get(ctx, id.String())
}

// SetStatus changes the moderation status of a business.
func (r *PGXBusinessesRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE businesses SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("set business status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

// Delete removes a business with its reviews and clicks.
func (r *PGXBusinessesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

const bulkUpsertBusinessSQL = `
        INSERT INTO businesses (
            slug, name, description, category_id, country_id, city_id,
            address, phone, email, website, latitude, longitude,
            is_premium, is_verified, status, updated_at
        ) VALUES (
            $1, $2, $3,
            (SELECT id FROM categories WHERE slug = LOWER($4::text)),
            (SELECT id FROM countries WHERE LOWER(code) = LOWER($5::text)),
            (SELECT ci.id FROM cities ci JOIN countries co ON co.id = ci.country_id
             WHERE LOWER(co.code) = LOWER($5::text) AND LOWER(ci.name) = LOWER($6::text) LIMIT 1),
            $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW()
        )
        ON CONFLICT (slug) DO UPDATE SET
            name = EXCLUDED.name,
            description = COALESCE(EXCLUDED.description, businesses.description),
            category_id = COALESCE(EXCLUDED.category_id, businesses.category_id),
            country_id = COALESCE(EXCLUDED.country_id, businesses.country_id),
            city_id = COALESCE(EXCLUDED.city_id, businesses.city_id),
            address = COALESCE(EXCLUDED.address, businesses.address),
            phone = COALESCE(EXCLUDED.phone, businesses.phone),
            email = COALESCE(EXCLUDED.email, businesses.email),
            website = COALESCE(EXCLUDED.website, businesses.website),
            latitude = COALESCE(EXCLUDED.latitude, businesses.latitude),
            longitude = COALESCE(EXCLUDED.longitude, businesses.longitude),
            is_premium = EXCLUDED.is_premium,
            is_verified = EXCLUDED.is_verified,
            updated_at = NOW()
        RETURNING xmax = 0;
    `

// BulkUpsertBusinesses persists an import batch keyed by slug in a single
// transaction. Existing rows keep their moderation status.
func (r *PGXBusinessesRepository) BulkUpsertBusinesses(ctx context.Context, records []BulkUpsertBusinessInput) (BulkUpsertResult, error) {
	var result BulkUpsertResult
	if len(records) == 0 {
		return result, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return result, fmt.Errorf("start bulk upsert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range records {
		status := record.Status
		if status == "" {
			status = entity.ListingStatusPending
		}

		var inserted bool
		err := tx.QueryRow(ctx, bulkUpsertBusinessSQL,
			record.Slug,
			record.Name,
			stringOrNil(record.Description),
			stringOrNil(record.CategorySlug),
			stringOrNil(record.CountryCode),
			stringOrNil(record.CityName),
			stringOrNil(record.Address),
			stringOrNil(record.Phone),
			stringOrNil(record.Email),
			stringOrNil(record.Website),
			floatOrNil(record.Latitude),
			floatOrNil(record.Longitude),
			record.IsPremium,
			record.IsVerified,
			string(status),
		).Scan(&inserted)
		if err != nil {
			return result, fmt.Errorf("bulk upsert business %q: %w", record.Slug, err)
		}

		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
		result.Total++
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit bulk upsert tx: %w", err)
	}

	return result, nil
}

// RecordClick appends an outbound interaction to the click log.
func (r *PGXBusinessesRepository) RecordClick(ctx context.Context, click entity.BusinessClick) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO business_clicks (business_id, kind, user_id, client_ip, user_agent)
        VALUES ($1, $2, $3, $4, $5)`,
		click.BusinessID,
		click.Kind,
		uuidOrNil(click.UserID),
		stringOrNil(&click.ClientIP),
		stringOrNil(&click.UserAgent),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrBusinessNotFound
		}
		return fmt.Errorf("record business click: %w", err)
	}
	return nil
}

// CountActiveByCountry counts the public businesses of a country.
func (r *PGXBusinessesRepository) CountActiveByCountry(ctx context.Context, countryID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM businesses WHERE country_id = $1 AND status = 'active'`, countryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count businesses: %w", err)
	}
	return count, nil
}

func scanBusinesses(rows pgx.Rows) ([]entity.Business, error) {
	var businesses []entity.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		businesses = append(businesses, *business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate businesses: %w", err)
	}
	return businesses, nil
}

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var (
		b            entity.Business
		description  sql.NullString
		categoryID   uuid.NullUUID
		categoryName sql.NullString
		categorySlug sql.NullString
		countryID    uuid.NullUUID
		countryCode  sql.NullString
		cityID       uuid.NullUUID
		cityName     sql.NullString
		address      sql.NullString
		phone        sql.NullString
		email        sql.NullString
		website      sql.NullString
		whatsapp     sql.NullString
		lat          sql.NullFloat64
		lng          sql.NullFloat64
		logoURL      sql.NullString
		status       string
		ownerID      uuid.NullUUID
		ratings      []int32
	)

	if err := row.Scan(
		&b.ID,
		&b.Slug,
		&b.Name,
		&description,
		&categoryID,
		&categoryName,
		&categorySlug,
		&countryID,
		&countryCode,
		&cityID,
		&cityName,
		&address,
		&phone,
		&email,
		&website,
		&whatsapp,
		&lat,
		&lng,
		&logoURL,
		&b.Images,
		&b.IsPremium,
		&b.IsVerified,
		&b.IsSponsoredAd,
		&status,
		&ownerID,
		&ratings,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Description = nullStringToPtr(description)
	b.CategoryID = nullUUIDToPtr(categoryID)
	b.CategoryName = nullStringToPtr(categoryName)
	b.CategorySlug = nullStringToPtr(categorySlug)
	b.CountryID = nullUUIDToPtr(countryID)
	b.CountryCode = nullStringToPtr(countryCode)
	b.CityID = nullUUIDToPtr(cityID)
	b.CityName = nullStringToPtr(cityName)
	b.Address = nullStringToPtr(address)
	b.Phone = nullStringToPtr(phone)
	b.Email = nullStringToPtr(email)
	b.Website = nullStringToPtr(website)
	b.WhatsApp = nullStringToPtr(whatsapp)
	b.Latitude = nullFloatToPtr(lat)
	b.Longitude = nullFloatToPtr(lng)
	b.LogoURL = nullStringToPtr(logoURL)
	b.Status = entity.ListingStatus(status)
	b.OwnerID = nullUUIDToPtr(ownerID)
	b.Ratings = int32sToInts(ratings)
	if b.Images == nil {
		b.Images = []string{}
	}

	return &b, nil
}
