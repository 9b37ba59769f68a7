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

// ErrEventNotFound is returned when an event id does not exist.
var ErrEventNotFound = errors.New("event not found")

// EventsRepository describes persistence operations for events.
type EventsRepository interface {
	List(ctx context.Context, filter dto.EventListFilter) ([]entity.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXEventsRepository implements EventsRepository using pgx.
type PGXEventsRepository struct {
	pool pgxPool
}

// NewPGXEventsRepository wires a pgx backed repository.
func NewPGXEventsRepository(pool *pgxpool.Pool) *PGXEventsRepository {
	return &PGXEventsRepository{pool: pool}
}

const eventColumns = `
            e.id, e.title, e.description, e.category, e.starts_at, e.ends_at,
            e.venue_name, e.venue_address, e.latitude, e.longitude, e.country_id, e.city_id,
            e.organizer_name, e.organizer_email, e.organizer_phone, e.ticket_url,
            e.is_free, e.price, e.currency, e.tags, e.image_url, e.status, e.created_by,
            e.created_at, e.updated_at`

// List retrieves events in the coarse scope of the filter, soonest first.
func (r *PGXEventsRepository) List(ctx context.Context, filter dto.EventListFilter) ([]entity.Event, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + eventColumns + `
        FROM events e
        LEFT JOIN countries co ON co.id = e.country_id
        LEFT JOIN cities ci ON ci.id = e.city_id
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("e.status = $%d", idx))
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
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY e.starts_at ASC, e.id")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Get fetches one event.
func (r *PGXEventsRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := scanEvent(r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events e WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Create inserts an event and fills its generated columns.
func (r *PGXEventsRepository) Create(ctx context.Context, event *entity.Event) error {
	if event == nil {
		return fmt.Errorf("event payload is nil")
	}

	err := r.pool.QueryRow(ctx, `
        INSERT INTO events (
            title, description, category, starts_at, ends_at, venue_name, venue_address,
            latitude, longitude, country_id, city_id, organizer_name, organizer_email,
            organizer_phone, ticket_url, is_free, price, currency, tags, image_url,
            status, created_by
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
        RETURNING id, created_at, updated_at`,
		event.Title,
		stringOrNil(event.Description),
		stringOrNil(event.Category),
		event.StartsAt,
		event.EndsAt,
		stringOrNil(event.VenueName),
		stringOrNil(event.VenueAddress),
		floatOrNil(event.Latitude),
		floatOrNil(event.Longitude),
		uuidOrNil(event.CountryID),
		uuidOrNil(event.CityID),
		stringOrNil(event.OrganizerName),
		stringOrNil(event.OrganizerEmail),
		stringOrNil(event.OrganizerPhone),
		stringOrNil(event.TicketURL),
		event.IsFree,
		floatOrNil(event.Price),
		stringOrNil(event.Currency),
		stringSliceOrEmpty(event.Tags),
		stringOrNil(event.ImageURL),
		string(event.Status),
		uuidOrNil(event.CreatedBy),
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrInvalidReference, err)
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of req and returns the refreshed row.
func (r *PGXEventsRepository) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (*entity.Event, error) {
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

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", stringOrNil(req.Description))
	}
	if req.Category != nil {
		set("category", stringOrNil(req.Category))
	}
	if req.StartsAt != nil {
		set("starts_at", *req.StartsAt)
	}
	if req.EndsAt != nil {
		set("ends_at", *req.EndsAt)
	}
	if req.VenueName != nil {
		set("venue_name", stringOrNil(req.VenueName))
	}
	if req.VenueAddress != nil {
		set("venue_address", stringOrNil(req.VenueAddress))
	}
	if req.TicketURL != nil {
		set("ticket_url", stringOrNil(req.TicketURL))
	}
	if req.Price != nil {
		set("price", *req.Price)
		set("is_free", *req.Price == 0)
	}
	if req.Tags != nil {
		set("tags", req.Tags)
	}
	if req.ImageURL != nil {
		set("image_url", stringOrNil(req.ImageURL))
	}

	if len(setClauses) == 0 {
		return r.Get(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE events e SET %s WHERE e.id = $%d RETURNING %s", strings.Join(setClauses, ", "), idx, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// SetStatus changes the moderation status of an event.
func (r *PGXEventsRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("set event status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete removes an event.
func (r *PGXEventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var (
		e              entity.Event
		description    sql.NullString
		category       sql.NullString
		endsAt         sql.NullTime
		venueName      sql.NullString
		venueAddress   sql.NullString
		lat            sql.NullFloat64
		lng            sql.NullFloat64
		countryID      uuid.NullUUID
		cityID         uuid.NullUUID
		organizerName  sql.NullString
		organizerEmail sql.NullString
		organizerPhone sql.NullString
		ticketURL      sql.NullString
		price          sql.NullFloat64
		currency       sql.NullString
		imageURL       sql.NullString
		status         string
		createdBy      uuid.NullUUID
	)

	if err := row.Scan(
		&e.ID,
		&e.Title,
		&description,
		&category,
		&e.StartsAt,
		&endsAt,
		&venueName,
		&venueAddress,
		&lat,
		&lng,
		&countryID,
		&cityID,
		&organizerName,
		&organizerEmail,
		&organizerPhone,
		&ticketURL,
		&e.IsFree,
		&price,
		&currency,
		&e.Tags,
		&imageURL,
		&status,
		&createdBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Description = nullStringToPtr(description)
	e.Category = nullStringToPtr(category)
	e.EndsAt = nullTimeToPtr(endsAt)
	e.VenueName = nullStringToPtr(venueName)
	e.VenueAddress = nullStringToPtr(venueAddress)
	e.Latitude = nullFloatToPtr(lat)
	e.Longitude = nullFloatToPtr(lng)
	e.CountryID = nullUUIDToPtr(countryID)
	e.CityID = nullUUIDToPtr(cityID)
	e.OrganizerName = nullStringToPtr(organizerName)
	e.OrganizerEmail = nullStringToPtr(organizerEmail)
	e.OrganizerPhone = nullStringToPtr(organizerPhone)
	e.TicketURL = nullStringToPtr(ticketURL)
	e.Price = nullFloatToPtr(price)
	e.Currency = nullStringToPtr(currency)
	e.ImageURL = nullStringToPtr(imageURL)
	e.Status = entity.ListingStatus(status)
	e.CreatedBy = nullUUIDToPtr(createdBy)
	if e.Tags == nil {
		e.Tags = []string{}
	}

	return &e, nil
}
