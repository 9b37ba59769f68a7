package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service/listing"
)

// EventsService handles the events calendar.
type EventsService struct {
	repo     repository.EventsRepository
	contacts *ContactNormalizer
	now      func() time.Time
}

// NewEventsService wires the events service.
func NewEventsService(repo repository.EventsRepository, contacts *ContactNormalizer) *EventsService {
	if contacts == nil {
		contacts = NewContactNormalizer("")
	}
	return &EventsService{repo: repo, contacts: contacts, now: time.Now}
}

// List returns one page of events.
func (s *EventsService) List(ctx context.Context, filter dto.EventListFilter) (dto.ListResponse[entity.Event], error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return dto.ListResponse[entity.Event]{}, invalidf("to must not precede from")
	}
	if filter.Now.IsZero() {
		filter.Now = s.now()
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[entity.Event]{}, err
	}
	items, page := listing.Events(rows, filter)
	return dto.ListResponse[entity.Event]{Items: items, Pagination: page}, nil
}

// Get returns one event. When publicOnly is set, events that are not active
// are reported as missing.
func (s *EventsService) Get(ctx context.Context, id string, publicOnly bool) (*entity.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrEventNotFound
	}
	event, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if publicOnly && event.Status != entity.ListingStatusActive {
		return nil, repository.ErrEventNotFound
	}
	return event, nil
}

// Create validates a submission and stores it as pending.
func (s *EventsService) Create(ctx context.Context, req dto.CreateEventRequest, createdBy *uuid.UUID) (*entity.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalidf("title is required")
	}
	if req.StartsAt == nil || req.StartsAt.IsZero() {
		return nil, invalidf("starts_at is required")
	}
	if req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, invalidf("ends_at must not precede starts_at")
	}
	if (req.Latitude != nil || req.Longitude != nil) && !listing.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, invalidf("latitude and longitude must be given together and be valid coordinates")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, invalidf("price must not be negative")
	}
	currency, err := optionalCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:         title,
		Description:   trimmedOrNil(req.Description),
		Category:      trimmedOrNil(req.Category),
		StartsAt:      req.StartsAt.UTC(),
		VenueName:     trimmedOrNil(req.VenueName),
		VenueAddress:  trimmedOrNil(req.VenueAddress),
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CountryID:     req.CountryID,
		CityID:        req.CityID,
		OrganizerName: trimmedOrNil(req.OrganizerName),
		Price:         req.Price,
		Currency:      currency,
		IsFree:        req.Price == nil || *req.Price == 0,
		Tags:          normalizeTags(req.Tags),
		ImageURL:      trimmedOrNil(req.ImageURL),
		Status:        entity.ListingStatusPending,
		CreatedBy:     createdBy,
	}
	if req.EndsAt != nil {
		end := req.EndsAt.UTC()
		event.EndsAt = &end
	}
	if event.OrganizerEmail, err = optionalContact(req.OrganizerEmail, s.contacts.Email); err != nil {
		return nil, err
	}
	if event.OrganizerPhone, err = optionalContact(req.OrganizerPhone, func(raw string) (string, error) {
		return s.contacts.Phone(raw, "")
	}); err != nil {
		return nil, err
	}
	if event.TicketURL, err = optionalContact(req.TicketURL, s.contacts.Website); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalidf("country_id or city_id does not exist")
		}
		return nil, err
	}
	return event, nil
}

// Update applies an administrator's partial update.
func (s *EventsService) Update(ctx context.Context, id string, req dto.UpdateEventRequest) (*entity.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, invalidf("invalid event id")
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalidf("title cannot be empty")
		}
		req.Title = &title
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, invalidf("price must not be negative")
	}
	if req.Tags != nil {
		req.Tags = normalizeTags(req.Tags)
	}

	if req.StartsAt != nil || req.EndsAt != nil {
		current, err := s.repo.Get(ctx, eventID)
		if err != nil {
			return nil, err
		}
		start, end := current.StartsAt, current.EndsAt
		if req.StartsAt != nil {
			start = *req.StartsAt
		}
		if req.EndsAt != nil {
			end = req.EndsAt
		}
		if end != nil && end.Before(start) {
			return nil, invalidf("ends_at must not precede starts_at")
		}
	}

	return s.repo.Update(ctx, eventID, req)
}

// SetStatus moderates an event.
func (s *EventsService) SetStatus(ctx context.Context, id, status string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid event id")
	}
	st := entity.ListingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !entity.ValidEventStatus(st) {
		return invalidf("invalid event status %q", status)
	}
	return s.repo.SetStatus(ctx, eventID, st)
}

// Delete removes an event.
func (s *EventsService) Delete(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid event id")
	}
	return s.repo.Delete(ctx, eventID)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, raw := range tags {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
