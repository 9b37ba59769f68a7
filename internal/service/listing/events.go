package listing

import (
	"sort"
	"strings"
	"time"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// Event sort keys.
const (
	SortUpcoming = "upcoming"
	SortTitle    = "title"
)

// Events runs the filter, sort and paginate pipeline for events.
func Events(items []entity.Event, filter dto.EventListFilter) ([]entity.Event, dto.Pagination) {
	return Paginate(SortEvents(FilterEvents(items, filter), filter.Sort), filter.Page, filter.PerPage)
}

// FilterEvents keeps events matching every set criterion.
func FilterEvents(items []entity.Event, filter dto.EventListFilter) []entity.Event {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}
	tag := strings.ToLower(strings.TrimSpace(filter.Tag))
	category := strings.TrimSpace(filter.Category)

	out := make([]entity.Event, 0, len(items))
	for _, ev := range items {
		if !matchesText(filter.Q,
			ev.Title,
			deref(ev.Description),
			deref(ev.VenueName),
			deref(ev.VenueAddress),
			deref(ev.OrganizerName),
			strings.Join(ev.Tags, " "),
		) {
			continue
		}
		if category != "" && !strings.EqualFold(deref(ev.Category), category) {
			continue
		}
		if tag != "" && !hasTag(ev.Tags, tag) {
			continue
		}
		if filter.FreeOnly && !ev.IsFree {
			continue
		}
		end := eventEnd(ev)
		if filter.Upcoming && end.Before(now) {
			continue
		}
		if filter.From != nil && end.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ev.StartsAt.After(*filter.To) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// SortEvents returns a sorted copy; the default is soonest first.
func SortEvents(items []entity.Event, key string) []entity.Event {
	out := make([]entity.Event, len(items))
	copy(out, items)

	var less func(a, b entity.Event) bool
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortNewest:
		less = func(a, b entity.Event) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID.String() < b.ID.String()
		}
	case SortTitle:
		less = func(a, b entity.Event) bool {
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				return ta < tb
			}
			return a.StartsAt.Before(b.StartsAt)
		}
	default:
		less = func(a, b entity.Event) bool {
			if !a.StartsAt.Equal(b.StartsAt) {
				return a.StartsAt.Before(b.StartsAt)
			}
			return a.ID.String() < b.ID.String()
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// eventEnd is the end time, or the start when an event has no end.
func eventEnd(ev entity.Event) time.Time {
	if ev.EndsAt != nil {
		return *ev.EndsAt
	}
	return ev.StartsAt
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.ToLower(strings.TrimSpace(t)) == want {
			return true
		}
	}
	return false
}
