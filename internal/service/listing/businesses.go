package listing

import (
	"sort"
	"strings"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// Business sort keys.
const (
	SortRecommended = "recommended"
	SortRating      = "rating"
	SortName        = "name"
	SortNewest      = "newest"
	SortDistance    = "distance"
)

// BusinessItems derives the listing fields of each business. Distances are
// only filled in when origin is non-nil.
func BusinessItems(businesses []entity.Business, origin *Point) []dto.BusinessItem {
	items := make([]dto.BusinessItem, 0, len(businesses))
	for _, b := range businesses {
		item := dto.BusinessItem{
			Business:      b,
			AverageRating: RoundRating(AverageRating(b.Ratings)),
			ReviewCount:   len(b.Ratings),
			MapsURL:       MapsURL(b.Latitude, b.Longitude, businessMapsQuery(b)),
		}
		if origin != nil {
			if p, ok := PointFrom(b.Latitude, b.Longitude); ok {
				d := DistanceKm(*origin, p)
				item.DistanceKm = &d
			}
		}
		items = append(items, item)
	}
	return items
}

// Businesses runs the whole filter, sort, number and paginate pipeline.
func Businesses(items []dto.BusinessItem, filter dto.BusinessListFilter) ([]dto.BusinessItem, dto.Pagination) {
	filtered := FilterBusinesses(items, filter)
	sorted := SortBusinesses(filtered, filter.Sort)
	NumberBusinesses(sorted)
	return Paginate(sorted, filter.Page, filter.PerPage)
}

// FilterBusinesses keeps the items matching every set criterion.
func FilterBusinesses(items []dto.BusinessItem, filter dto.BusinessListFilter) []dto.BusinessItem {
	out := make([]dto.BusinessItem, 0, len(items))
	for _, item := range items {
		if !matchesText(filter.Q,
			item.Name,
			deref(item.Description),
			deref(item.Address),
			deref(item.CategoryName),
			deref(item.CityName),
		) {
			continue
		}
		avg := AverageRating(item.Ratings)
		if filter.MinRating != nil && avg < *filter.MinRating {
			continue
		}
		if filter.MaxRating != nil && avg > *filter.MaxRating {
			continue
		}
		if !boolMatches(filter.Premium, item.IsPremium) ||
			!boolMatches(filter.Verified, item.IsVerified) ||
			!boolMatches(filter.Sponsored, item.IsSponsoredAd) {
			continue
		}
		if filter.RadiusKm > 0 && filter.Latitude != nil && filter.Longitude != nil {
			if item.DistanceKm == nil || *item.DistanceKm > filter.RadiusKm {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// SortBusinesses returns a sorted copy. Unknown keys fall back to
// recommended order: sponsored first, then premium, then newest.
func SortBusinesses(items []dto.BusinessItem, key string) []dto.BusinessItem {
	out := make([]dto.BusinessItem, len(items))
	copy(out, items)

	var less func(a, b dto.BusinessItem) bool
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortRating:
		less = func(a, b dto.BusinessItem) bool {
			ra, rb := AverageRating(a.Ratings), AverageRating(b.Ratings)
			if ra != rb {
				return ra > rb
			}
			if a.ReviewCount != b.ReviewCount {
				return a.ReviewCount > b.ReviewCount
			}
			return byName(a, b)
		}
	case SortName:
		less = byName
	case SortNewest:
		less = func(a, b dto.BusinessItem) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID.String() < b.ID.String()
		}
	case SortDistance:
		less = func(a, b dto.BusinessItem) bool {
			switch {
			case a.DistanceKm != nil && b.DistanceKm != nil:
				if *a.DistanceKm != *b.DistanceKm {
					return *a.DistanceKm < *b.DistanceKm
				}
			case a.DistanceKm != nil:
				return true
			case b.DistanceKm != nil:
				return false
			}
			return recommended(a, b)
		}
	default:
		less = recommended
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// NumberBusinesses sets display numbers in place, skipping sponsored entries.
func NumberBusinesses(items []dto.BusinessItem) {
	flags := make([]bool, len(items))
	for i := range items {
		flags[i] = items[i].IsSponsoredAd
	}
	for i, n := range DisplayNumbers(flags, 0) {
		items[i].DisplayNumber = n
	}
}

func recommended(a, b dto.BusinessItem) bool {
	if a.IsSponsoredAd != b.IsSponsoredAd {
		return a.IsSponsoredAd
	}
	if a.IsPremium != b.IsPremium {
		return a.IsPremium
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return byName(a, b)
}

func byName(a, b dto.BusinessItem) bool {
	na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if na != nb {
		return na < nb
	}
	return a.ID.String() < b.ID.String()
}

func businessMapsQuery(b entity.Business) string {
	parts := []string{b.Name}
	if b.Address != nil && *b.Address != "" {
		parts = append(parts, *b.Address)
	}
	if b.CityName != nil && *b.CityName != "" {
		parts = append(parts, *b.CityName)
	}
	return strings.Join(parts, ", ")
}
