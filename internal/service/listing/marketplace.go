package listing

import (
	"sort"
	"strings"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// Marketplace sort keys.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Marketplace runs the filter, sort and paginate pipeline for listings.
func Marketplace(items []entity.MarketplaceListing, filter dto.MarketplaceListFilter) ([]entity.MarketplaceListing, dto.Pagination) {
	return Paginate(SortMarketplace(FilterMarketplace(items, filter), filter.Sort), filter.Page, filter.PerPage)
}

// FilterMarketplace keeps listings matching every set criterion.
func FilterMarketplace(items []entity.MarketplaceListing, filter dto.MarketplaceListFilter) []entity.MarketplaceListing {
	condition := strings.TrimSpace(filter.Condition)
	currency := strings.TrimSpace(filter.Currency)

	out := make([]entity.MarketplaceListing, 0, len(items))
	for _, l := range items {
		if !matchesText(filter.Q, l.Title, deref(l.Description)) {
			continue
		}
		if condition != "" && !strings.EqualFold(l.Condition, condition) {
			continue
		}
		if currency != "" && !strings.EqualFold(l.Currency, currency) {
			continue
		}
		if filter.MinPrice != nil && l.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && l.Price > *filter.MaxPrice {
			continue
		}
		if filter.WithImages && len(l.Images) == 0 {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortMarketplace returns a sorted copy; the default is newest first. Ties
// are broken by id so pages stay stable.
func SortMarketplace(items []entity.MarketplaceListing, key string) []entity.MarketplaceListing {
	out := make([]entity.MarketplaceListing, len(items))
	copy(out, items)

	byID := func(a, b entity.MarketplaceListing) bool { return a.ID.String() < b.ID.String() }

	var less func(a, b entity.MarketplaceListing) bool
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortPriceAsc:
		less = func(a, b entity.MarketplaceListing) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return byID(a, b)
		}
	case SortPriceDesc:
		less = func(a, b entity.MarketplaceListing) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return byID(a, b)
		}
	case SortTitle:
		less = func(a, b entity.MarketplaceListing) bool {
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				return ta < tb
			}
			return byID(a, b)
		}
	default:
		less = func(a, b entity.MarketplaceListing) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return byID(a, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
