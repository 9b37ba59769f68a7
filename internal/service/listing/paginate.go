// Package listing holds the pure filter, sort and paginate functions behind
// every public list endpoint. Nothing here touches the database or mutates
// its inputs.
package listing

import (
	"math"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100

	// MaxPage keeps (page-1)*perPage from overflowing int.
	MaxPage = math.MaxInt / MaxPerPage
)

// NormalizePage applies the page defaults shared by every list endpoint.
func NormalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Paginate slices items to the requested page. A page past the end yields an
// empty, non-nil slice with the totals still filled in.
func Paginate[T any](items []T, page, perPage int) ([]T, dto.Pagination) {
	page, perPage = NormalizePage(page, perPage)
	total := len(items)
	meta := PageOf(total, page, perPage)

	if page > meta.TotalPages {
		return []T{}, meta
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, meta
}

// PageOf describes a page that was already sliced by the database.
func PageOf(total, page, perPage int) dto.Pagination {
	page, perPage = NormalizePage(page, perPage)
	totalPages := (total + perPage - 1) / perPage
	return dto.Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
