package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

func listingScan(title string, price float64) func(dest ...any) error {
	return func(dest ...any) error {
		now := time.Now()
		*dest[0].(*uuid.UUID) = uuid.New()
		*dest[1].(*string) = title
		*dest[3].(*float64) = price
		*dest[4].(*string) = "RWF"
		*dest[5].(*string) = "good"
		*dest[6].(*string) = "active"
		*dest[13].(*time.Time) = now
		*dest[14].(*time.Time) = now
		return nil
	}
}

func TestPGXMarketplaceRepository_List(t *testing.T) {
	var gotQuery string
	repo := &PGXMarketplaceRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			gotQuery = query
			return &stubRows{scans: []func(dest ...any) error{listingScan("Bike", 120000)}}, nil
		},
	}}

	listings, err := repo.List(context.Background(), dto.MarketplaceListFilter{Status: "active", Category: "bikes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || listings[0].Price != 120000 || listings[0].Status != entity.ListingStatusActive {
		t.Fatalf("unexpected listings: %+v", listings)
	}
	if listings[0].Images == nil {
		t.Fatalf("expected non-nil images")
	}
	if !strings.Contains(gotQuery, "c.slug = LOWER($2)") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestPGXMarketplaceRepository_Get(t *testing.T) {
	repo := &PGXMarketplaceRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row { return noRows() },
	}}
	if _, err := repo.Get(context.Background(), uuid.New()); !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestPGXMarketplaceRepository_SetStatus(t *testing.T) {
	repo := &PGXMarketplaceRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}
	if err := repo.SetStatus(context.Background(), uuid.New(), entity.ListingStatusSold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
