package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

func reviewScan(rating, total int) func(dest ...any) error {
	return func(dest ...any) error {
		now := time.Now()
		*dest[0].(*uuid.UUID) = uuid.New()
		*dest[1].(*uuid.UUID) = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
		*dest[3].(*sql.NullString) = sql.NullString{String: "Aline", Valid: true}
		*dest[4].(*int) = rating
		*dest[6].(*string) = "Great coffee"
		*dest[8].(*string) = "approved"
		*dest[9].(*time.Time) = now
		*dest[10].(*time.Time) = now
		*dest[11].(*int) = total
		return nil
	}
}

func TestPGXReviewsRepository_List(t *testing.T) {
	var (
		gotQuery string
		gotArgs  []any
	)
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			gotQuery, gotArgs = query, args
			return &stubRows{scans: []func(dest ...any) error{reviewScan(5, 7), reviewScan(3, 7)}}, nil
		},
	}}

	businessID := uuid.New()
	reviews, total, err := repo.List(context.Background(), dto.ReviewListFilter{BusinessID: &businessID, Status: "approved", Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 2 || total != 7 {
		t.Fatalf("unexpected result: %d reviews, total %d", len(reviews), total)
	}
	if reviews[0].Status != entity.ReviewStatusApproved || reviews[0].AuthorName == nil || reviews[0].Images == nil {
		t.Fatalf("unexpected review: %+v", reviews[0])
	}
	if !strings.Contains(gotQuery, "LIMIT $3 OFFSET $4") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if gotArgs[2] != 2 || gotArgs[3] != 2 {
		t.Fatalf("unexpected paging args: %v", gotArgs)
	}
}

func TestPGXReviewsRepository_ListPastLastPage(t *testing.T) {
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{}, nil
		},
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			if len(args) != 1 {
				t.Fatalf("count query must drop paging args, got %v", args)
			}
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*int) = 4
				return nil
			}}
		},
	}}

	reviews, total, err := repo.List(context.Background(), dto.ReviewListFilter{Status: "pending", Page: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 0 || total != 4 {
		t.Fatalf("unexpected result: %v, %d", reviews, total)
	}
}

func TestPGXReviewsRepository_ListHugePage(t *testing.T) {
	var gotArgs []any
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			gotArgs = args
			return &stubRows{}, nil
		},
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*int) = 0
				return nil
			}}
		},
	}}

	if _, _, err := repo.List(context.Background(), dto.ReviewListFilter{Page: math.MaxInt, PerPage: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offset, ok := gotArgs[1].(int)
	if !ok || offset < 0 {
		t.Fatalf("expected a non-negative offset, got %v", gotArgs)
	}
}

func TestPGXReviewsRepository_Create(t *testing.T) {
	var gotArgs []any
	repo := &PGXReviewsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			gotArgs = args
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*uuid.UUID) = uuid.New()
				return nil
			}}
		},
	}}

	review := &entity.Review{BusinessID: uuid.New(), Rating: 4, Content: "Nice", Status: entity.ReviewStatusPending}
	if err := repo.Create(context.Background(), review); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotArgs[7] != "pending" {
		t.Fatalf("expected pending status arg, got %v", gotArgs[7])
	}
	if err := repo.Create(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil review")
	}
}

func TestPGXReviewsRepository_SetStatus(t *testing.T) {
	repo := &PGXReviewsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}
	if err := repo.SetStatus(context.Background(), uuid.New(), entity.ReviewStatusApproved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.pool = &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}
	if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
