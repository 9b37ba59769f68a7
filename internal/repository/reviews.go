package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// ErrReviewNotFound is returned when a review id does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewsRepository describes persistence operations for reviews.
type ReviewsRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	List(ctx context.Context, filter dto.ReviewListFilter) ([]entity.Review, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXReviewsRepository implements ReviewsRepository using pgx.
type PGXReviewsRepository struct {
	pool pgxPool
}

// NewPGXReviewsRepository wires a pgx backed repository.
func NewPGXReviewsRepository(pool *pgxpool.Pool) *PGXReviewsRepository {
	return &PGXReviewsRepository{pool: pool}
}

// Create inserts a review.
func (r *PGXReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return fmt.Errorf("review payload is nil")
	}

	err := r.pool.QueryRow(ctx, `
        INSERT INTO reviews (business_id, user_id, author_name, rating, title, content, images, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`,
		review.BusinessID,
		uuidOrNil(review.UserID),
		stringOrNil(review.AuthorName),
		review.Rating,
		stringOrNil(review.Title),
		review.Content,
		stringSliceOrEmpty(review.Images),
		string(review.Status),
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrBusinessNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// List returns one page of reviews, newest first, with the total match count.
func (r *PGXReviewsRepository) List(ctx context.Context, filter dto.ReviewListFilter) ([]entity.Review, int, error) {
	query := strings.Builder{}
	query.WriteString(`
        SELECT id, business_id, user_id, author_name, rating, title, content, images, status,
               created_at, updated_at, COUNT(*) OVER () AS total
        FROM reviews
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.BusinessID != nil {
		clauses = append(clauses, fmt.Sprintf("business_id = $%d", idx))
		args = append(args, *filter.BusinessID)
		idx++
	}
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)
	query.WriteString(fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var (
		reviews []entity.Review
		total   int
	)
	for rows.Next() {
		var (
			review     entity.Review
			userID     uuid.NullUUID
			authorName sql.NullString
			title      sql.NullString
			status     string
		)
		if err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&userID,
			&authorName,
			&review.Rating,
			&title,
			&review.Content,
			&review.Images,
			&status,
			&review.CreatedAt,
			&review.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review row: %w", err)
		}
		review.UserID = nullUUIDToPtr(userID)
		review.AuthorName = nullStringToPtr(authorName)
		review.Title = nullStringToPtr(title)
		review.Status = entity.ReviewStatus(status)
		if review.Images == nil {
			review.Images = []string{}
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reviews: %w", err)
	}

	if len(reviews) == 0 && page > 1 {
		// The window count is lost past the last page.
		countQuery := "SELECT COUNT(*) FROM reviews"
		if len(clauses) > 0 {
			countQuery += " WHERE " + strings.Join(clauses, " AND ")
		}
		if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count reviews: %w", err)
		}
	}

	return reviews, total, nil
}

// SetStatus changes the moderation status of a review.
func (r *PGXReviewsRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("set review status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Delete removes a review.
func (r *PGXReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func normalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	if page > math.MaxInt/100 {
		page = math.MaxInt / 100
	}
	return page, perPage
}
