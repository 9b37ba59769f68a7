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

	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
)

// ErrAdminNotFound is returned when no admin grant matches.
var ErrAdminNotFound = errors.New("admin grant not found")

// AdminsRepository persists back-office grants.
type AdminsRepository interface {
	FindGrant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	List(ctx context.Context) ([]entity.AdminUser, error)
	Grant(ctx context.Context, email, role string, userID *uuid.UUID) (*entity.AdminUser, error)
	Update(ctx context.Context, id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// PGXAdminsRepository implements AdminsRepository with pgx.
type PGXAdminsRepository struct {
	pool pgxPool
}

// NewPGXAdminsRepository instantiates an admins repository.
func NewPGXAdminsRepository(pool *pgxpool.Pool) *PGXAdminsRepository {
	return &PGXAdminsRepository{pool: pool}
}

const adminColumns = `id, user_id, email, role, is_active, created_at, updated_at`

func scanAdmin(row pgx.Row) (*entity.AdminUser, error) {
	var (
		admin  entity.AdminUser
		userID uuid.NullUUID
	)
	if err := row.Scan(&admin.ID, &userID, &admin.Email, &admin.Role, &admin.IsActive, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
		return nil, err
	}
	admin.UserID = nullUUIDToPtr(userID)
	return &admin, nil
}

// FindGrant looks a grant up by user id first, then by email.
func (r *PGXAdminsRepository) FindGrant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error) {
	var emailArg sql.NullString
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		emailArg = sql.NullString{String: trimmed, Valid: true}
	}

	admin, err := scanAdmin(r.pool.QueryRow(ctx, `
        SELECT `+adminColumns+`
        FROM admin_users
        WHERE user_id = $1 OR ($2::text IS NOT NULL AND LOWER(email) = LOWER($2::text))
        ORDER BY (user_id IS NOT DISTINCT FROM $1) DESC
        LIMIT 1`, userID, emailArg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("query admin grant: %w", err)
	}
	return admin, nil
}

// FindByID fetches a grant by its identifier.
func (r *PGXAdminsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	admin, err := scanAdmin(r.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("query admin by id: %w", err)
	}
	return admin, nil
}

// List returns all grants, newest first.
func (r *PGXAdminsRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminColumns+` FROM admin_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []entity.AdminUser
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin row: %w", err)
		}
		admins = append(admins, *admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admins: %w", err)
	}
	return admins, nil
}

// Grant creates or re-activates the grant for an email.
func (r *PGXAdminsRepository) Grant(ctx context.Context, email, role string, userID *uuid.UUID) (*entity.AdminUser, error) {
	admin, err := scanAdmin(r.pool.QueryRow(ctx, `
        INSERT INTO admin_users (email, role, user_id, is_active)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (email) DO UPDATE SET
            role = EXCLUDED.role,
            user_id = COALESCE(EXCLUDED.user_id, admin_users.user_id),
            is_active = TRUE,
            updated_at = NOW()
        RETURNING `+adminColumns, email, role, uuidOrNil(userID)))
	if err != nil {
		return nil, fmt.Errorf("grant admin: %w", err)
	}
	return admin, nil
}

// Update patches the role or active flag of a grant.
func (r *PGXAdminsRepository) Update(ctx context.Context, id uuid.UUID, role *string, isActive *bool) (*entity.AdminUser, error) {
	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 3)
	idx := 1

	if role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", idx))
		args = append(args, *role)
		idx++
	}
	if isActive != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", idx))
		args = append(args, *isActive)
		idx++
	}
	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE admin_users SET %s WHERE id = $%d RETURNING `+adminColumns, strings.Join(setClauses, ", "), idx)

	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("update admin: %w", err)
	}
	return admin, nil
}

// Revoke deletes a grant.
func (r *PGXAdminsRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("revoke admin: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}
