package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
)

var adminRoles = map[string]struct{}{
	entity.AdminRoleSuperAdmin: {},
	entity.AdminRoleAdmin:      {},
	entity.AdminRoleModerator:  {},
}

// AdminService answers the back-office access check and manages grants.
type AdminService struct {
	admins   repository.AdminsRepository
	users    repository.UsersRepository
	contacts *ContactNormalizer
}

// NewAdminService wires the admin grant service.
func NewAdminService(admins repository.AdminsRepository, users repository.UsersRepository) *AdminService {
	return &AdminService{admins: admins, users: users, contacts: NewContactNormalizer("")}
}

// Grant returns the active grant of a user, matched by id first and then by
// email. A missing or inactive grant yields repository.ErrAdminNotFound.
func (s *AdminService) Grant(ctx context.Context, userID uuid.UUID, email string) (*entity.AdminUser, error) {
	grant, err := s.admins.FindGrant(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	if !grant.IsActive {
		return nil, repository.ErrAdminNotFound
	}
	return grant, nil
}

// IsAdmin reports whether the user holds an active grant. Lookup failures are
// returned to the caller, which must deny access.
func (s *AdminService) IsAdmin(ctx context.Context, userID uuid.UUID, email string) (bool, error) {
	if _, err := s.Grant(ctx, userID, email); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListGrants returns every grant.
func (s *AdminService) ListGrants(ctx context.Context) ([]entity.AdminUser, error) {
	grants, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	if grants == nil {
		grants = []entity.AdminUser{}
	}
	return grants, nil
}

// GrantAccess gives the email an active grant, linking the matching account when it exists.
func (s *AdminService) GrantAccess(ctx context.Context, req dto.GrantAdminRequest) (*entity.AdminUser, error) {
	email, err := s.contacts.Email(req.Email)
	if err != nil {
		return nil, err
	}
	role, err := adminRole(req.Role)
	if err != nil {
		return nil, err
	}

	var userID *uuid.UUID
	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		userID = &user.ID
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, err
	}

	return s.admins.Grant(ctx, email, role, userID)
}

// UpdateGrant changes the role or active flag of a grant. Administrators
// cannot deactivate their own grant.
func (s *AdminService) UpdateGrant(ctx context.Context, actorID uuid.UUID, actorEmail, id string, req dto.UpdateAdminRequest) (*entity.AdminUser, error) {
	grantID, err := uuid.Parse(id)
	if err != nil {
		return nil, invalidf("invalid admin id")
	}
	if req.IsActive != nil && !*req.IsActive {
		grant, err := s.admins.FindByID(ctx, grantID)
		if err != nil {
			return nil, err
		}
		if ownGrant(grant, actorID, actorEmail) {
			return nil, ErrSelfRevoke
		}
	}
	var rolePtr *string
	if req.Role != nil {
		role, err := adminRole(*req.Role)
		if err != nil {
			return nil, err
		}
		rolePtr = &role
	}
	return s.admins.Update(ctx, grantID, rolePtr, req.IsActive)
}

// RevokeGrant deletes a grant. Administrators cannot revoke their own grant.
func (s *AdminService) RevokeGrant(ctx context.Context, actorID uuid.UUID, actorEmail, id string) error {
	grantID, err := uuid.Parse(id)
	if err != nil {
		return invalidf("invalid admin id")
	}
	grant, err := s.admins.FindByID(ctx, grantID)
	if err != nil {
		return err
	}
	if ownGrant(grant, actorID, actorEmail) {
		return ErrSelfRevoke
	}
	return s.admins.Revoke(ctx, grantID)
}

func ownGrant(grant *entity.AdminUser, actorID uuid.UUID, actorEmail string) bool {
	return (grant.UserID != nil && *grant.UserID == actorID) || strings.EqualFold(grant.Email, actorEmail)
}

func adminRole(raw string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(raw))
	if role == "" {
		return entity.AdminRoleAdmin, nil
	}
	if _, ok := adminRoles[role]; !ok {
		return "", invalidf("unknown admin role %q", raw)
	}
	return role, nil
}
