package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/auth"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/entity"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/repository"
)

// ErrEmailAlreadyExists is returned when registering an email that is taken.
var ErrEmailAlreadyExists = errors.New("email already registered")

const (
	defaultUserRole   = "user"
	minPasswordLength = 8
)

// Session is the result of a successful sign-up or sign-in.
type Session struct {
	auth.IssuedToken
	User *entity.User
}

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	users    repository.UsersRepository
	jwt      *auth.JWTManager
	contacts *ContactNormalizer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager, contacts: NewContactNormalizer("")}
}

// Register creates a user account and signs it in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalidf("email and password must not be empty")
	}
	normalized, err := s.contacts.Email(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, invalidf("password must be at least %d characters", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, normalized, string(hashed), defaultUserRole)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return s.session(user)
}

// Login checks credentials and signs the user in.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, invalidf("email and password must not be empty")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

// Profile returns the account behind a session token.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) session(user *entity.User) (*Session, error) {
	issued, err := s.jwt.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{IssuedToken: issued, User: user}, nil
}
