package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
	userrepo "storefront-api/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
)

type tokenIssuer interface {
	Issue(user domain.User, now time.Time) (string, error)
}

// Service handles registration, login and account lookup.
type Service struct {
	repo        userrepo.Repository
	tokens      tokenIssuer
	bcryptCost  int
	passwordMin int
}

func New(repo userrepo.Repository, tokens tokenIssuer, bcryptCost int) *Service {
	return &Service{
		repo:        repo,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		passwordMin: 8,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
}

// Register creates a new USER account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, s.passwordMin)
	}

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, domain.User{
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: hashed,
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login validates credentials and returns the user plus a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(u.PasswordHash, strings.TrimSpace(password)) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*u, time.Now())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Account returns the profile for an authenticated user id.
func (s *Service) Account(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// List returns all accounts; admin only at the route level.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
