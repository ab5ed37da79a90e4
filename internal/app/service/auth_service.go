package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
	"projecthub/pkg/clock"
)

const minPasswordLength = 6

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	issuer         ports.TokenIssuer
	clock          clock.Clock
}

func NewAuthService(
	userRepository ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	clk clock.Clock,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		clock:          clk,
	}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" {
		return domain.User{}, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must have at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.clock.Now()
	user := domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login returns a signed token for the user. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
