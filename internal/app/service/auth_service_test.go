package service_test

import (
	"context"
	"testing"
	"time"

	"projecthub/internal/adapter/auth"
	"projecthub/internal/adapter/memory"
	"projecthub/internal/app/service"
	"projecthub/internal/core/domain"
	"projecthub/pkg/clock"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*service.AuthService, *auth.JWTManager) {
	clk := clock.Fake(time.Now())
	tokens := auth.NewJWTManager("test-secret", time.Hour, clk)
	return service.NewAuthService(memory.NewStore(), auth.NewBcryptHasher(bcrypt.MinCost), tokens, clk), tokens
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, tokens := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterUserInput{
		Name:     " Alice ",
		Email:    " Alice@Example.com ",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEqual(t, "s3cret!", user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "ALICE@example.com", "s3cret!")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, profile.Email)
}

func TestAuthService_Register_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserInput{Name: "A", Email: "a@example.com", Password: "password"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterUserInput{Name: "B", Email: "A@example.com", Password: "password"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Register_ValidatesInput(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserInput{Name: "", Email: "a@example.com", Password: "password"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(ctx, domain.RegisterUserInput{Name: "A", Email: "a@example.com", Password: "short"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserInput{Name: "A", Email: "a@example.com", Password: "password"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Profile_UnknownUser(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Profile(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
