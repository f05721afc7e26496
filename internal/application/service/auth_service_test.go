package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*AuthService, *memUserRepo) {
	repo := newMemUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func TestLogin_CashierSignsInWithoutPassword(t *testing.T) {
	svc, repo := newAuthFixture()
	cashier := repo.seed(entity.User{Name: "Sunita", Role: enum.RoleCashier})

	tokens, err := svc.Login(context.Background(), &LoginInput{UserID: cashier.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, cashier.ID, tokens.User.ID)
}

func TestLogin_AdminRequiresCorrectPassword(t *testing.T) {
	svc, repo := newAuthFixture()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	admin := repo.seed(entity.User{Name: "Boss", Role: enum.RoleAdmin, PasswordHash: hash})
	ctx := context.Background()

	_, err = svc.Login(ctx, &LoginInput{UserID: admin.ID, Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{UserID: admin.ID})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	tokens, err := svc.Login(ctx, &LoginInput{UserID: admin.ID, Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, tokens.User.ID)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &LoginInput{UserID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	svc, repo := newAuthFixture()
	cashier := repo.seed(entity.User{Name: "Sunita", Role: enum.RoleCashier})
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &LoginInput{UserID: cashier.ID})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, cashier.ID, refreshed.User.ID)
}

func TestRefreshToken_RejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestRefreshToken_RejectsDeletedUser(t *testing.T) {
	svc, repo := newAuthFixture()
	cashier := repo.seed(entity.User{Name: "Sunita", Role: enum.RoleCashier})
	ctx := context.Background()

	tokens, err := svc.Login(ctx, &LoginInput{UserID: cashier.ID})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, cashier.ID))

	_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
