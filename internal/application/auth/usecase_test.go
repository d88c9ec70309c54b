package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/state"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
	"github.com/abdoulayediaw-ops/orsre/pkg/jwt"
	"github.com/abdoulayediaw-ops/orsre/pkg/password"
)

const testSecret = "test-secret"

func newAuth(t *testing.T) *AuthUseCase {
	t.Helper()
	seed := entity.Seed()
	hashed, err := password.Hash("n3w-pass")
	require.NoError(t, err)
	seed.Users = append(seed.Users, entity.User{ID: "3", Name: "Awa", Login: "awa", Pass: hashed, Role: entity.RoleUser})

	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), &seed))
	store := state.NewStore(repo, nil)
	require.NoError(t, store.Load(context.Background()))
	return NewAuthUseCase(store, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "orsre-test"}, nil)
}

func TestLogin_LegacyPlaintext(t *testing.T) {
	uc := newAuth(t)
	res, err := uc.Login(dto.LoginRequest{Login: "orse", Pass: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "1", res.User.ID)
	assert.Equal(t, entity.RoleAdmin, res.User.Role)

	claims, err := jwt.Parse(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "Super Administrateur", claims.Name)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_Hashed(t *testing.T) {
	uc := newAuth(t)
	res, err := uc.Login(dto.LoginRequest{Login: " awa ", Pass: "n3w-pass"})
	require.NoError(t, err)
	assert.Equal(t, "3", res.User.ID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	uc := newAuth(t)
	_, errUnknown := uc.Login(dto.LoginRequest{Login: "ghost", Pass: "1234"})
	_, errWrong := uc.Login(dto.LoginRequest{Login: "orse", Pass: "nope"})
	_, errEmpty := uc.Login(dto.LoginRequest{})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmpty, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestMe(t *testing.T) {
	uc := newAuth(t)
	me, err := uc.Me("2")
	require.NoError(t, err)
	assert.Equal(t, "moussa", me.Login)

	_, err = uc.Me("99")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
