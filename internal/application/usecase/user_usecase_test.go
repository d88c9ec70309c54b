package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/password"
)

func TestUserUseCase_Create(t *testing.T) {
	store := seededStore(t)
	uc := NewUserUseCase(store, nil)

	u, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Awa Sarr", Login: "awa", Pass: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)

	d, _ := store.Get()
	i := d.FindUserByLogin("awa")
	require.GreaterOrEqual(t, i, 0)
	assert.True(t, password.IsHashed(d.Users[i].Pass))
	assert.True(t, password.Verify(d.Users[i].Pass, "s3cret"))

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Name: "Otra", Login: "awa", Pass: "xxxx"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(context.Background(), dto.CreateUserRequest{Name: "", Login: "", Pass: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	admin, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: "Chef", Login: "chef", Pass: "1234", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}

func TestUserUseCase_List_NoCredentials(t *testing.T) {
	uc := NewUserUseCase(seededStore(t), nil)
	users, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "orse", users[0].Login)
}

func TestUserUseCase_Delete_RootProtected(t *testing.T) {
	store := seededStore(t)
	uc := NewUserUseCase(store, nil)

	err := uc.Delete(context.Background(), entity.RootUserID)
	assert.ErrorIs(t, err, domain.ErrRootUserProtected)
	d, _ := store.Get()
	assert.GreaterOrEqual(t, d.FindUser(entity.RootUserID), 0)

	require.NoError(t, uc.Delete(context.Background(), "2"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "2"), domain.ErrUserNotFound)
}
