package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abdoulayediaw-ops/orsre/internal/application/auth"
	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
	"github.com/abdoulayediaw-ops/orsre/pkg/password"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	store ports.SnapshotStore
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store ports.SnapshotStore, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{store: store, log: log.Component("users")}
}

// Create da de alta un usuario con la credencial hasheada. Login único.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Login = strings.TrimSpace(in.Login)
	in.Role = strings.ToUpper(strings.TrimSpace(in.Role))
	if in.Role == "" {
		in.Role = entity.RoleUser
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Pass)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:    uuid.New().String(),
		Name:  in.Name,
		Login: in.Login,
		Pass:  hash,
		Role:  in.Role,
	}
	err = uc.store.Run(ctx, func(d *entity.AppData) error {
		if d.FindUserByLogin(user.Login) >= 0 {
			return fmt.Errorf("%w: login %q ya existe", domain.ErrDuplicate, user.Login)
		}
		d.Users = append(d.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario creado")
	out := auth.ToUserResponse(&user)
	return &out, nil
}

// List devuelve los usuarios sin credenciales.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(d.Users))
	for i := range d.Users {
		out = append(out, auth.ToUserResponse(&d.Users[i]))
	}
	return out, nil
}

// Delete elimina un usuario. El administrador raíz nunca se elimina, sea quien sea el llamante.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	err := uc.store.Run(ctx, func(d *entity.AppData) error {
		i := d.FindUser(id)
		if i < 0 {
			return domain.ErrUserNotFound
		}
		if d.Users[i].IsRoot() {
			return domain.ErrRootUserProtected
		}
		d.Users = append(d.Users[:i], d.Users[i+1:]...)
		return nil
	})
	if errors.Is(err, domain.ErrRootUserProtected) {
		uc.log.Warn().Str("user_id", id).Msg("intento de eliminar el administrador raíz")
	}
	if err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Msg("usuario eliminado")
	return nil
}
