package auth

import (
	"strings"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/jwt"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
	"github.com/abdoulayediaw-ops/orsre/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y perfil actual.
type AuthUseCase struct {
	store  ports.SnapshotStore
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store ports.SnapshotStore, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{store: store, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica login/pass, genera JWT y retorna token + usuario.
// Login inexistente y contraseña incorrecta devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Login = strings.TrimSpace(in.Login)
	if err := in.Validate(); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	i := d.FindUserByLogin(in.Login)
	if i < 0 {
		password.Burn(in.Pass)
		uc.log.Info().Msg("login fallido")
		return nil, domain.ErrInvalidCredentials
	}
	user := d.Users[i]
	if !password.Verify(user.Pass, in.Pass) {
		uc.log.Info().Msg("login fallido")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login correcto")
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(&user),
	}, nil
}

// Me devuelve el usuario del token. Si fue eliminado después de emitir el token, ErrUnauthorized.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	d, err := uc.store.Get()
	if err != nil {
		return nil, err
	}
	i := d.FindUser(userID)
	if i < 0 {
		return nil, domain.ErrUnauthorized
	}
	out := ToUserResponse(&d.Users[i])
	return &out, nil
}

// ToUserResponse proyección pública del usuario, sin credencial.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Login: u.Login,
		Role:  u.Role,
	}
}
