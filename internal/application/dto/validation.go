package dto

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// Validate reglas de creación de movimiento. Type ya debe venir normalizado.
func (r CreateMovementRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("el tipo es obligatorio"),
			validation.By(movementType),
		),
		validation.Field(&r.WarehouseID, validation.Required.Error("el almacén es obligatorio")),
		validation.Field(&r.Crop,
			validation.Required.Error("el cultivo es obligatorio"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Bags,
			validation.Min(int64(0)).Error("bags no puede ser negativo"),
			validation.Max(entity.MaxMovementBags).Error("bags excede el máximo por movimiento"),
		),
		validation.Field(&r.Weight,
			validation.Required.Error("el peso es obligatorio"),
			validation.Min(int64(1)).Error("el peso debe ser mayor que 0"),
			validation.Max(entity.MaxMovementWeightKg).Error("el peso excede el máximo por movimiento"),
		),
	))
}

// Validate reglas de creación de almacén.
func (r CreateWarehouseRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("el nombre es obligatorio"), validation.Length(1, 200)),
		validation.Field(&r.Region, validation.Required.Error("la región es obligatoria"), validation.Length(1, 100)),
		validation.Field(&r.Manager, validation.Required.Error("el responsable es obligatorio"), validation.Length(1, 200)),
		validation.Field(&r.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&r.Lng, validation.Min(-180.0), validation.Max(180.0)),
	))
}

// Validate reglas de creación de usuario. Role vacío se resuelve a USER antes.
func (r CreateUserRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("el nombre es obligatorio"), validation.Length(1, 200)),
		validation.Field(&r.Login,
			validation.Required.Error("el login es obligatorio"),
			validation.Length(3, 64),
			validation.By(noSpaces),
		),
		validation.Field(&r.Pass, validation.Required.Error("la contraseña es obligatoria"), validation.Length(4, 128)),
		validation.Field(&r.Role, validation.By(role)),
	))
}

// Validate reglas de login.
func (r LoginRequest) Validate() error {
	return invalid(validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required),
		validation.Field(&r.Pass, validation.Required),
	))
}

// FieldErrors extrae los errores por campo de un error de validación; nil si no hay.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, e := range verrs {
		out[field] = e.Error()
	}
	return out
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
}

func movementType(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !entity.ValidMovementType(s) {
		return errors.New("tipo debe ser INBOUND u OUTBOUND")
	}
	return nil
}

func role(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !entity.ValidRole(s) {
		return errors.New("rol debe ser ADMIN o USER")
	}
	return nil
}

func noSpaces(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\n") {
		return errors.New("el login no puede contener espacios")
	}
	return nil
}
