package entity

import "time"

// Tipos de movimiento.
const (
	MovementTypeInbound  = "INBOUND"
	MovementTypeOutbound = "OUTBOUND"
)

// Límites por movimiento.
const (
	MaxMovementWeightKg int64 = 100_000_000 // 100 000 t
	MaxMovementBags     int64 = 10_000_000
)

// Valores heredados de snapshots antiguos.
const (
	legacyTypeEntree = "ENTREE"
	legacyTypeSortie = "SORTIE"
)

// Estados de un movimiento. VALIDATED y REJECTED son terminales.
const (
	MovementStatusPending   = "PENDING"
	MovementStatusValidated = "VALIDATED"
	MovementStatusRejected  = "REJECTED"
)

// Movement registro de entrada o salida de un cultivo en un almacén, pendiente de aprobación.
// Bags y Weight se capturan por separado, sin relación derivada entre ambos.
type Movement struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Type        string     `json:"type"`
	WarehouseID string     `json:"warehouseId"`
	Crop        string     `json:"crop"`
	Bags        int64      `json:"bags"`
	Weight      int64      `json:"weight"` // kg
	Status      string     `json:"status"`
	CreatedBy   string     `json:"createdBy"`
	ResolvedBy  string     `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

// IsPending indica si el movimiento aún espera resolución.
func (m *Movement) IsPending() bool {
	return m.Status == MovementStatusPending
}

// Delta devuelve el efecto firmado sobre el stock: +weight para entradas, -weight para salidas.
func (m *Movement) Delta() int64 {
	if m.Type == MovementTypeOutbound {
		return -m.Weight
	}
	return m.Weight
}

// NormalizeMovementType traduce los valores heredados (ENTREE/SORTIE) y mayúsculas.
func NormalizeMovementType(t string) string {
	switch t {
	case legacyTypeEntree, "entree", "inbound":
		return MovementTypeInbound
	case legacyTypeSortie, "sortie", "outbound":
		return MovementTypeOutbound
	}
	return t
}

// ValidMovementType indica si el tipo ya normalizado es soportado.
func ValidMovementType(t string) bool {
	return t == MovementTypeInbound || t == MovementTypeOutbound
}
