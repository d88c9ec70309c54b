package entity

import "github.com/tiendc/go-deepcopy"

// AppData raíz de agregado: el snapshot completo que se serializa en cada mutación.
type AppData struct {
	Users      []User      `json:"users"`
	Warehouses []Warehouse `json:"warehouses"`
	Movements  []Movement  `json:"movements"`
}

// Clone devuelve una copia profunda; mutar la copia no afecta al original.
func (d *AppData) Clone() (AppData, error) {
	var out AppData
	if err := deepcopy.Copy(&out, d); err != nil {
		return AppData{}, err
	}
	return out, nil
}

// Normalize aplica las conversiones de lectura: tipos heredados ENTREE/SORTIE,
// claves de cultivo en NFC, fechas en UTC y mapas de stock no nulos.
func (d *AppData) Normalize() {
	for i := range d.Warehouses {
		w := &d.Warehouses[i]
		stock := make(map[string]int64, len(w.Stock))
		for crop, q := range w.Stock {
			stock[NormalizeCrop(crop)] += q
		}
		w.Stock = stock
	}
	for i := range d.Movements {
		m := &d.Movements[i]
		m.Type = NormalizeMovementType(m.Type)
		m.Crop = NormalizeCrop(m.Crop)
		m.Date = m.Date.UTC()
		if m.ResolvedAt != nil {
			t := m.ResolvedAt.UTC()
			m.ResolvedAt = &t
		}
		if m.Status == "" {
			m.Status = MovementStatusPending
		}
	}
}

// FindWarehouse devuelve el índice del almacén o -1.
func (d *AppData) FindWarehouse(id string) int {
	for i := range d.Warehouses {
		if d.Warehouses[i].ID == id {
			return i
		}
	}
	return -1
}

// FindMovement devuelve el índice del movimiento o -1.
func (d *AppData) FindMovement(id string) int {
	for i := range d.Movements {
		if d.Movements[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUser devuelve el índice del usuario o -1.
func (d *AppData) FindUser(id string) int {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUserByLogin devuelve el índice del usuario con ese login o -1.
func (d *AppData) FindUserByLogin(login string) int {
	for i := range d.Users {
		if d.Users[i].Login == login {
			return i
		}
	}
	return -1
}

// WarehouseName resuelve el nombre del almacén; vacío si no existe.
func (d *AppData) WarehouseName(id string) string {
	if i := d.FindWarehouse(id); i >= 0 {
		return d.Warehouses[i].Name
	}
	return ""
}

// UnknownWarehouse etiqueta cuando el almacén referenciado ya no existe.
const UnknownWarehouse = "Inconnu"

// WarehouseLabel como WarehouseName, pero con UnknownWarehouse si el almacén no existe.
func (d *AppData) WarehouseLabel(id string) string {
	if name := d.WarehouseName(id); name != "" {
		return name
	}
	return UnknownWarehouse
}

// PendingCount cuenta movimientos en PENDING.
func (d *AppData) PendingCount() int {
	n := 0
	for i := range d.Movements {
		if d.Movements[i].IsPending() {
			n++
		}
	}
	return n
}

// TotalStockKg suma el stock de todos los almacenes.
func (d *AppData) TotalStockKg() int64 {
	var total int64
	for i := range d.Warehouses {
		total += d.Warehouses[i].TotalKg()
	}
	return total
}

// PrependMovement inserta el movimiento al inicio (más reciente primero).
func (d *AppData) PrependMovement(m Movement) {
	d.Movements = append([]Movement{m}, d.Movements...)
}
