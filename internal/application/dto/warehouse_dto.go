package dto

// CreateWarehouseRequest entrada para crear un almacén. El stock nunca viene del formulario.
type CreateWarehouseRequest struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Manager string  `json:"manager"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Region  string           `json:"region"`
	Manager string           `json:"manager"`
	Lat     float64          `json:"lat"`
	Lng     float64          `json:"lng"`
	Stock   map[string]int64 `json:"stock"`
	TotalKg int64            `json:"total_kg"`
}

// WarehouseFilter búsqueda opcional sobre nombre, región y responsable.
type WarehouseFilter struct {
	Search string `query:"q"`
}
