package entity

// Warehouse representa un almacén con su stock por cultivo (kg).
// Stock solo lo modifica el motor de validación, nunca un formulario.
type Warehouse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Region  string           `json:"region"`
	Manager string           `json:"manager"`
	Lat     float64          `json:"lat"`
	Lng     float64          `json:"lng"`
	Stock   map[string]int64 `json:"stock"`
}

// Quantity devuelve la cantidad en kg del cultivo; 0 si no existe la entrada.
func (w *Warehouse) Quantity(crop string) int64 {
	if w.Stock == nil {
		return 0
	}
	return w.Stock[NormalizeCrop(crop)]
}

// TotalKg suma todas las entradas de stock del almacén.
func (w *Warehouse) TotalKg() int64 {
	var total int64
	for _, q := range w.Stock {
		total += q
	}
	return total
}
