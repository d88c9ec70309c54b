package inventory

// Metrics contadores de negocio del motor de inventario.
type Metrics interface {
	MovementCreated(movementType string)
	MovementResolved(decision, result string)
}

type nopMetrics struct{}

func (nopMetrics) MovementCreated(string)          {}
func (nopMetrics) MovementResolved(string, string) {}

// Resultados reportados a Metrics.MovementResolved.
const (
	ResultApplied  = "applied"
	ResultWarning  = "warning"
	ResultRefused  = "refused"
	ResultConflict = "conflict"
	ResultError    = "error"
)
