package ledger

import (
	"fmt"
	"strings"
)

// Policy comportamiento ante una salida aprobada con stock insuficiente.
type Policy string

const (
	// PolicyStrict rechaza la validación completa: el movimiento sigue PENDING y el stock no cambia.
	PolicyStrict Policy = "strict"
	// PolicyAllowNegative aplica la salida aunque el stock quede negativo.
	PolicyAllowNegative Policy = "allow-negative"
	// PolicyLegacy marca VALIDATED sin tocar el stock y devuelve una advertencia.
	PolicyLegacy Policy = "legacy"
)

// ParsePolicy traduce el valor de configuración; vacío = strict.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyAllowNegative:
		return PolicyAllowNegative, nil
	case PolicyLegacy:
		return PolicyLegacy, nil
	}
	return "", fmt.Errorf("ledger: política desconocida %q", s)
}

// Decision acción del administrador sobre un movimiento pendiente.
type Decision string

const (
	Approve Decision = "APPROVE"
	Reject  Decision = "REJECT"
)

func (d Decision) event() (string, error) {
	switch d {
	case Approve:
		return eventApprove, nil
	case Reject:
		return eventReject, nil
	}
	return "", fmt.Errorf("ledger: decisión desconocida %q", string(d))
}
