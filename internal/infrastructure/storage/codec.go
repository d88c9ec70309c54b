package storage

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
)

// Encode serializa el snapshot completo.
func Encode(data *entity.AppData) ([]byte, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("codificar snapshot: %w", err)
	}
	return b, nil
}

// Decode deserializa y normaliza (tipos ENTREE/SORTIE, claves de cultivo).
func Decode(b []byte) (*entity.AppData, error) {
	var data entity.AppData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	data.Normalize()
	return &data, nil
}
