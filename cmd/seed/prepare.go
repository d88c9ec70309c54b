package main

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/storage"
	"github.com/abdoulayediaw-ops/orsre/pkg/password"
)

// prepare decodifica el snapshot de entrada (o toma el seed) y opcionalmente hashea las contraseñas.
func prepare(raw []byte, latin1, hash bool) (*entity.AppData, error) {
	var data *entity.AppData
	if len(raw) == 0 {
		seed := entity.Seed()
		data = &seed
	} else {
		if latin1 {
			utf8, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
			if err != nil {
				return nil, fmt.Errorf("convertir ISO-8859-1: %w", err)
			}
			raw = utf8
		}
		d, err := storage.Decode(raw)
		if err != nil {
			return nil, err
		}
		data = d
	}

	if hash {
		for i := range data.Users {
			u := &data.Users[i]
			if password.IsHashed(u.Pass) {
				continue
			}
			h, err := password.Hash(u.Pass)
			if err != nil {
				return nil, fmt.Errorf("hash de %s: %w", u.Login, err)
			}
			u.Pass = h
		}
	}
	return data, nil
}
