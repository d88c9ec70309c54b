// seed escribe el dataset inicial (o un snapshot exportado) en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed [-in snapshot.json] [-latin1] [-hash] [-force]
// Sin -in usa el seed por defecto. STORE_DRIVER y demás variables se leen como en la API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/abdoulayediaw-ops/orsre/internal/domain"
	"github.com/abdoulayediaw-ops/orsre/internal/infrastructure/snapshot"
	"github.com/abdoulayediaw-ops/orsre/pkg/config"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

func main() {
	in := flag.String("in", "", "snapshot JSON a importar (vacío = seed por defecto)")
	latin1 := flag.Bool("latin1", false, "el archivo de entrada está en ISO-8859-1")
	hash := flag.Bool("hash", false, "convertir contraseñas en texto plano a bcrypt")
	force := flag.Bool("force", false, "sobrescribir un snapshot existente")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	var raw []byte
	if *in != "" {
		raw, err = os.ReadFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer %s: %v\n", *in, err)
			os.Exit(1)
		}
	}
	data, err := prepare(raw, *latin1, *hash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Preparar snapshot: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo, closeRepo, err := snapshot.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer closeRepo()

	if !*force {
		_, err := repo.Load(ctx)
		switch {
		case err == nil:
			fmt.Fprintln(os.Stderr, "Ya existe un snapshot; use -force para sobrescribirlo")
			os.Exit(2)
		case !errors.Is(err, domain.ErrNotFound):
			fmt.Fprintf(os.Stderr, "Leer snapshot actual: %v\n", err)
			os.Exit(1)
		}
	}

	if err := repo.Save(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Snapshot %q escrito (%s): %d usuarios, %d almacenes, %d movimientos\n",
		cfg.Store.Key, cfg.Store.Driver, len(data.Users), len(data.Warehouses), len(data.Movements))
}
