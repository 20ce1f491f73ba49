// importer carga un respaldo JSON de la aplicación anterior (claves sabri_v2_*) en el
// almacenamiento configurado (STORAGE_DRIVER / DATABASE_URL).
//
// Uso: go run ./cmd/importer -file respaldo.json [-latin1] [-dry-run]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/gestion-carnes/internal/application/importer"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-carnes/pkg/config"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

func main() {
	filePath := flag.String("file", "", "Requerido: ruta al respaldo JSON")
	latin1 := flag.Bool("latin1", false, "El archivo está en ISO-8859-1 (exportaciones viejas de Windows)")
	dryRun := flag.Bool("dry-run", false, "Valida e informa sin guardar nada")
	timeout := flag.Duration("timeout", 5*time.Minute, "Tiempo máximo de la importación")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "-file es requerido")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", *filePath).Msg("abrir respaldo")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	backup, err := importer.Parse(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer respaldo")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var runner importer.Runner
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		// Sin persistencia: útil solo para validar el archivo.
		runner = memory.NewStore()
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos importados no se conservan")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool, log.Zerolog()); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		runner = postgres.NewTxRunner(pool)
	}

	report, err := importer.NewUseCase(runner, log).Import(ctx, backup, *dryRun)
	if err != nil {
		log.Fatal().Err(err).Msg("importación")
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
}
