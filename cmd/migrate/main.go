// migrate aplica las migraciones goose embebidas.
//
// Uso: go run ./cmd/migrate [up|down|status|version|reset|redo|to <versión>]
// Sin argumentos ejecuta up.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Procurement-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Procurement-api/pkg/config"
	"github.com/jhoicas/Procurement-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	command := "up"
	args := os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if command == "to" {
		if len(args) != 1 {
			log.Fatal().Msg("uso: migrate to <versión>")
		}
		err = postgres.MigrateTo(ctx, pool, args[0])
	} else {
		err = postgres.Migrate(ctx, pool, command, args...)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración fallida")
	}
	log.Info().Str("command", command).Msg("migración completada")
}
