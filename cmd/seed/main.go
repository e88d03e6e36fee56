// seed aplica las migraciones y carga los datos de demostración (usuarios admin/tech,
// la empresa Tech Solutions y dos cobranzas pendientes). Es idempotente: si el
// usuario admin ya existe no escribe nada.
//
// Uso: go run ./cmd/seed [-skip-migrate]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/billing-portal/internal/application/seed"
	"github.com/jhoicas/billing-portal/internal/infrastructure/postgres"
	"github.com/jhoicas/billing-portal/pkg/config"
	"github.com/jhoicas/billing-portal/pkg/logger"
)

func main() {
	skipMigrate := len(os.Args) > 1 && os.Args[1] == "-skip-migrate"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if !skipMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
			os.Exit(1)
		}
	}

	seeder := seed.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewCompanyRepository(pool),
		postgres.NewChargeRepository(pool),
		log,
	)
	created, err := seeder.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	if created {
		fmt.Println("Datos de demostración creados (admin/admin123, tech/tech123)")
		return
	}
	fmt.Println("El usuario admin ya existe; no se modificó nada")
}
