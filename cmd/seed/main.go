// seed carga una organización de demo, un usuario por rol y un catálogo mínimo.
// Es idempotente: reutiliza la organización y los productos que ya existan por nombre.
//
// Uso: SEED_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Procurement-api/pkg/config"
	"github.com/jhoicas/Procurement-api/pkg/logger"
)

const demoOrganization = "SCLEN Demo Buyer"

var demoUsers = []struct {
	id, email, first, role string
}{
	{"seed-admin", "admin@demo.local", "Admin", entity.RoleBuyerAdmin},
	{"seed-buyer", "buyer@demo.local", "Buyer", entity.RoleBuyerUser},
	{"seed-sourcing", "sourcing@demo.local", "Sourcing", entity.RoleSourcingManager},
}

var demoProducts = []dto.CreateProductRequest{
	{ItemName: "Hex Bolt M8", InternalCode: "HB-M8", Category: "Fasteners", UOM: "pcs", BasePrice: price("0.35")},
	{ItemName: "Steel Plate 5mm", InternalCode: "SP-5", Category: "Raw Material", UOM: "sheet", BasePrice: price("48.00")},
	{ItemName: "Industrial Paint", InternalCode: "IP-1", Category: "Consumables", UOM: "litre", BasePrice: price("12.50")},
	{ItemName: "Safety Gloves", InternalCode: "SG-L", Category: "Safety", UOM: "pair", BasePrice: price("3.20")},
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		if !cfg.App.IsDev() {
			log.Fatal().Msg("SEED_PASSWORD es obligatorio fuera de development")
		}
		password = "demo-password"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	userUC := usecase.NewUserUseCase(postgres.NewUserRepository(pool), orgRepo)
	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool), nil, log)

	orgID, err := ensureOrganization(ctx, orgUC)
	if err != nil {
		log.Fatal().Err(err).Msg("organización")
	}
	for _, u := range demoUsers {
		_, err := userUC.Upsert(ctx, dto.UpsertUserRequest{
			ID: u.id, Email: u.email, FirstName: u.first, Role: u.role,
			OrganizationID: &orgID, Password: password,
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", u.email).Msg("usuario")
		}
	}

	existing, err := productUC.List(ctx, dto.ProductListQuery{PageRequest: dto.PageRequest{Limit: 100}})
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos")
	}
	have := make(map[string]bool, len(existing.Items))
	for _, p := range existing.Items {
		have[p.ItemName] = true
	}
	created := 0
	for _, p := range demoProducts {
		if have[p.ItemName] {
			continue
		}
		if _, err := productUC.Create(ctx, "seed-admin", p); err != nil {
			log.Fatal().Err(err).Str("product", p.ItemName).Msg("producto")
		}
		created++
	}

	log.Info().
		Str("organization_id", orgID).
		Int("users", len(demoUsers)).
		Int("products_created", created).
		Msg("seed completado")
}

func ensureOrganization(ctx context.Context, uc *usecase.OrganizationUseCase) (string, error) {
	list, err := uc.List(ctx, dto.PageRequest{Limit: 100})
	if err != nil {
		return "", err
	}
	for _, o := range list.Items {
		if o.Name == demoOrganization {
			return o.ID, nil
		}
	}
	o, err := uc.Create(ctx, dto.OrganizationRequest{Name: demoOrganization, ContactEmail: "procurement@demo.local"})
	if err != nil {
		return "", err
	}
	return o.ID, nil
}
