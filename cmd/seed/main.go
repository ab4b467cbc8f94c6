// seed pobla la base de datos con datos iniciales de demostración:
// un usuario administrador, una categoría y un producto de ejemplo.
// Solo inserta cuando las tablas están vacías, es seguro ejecutarlo
// varias veces.
//
// Uso: go run ./cmd/seed
// La contraseña del administrador se toma de SEED_ADMIN_PASSWORD
// (por defecto "admin123", solo para entornos de desarrollo).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/domain/entity"
	"github.com/josbwnn/PAPELERIA-EDUVAL/internal/infrastructure/postgres"
	"github.com/josbwnn/PAPELERIA-EDUVAL/pkg/config"
	"github.com/josbwnn/PAPELERIA-EDUVAL/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	now := time.Now()

	// Usuario administrador inicial.
	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing == nil {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("generar hash de contraseña")
		}
		admin := &entity.User{
			ID:           uuid.NewString(),
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         entity.RoleAdministrador,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("username", admin.Username).Msg("usuario administrador creado")
	} else {
		log.Info().Msg("usuario administrador ya existe, se omite")
	}

	// Categoría y producto de ejemplo.
	category, err := categoryRepo.GetByName("Papelería")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar categoría de ejemplo")
	}
	if category == nil {
		category = &entity.Category{
			ID:        uuid.NewString(),
			Name:      "Papelería",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(category); err != nil {
			log.Fatal().Err(err).Msg("crear categoría de ejemplo")
		}
		log.Info().Str("nombre", category.Name).Msg("categoría creada")
	}

	products, err := productRepo.List("")
	if err != nil {
		log.Fatal().Err(err).Msg("listar productos")
	}
	if len(products) == 0 {
		product := &entity.Product{
			ID:         uuid.NewString(),
			Name:       "Cuaderno rayado 100 hojas",
			Price:      decimal.NewFromFloat(2.50),
			Stock:      20,
			MinStock:   5,
			CategoryID: category.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Msg("crear producto de ejemplo")
		}
		log.Info().Str("nombre", product.Name).Msg("producto creado")
	} else {
		log.Info().Int("productos", len(products)).Msg("catálogo ya tiene productos, se omite")
	}

	log.Info().Msg("seed finalizado")
}
