package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tescursos/internal/config"
	"tescursos/internal/infra"
	"tescursos/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewPurchaseRepository,
	repositories.NewProgressRepository,
	repositories.NewCertificateRepository,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.DatabaseURL)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}
