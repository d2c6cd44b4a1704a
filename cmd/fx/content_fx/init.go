package content_fx

import (
	"go.uber.org/fx"

	"tescursos/internal/api/controllers"
	"tescursos/internal/config"
	"tescursos/internal/services"
)

var Module = fx.Provide(
	provideContentService,
	controllers.NewContentController,
)

func provideContentService(cfg *config.Config) services.ContentServiceInterface {
	return services.NewContentService(cfg.ContentDir)
}
