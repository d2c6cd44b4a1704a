package certificate_fx

import (
	"go.uber.org/fx"

	"tescursos/internal/api/controllers"
	"tescursos/internal/services"
)

var Module = fx.Provide(
	services.NewCertificateService,
	controllers.NewCertificateController,
)
