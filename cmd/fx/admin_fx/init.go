package admin_fx

import (
	"go.uber.org/fx"

	"tescursos/internal/api/controllers"
	"tescursos/internal/services"
)

var Module = fx.Provide(
	services.NewAdminUserService,
	controllers.NewAdminUsersController,
)
