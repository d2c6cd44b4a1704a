package identity_fx

import (
	"go.uber.org/fx"

	"tescursos/internal/config"
	"tescursos/internal/identity"
	"tescursos/pkg/utils"
)

var Module = fx.Provide(
	provideProvider,
	provideAdmins,
)

func provideProvider(cfg *config.Config) identity.Provider {
	return identity.NewClient(cfg.IdentityURL, cfg.IdentityServiceKey)
}

func provideAdmins(cfg *config.Config) *utils.Admins {
	return utils.NewAdmins(cfg.AdminEmails)
}
