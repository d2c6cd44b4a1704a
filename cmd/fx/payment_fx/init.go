package payment_fx

import (
	"go.uber.org/fx"

	"tescursos/internal/api/controllers"
	"tescursos/internal/config"
	"tescursos/internal/pagbank"
	"tescursos/internal/repositories"
	"tescursos/internal/services"
)

var Module = fx.Provide(
	providePaymentService,
	controllers.NewPaymentController,
)

func providePaymentService(cfg *config.Config, purchaseRepo repositories.PurchaseRepository) services.PaymentServiceInterface {
	gateway := pagbank.NewClient(cfg.PagBankAPIURL, cfg.PagBankToken)
	return services.NewPaymentService(gateway, purchaseRepo, cfg.CoursePriceCents, cfg.AppBaseURL)
}
