package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tescursos/cmd/fx/admin_fx"
	"tescursos/cmd/fx/certificate_fx"
	"tescursos/cmd/fx/content_fx"
	"tescursos/cmd/fx/db_fx"
	"tescursos/cmd/fx/identity_fx"
	"tescursos/cmd/fx/payment_fx"
	"tescursos/cmd/fx/progress_fx"
	"tescursos/internal/api/controllers"
	"tescursos/internal/config"
	"tescursos/internal/repositories"
	"tescursos/pkg/middleware"
	"tescursos/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		identity_fx.Module,
		admin_fx.Module,
		certificate_fx.Module,
		content_fx.Module,
		progress_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	admins *utils.Admins,
	purchaseRepo repositories.PurchaseRepository,
	adminUsersController *controllers.AdminUsersController,
	certificateController *controllers.CertificateController,
	contentController *controllers.ContentController,
	progressController *controllers.ProgressController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	secret := []byte(cfg.SessionJWTSecret)
	r.Use(middleware.AccessGate(cfg, admins, purchaseRepo, secret))

	RegisterRoutes(r, secret, admins,
		adminUsersController, certificateController, contentController,
		progressController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine, secret []byte, admins *utils.Admins,
	adminUsersController *controllers.AdminUsersController,
	certificateController *controllers.CertificateController,
	contentController *controllers.ContentController,
	progressController *controllers.ProgressController,
	paymentController *controllers.PaymentController) {

	api := r.Group("/api")

	adminGroup := api.Group("/admin", middleware.RequireAdmin(secret, admins))
	adminGroup.GET("/users", adminUsersController.ListUsers)
	adminGroup.POST("/users", adminUsersController.CreateUser)
	adminGroup.PATCH("/users", adminUsersController.ToggleAccess)
	adminGroup.DELETE("/users", adminUsersController.DeleteUser)

	api.POST("/certificado", certificateController.Issue)

	api.GET("/content", contentController.ListModules)
	api.GET("/content/:slug", contentController.GetModule)

	authed := api.Group("", middleware.RequireSession(secret))
	authed.POST("/checkout", paymentController.CreateCheckout)
	authed.GET("/checkout/:orderId", paymentController.GetOrder)
	authed.POST("/progress", progressController.MarkCompleted)
	authed.GET("/progress", progressController.ListCompleted)

	api.POST("/webhooks/pagbank", paymentController.HandleWebhook)
}
