package fx

import (
	"context"

	"Garagem/config"
	"Garagem/internal/logger"
	"Garagem/internal/middleware"
	"Garagem/internal/routes"

	docs "Garagem/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		api.GET("/dashboard", handler.GetDashboard)

		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", handler.CreateVehicle)
			vehicles.GET("", handler.ListVehicles)
			vehicles.GET("/:id", handler.GetVehicle)
			vehicles.PATCH("/:id", handler.UpdateVehicle)
			vehicles.DELETE("/:id", handler.DeleteVehicle)
			vehicles.GET("/:id/status", handler.GetVehicleStatus)
			vehicles.POST("/:id/maintenance-items", handler.CreateMaintenanceItem)
			vehicles.GET("/:id/maintenance-items", handler.ListVehicleMaintenanceItems)
			vehicles.POST("/:id/general-records", handler.CreateGeneralRecord)
			vehicles.GET("/:id/general-records", handler.ListVehicleGeneralRecords)
		}

		items := api.Group("/maintenance-items")
		{
			items.GET("", handler.ListMaintenanceItems)
			items.GET("/:id", handler.GetMaintenanceItem)
			items.PATCH("/:id", handler.UpdateMaintenanceItem)
			items.DELETE("/:id", handler.DeleteMaintenanceItem)
			items.POST("/:id/logs", handler.CreateMaintenanceLog)
			items.GET("/:id/logs", handler.ListMaintenanceLogs)
		}

		logs := api.Group("/maintenance-logs")
		{
			logs.GET("/:id", handler.GetMaintenanceLog)
			logs.DELETE("/:id", handler.DeleteMaintenanceLog)
			logs.GET("/:id/receipt", handler.GetMaintenanceLogReceipt)
		}

		records := api.Group("/general-records")
		{
			records.GET("", handler.ListGeneralRecords)
			records.GET("/:id", handler.GetGeneralRecord)
			records.PATCH("/:id", handler.UpdateGeneralRecord)
			records.DELETE("/:id", handler.DeleteGeneralRecord)
			records.GET("/:id/attachments", handler.ListRecordAttachments)
		}

		attachments := api.Group("/attachments")
		{
			attachments.GET("/:id/download", handler.DownloadAttachment)
			attachments.DELETE("/:id", handler.DeleteAttachment)
		}

		backups := api.Group("/backup")
		{
			backups.GET("/export", handler.ExportBackup)
			backups.POST("/import", handler.ImportBackup)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
