package fx

import (
	"time"

	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/backup"
	"Garagem/internal/domain/dashboard"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	"Garagem/internal/middleware"
	"Garagem/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e o rate limiter
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	vehicleSvc *vehicle.Service,
	maintenanceSvc *maintenance.Service,
	generalSvc *general.Service,
	dashboardSvc *dashboard.Service,
	backupSvc *backup.Service,
	store *attachment.Store,
) *routes.Handler {
	return &routes.Handler{
		VehicleService:     vehicleSvc,
		MaintenanceService: maintenanceSvc,
		GeneralService:     generalSvc,
		DashboardService:   dashboardSvc,
		BackupService:      backupSvc,
		Store:              store,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
