package fx

import (
	"Garagem/config"
	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/backup"
	"Garagem/internal/domain/dashboard"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/health"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	"Garagem/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAttachmentStore,
		newVehicleService,
		newMaintenanceService,
		newGeneralService,
		newHealthService,
		newDashboardService,
		newBackupService,
	),
)

func newAttachmentStore(cfg *config.Config) (*attachment.Store, error) {
	return attachment.NewStore(cfg)
}

func newVehicleService(
	vehicleRepo *infrastructure.VehicleRepository,
	store *attachment.Store,
) *vehicle.Service {
	return vehicle.NewService(vehicleRepo, store)
}

func newMaintenanceService(
	itemRepo *infrastructure.MaintenanceItemRepository,
	logRepo *infrastructure.MaintenanceLogRepository,
	vehicleSvc *vehicle.Service,
	store *attachment.Store,
) *maintenance.Service {
	return maintenance.NewService(itemRepo, logRepo, vehicleSvc, store)
}

func newGeneralService(
	generalRepo *infrastructure.GeneralRepository,
	attachmentRepo *infrastructure.AttachmentRepository,
	store *attachment.Store,
	vehicleSvc *vehicle.Service,
) *general.Service {
	return general.NewService(generalRepo, attachmentRepo, store, vehicleSvc)
}

func newHealthService() *health.Service {
	return health.NewService()
}

func newDashboardService(
	vehicleRepo *infrastructure.VehicleRepository,
	itemRepo *infrastructure.MaintenanceItemRepository,
	logRepo *infrastructure.MaintenanceLogRepository,
	healthSvc *health.Service,
) *dashboard.Service {
	return &dashboard.Service{
		Vehicles: vehicleRepo,
		Items:    itemRepo,
		Logs:     logRepo,
		Health:   healthSvc,
	}
}

func newBackupService(
	vehicleRepo *infrastructure.VehicleRepository,
	itemRepo *infrastructure.MaintenanceItemRepository,
	logRepo *infrastructure.MaintenanceLogRepository,
	generalRepo *infrastructure.GeneralRepository,
	attachmentRepo *infrastructure.AttachmentRepository,
	backupRepo *infrastructure.BackupRepository,
) *backup.Service {
	return backup.NewService(vehicleRepo, itemRepo, logRepo, generalRepo, attachmentRepo, backupRepo)
}
