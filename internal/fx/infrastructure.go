package fx

import (
	"Garagem/config"
	"Garagem/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newVehicleRepository,
		newMaintenanceItemRepository,
		newMaintenanceLogRepository,
		newGeneralRepository,
		newAttachmentRepository,
		newBackupRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newVehicleRepository(db *gorm.DB) *infrastructure.VehicleRepository {
	return &infrastructure.VehicleRepository{DB: db}
}

func newMaintenanceItemRepository(db *gorm.DB) *infrastructure.MaintenanceItemRepository {
	return &infrastructure.MaintenanceItemRepository{DB: db}
}

func newMaintenanceLogRepository(db *gorm.DB) *infrastructure.MaintenanceLogRepository {
	return &infrastructure.MaintenanceLogRepository{DB: db}
}

func newGeneralRepository(db *gorm.DB) *infrastructure.GeneralRepository {
	return &infrastructure.GeneralRepository{DB: db}
}

func newAttachmentRepository(db *gorm.DB) *infrastructure.AttachmentRepository {
	return &infrastructure.AttachmentRepository{DB: db}
}

func newBackupRepository(db *gorm.DB) *infrastructure.BackupRepository {
	return &infrastructure.BackupRepository{DB: db}
}
