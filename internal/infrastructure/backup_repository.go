package infrastructure

import (
	"context"

	appErrors "Garagem/internal/errors"

	"gorm.io/gorm"
)

type BackupRepository struct {
	DB *gorm.DB
}

// PurgeAll apaga todos os dados, na ordem inversa das dependências, para
// o import em modo replace.
func (r *BackupRepository) PurgeAll(ctx context.Context) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("attachments").Where("1 = 1").Delete(&attachmentDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("maintenance_logs").Where("1 = 1").Delete(&maintenanceLogDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("general_records").Where("1 = 1").Delete(&generalRecordDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("maintenance_items").Where("1 = 1").Delete(&maintenanceItemDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("vehicles").Where("1 = 1").Delete(&vehicleDB{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
