package infrastructure

import (
	"context"
	"errors"
	"time"

	"Garagem/internal/domain/maintenance"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type MaintenanceItemRepository struct {
	DB *gorm.DB
}

type maintenanceItemDB struct {
	Id              string `gorm:"type:varchar(26);primaryKey"`
	VehicleId       string `gorm:"type:varchar(26);index;not null"`
	Name            string `gorm:"not null"`
	MaintenanceType string `gorm:"type:varchar(20);not null"`
	FrequencyValue  int    `gorm:"not null"`
	FrequencyUnit   string `gorm:"type:varchar(20);not null"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toDomainMaintenanceItem(idb *maintenanceItemDB) (*maintenance.MaintenanceItem, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	vid, err := pkg.ParseULID(idb.VehicleId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &maintenance.MaintenanceItem{
		Id:              id,
		VehicleId:       vid,
		Name:            idb.Name,
		MaintenanceType: maintenance.Type(idb.MaintenanceType),
		FrequencyValue:  idb.FrequencyValue,
		FrequencyUnit:   maintenance.FrequencyUnit(idb.FrequencyUnit),
		Notes:           idb.Notes,
		CreatedAt:       idb.CreatedAt,
		UpdatedAt:       idb.UpdatedAt,
	}, nil
}

func toDBMaintenanceItem(item *maintenance.MaintenanceItem) *maintenanceItemDB {
	return &maintenanceItemDB{
		Id:              item.Id.String(),
		VehicleId:       item.VehicleId.String(),
		Name:            item.Name,
		MaintenanceType: string(item.MaintenanceType),
		FrequencyValue:  item.FrequencyValue,
		FrequencyUnit:   string(item.FrequencyUnit),
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (r *MaintenanceItemRepository) Create(ctx context.Context, item *maintenance.MaintenanceItem) error {
	idb := toDBMaintenanceItem(item)
	if err := r.DB.WithContext(ctx).Table("maintenance_items").Create(&idb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *MaintenanceItemRepository) GetById(ctx context.Context, id ulid.ULID) (*maintenance.MaintenanceItem, error) {
	var idb maintenanceItemDB
	if err := r.DB.WithContext(ctx).Table("maintenance_items").Where("id = ?", id.String()).First(&idb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrItemNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMaintenanceItem(&idb)
}

func (r *MaintenanceItemRepository) GetByVehicleId(ctx context.Context, vehicleID ulid.ULID) ([]*maintenance.MaintenanceItem, error) {
	var rows []maintenanceItemDB
	if err := r.DB.WithContext(ctx).Table("maintenance_items").
		Where("vehicle_id = ?", vehicleID.String()).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*maintenance.MaintenanceItem, 0, len(rows))
	for i := range rows {
		item, err := toDomainMaintenanceItem(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MaintenanceItemRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*maintenance.MaintenanceItem, int64, error) {
	items, total, err := pkg.Paginate(
		r.DB.WithContext(ctx).Table("maintenance_items"),
		pagination,
		"created_at DESC",
		toDomainMaintenanceItem,
	)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, 0, appErr
		}
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return items, total, nil
}

func (r *MaintenanceItemRepository) Update(ctx context.Context, item *maintenance.MaintenanceItem) error {
	idb := toDBMaintenanceItem(item)
	if err := r.DB.WithContext(ctx).Table("maintenance_items").Where("id = ?", idb.Id).Updates(&idb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *MaintenanceItemRepository) ReceiptPaths(ctx context.Context, id ulid.ULID) ([]string, error) {
	var receipts []string
	if err := r.DB.WithContext(ctx).Table("maintenance_logs").
		Where("item_id = ? AND receipt_photo IS NOT NULL", id.String()).
		Pluck("receipt_photo", &receipts).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return receipts, nil
}

func (r *MaintenanceItemRepository) Delete(ctx context.Context, id ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("maintenance_logs").
			Where("item_id = ?", id.String()).
			Delete(&maintenanceLogDB{}).Error; err != nil {
			return err
		}
		result := tx.Table("maintenance_items").Where("id = ?", id.String()).Delete(&maintenanceItemDB{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
