package infrastructure

import (
	"context"
	"errors"
	"time"

	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	DB *gorm.DB
}

type vehicleDB struct {
	Id             string `gorm:"type:varchar(26);primaryKey"`
	Year           int    `gorm:"not null"`
	Make           string `gorm:"not null"`
	Model          string `gorm:"not null"`
	EngineType     *string
	CurrentMileage int `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toDomainVehicle(vdb *vehicleDB) (*vehicle.Vehicle, error) {
	id, err := pkg.ParseULID(vdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &vehicle.Vehicle{
		Id:             id,
		Year:           vdb.Year,
		Make:           vdb.Make,
		Model:          vdb.Model,
		EngineType:     vdb.EngineType,
		CurrentMileage: vdb.CurrentMileage,
		CreatedAt:      vdb.CreatedAt,
		UpdatedAt:      vdb.UpdatedAt,
	}, nil
}

func toDBVehicle(v *vehicle.Vehicle) *vehicleDB {
	return &vehicleDB{
		Id:             v.Id.String(),
		Year:           v.Year,
		Make:           v.Make,
		Model:          v.Model,
		EngineType:     v.EngineType,
		CurrentMileage: v.CurrentMileage,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	vdb := toDBVehicle(v)
	if err := r.DB.WithContext(ctx).Table("vehicles").Create(&vdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) GetById(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
	var vdb vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", id.String()).First(&vdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrVehicleNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainVehicle(&vdb)
}

func (r *VehicleRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	vehicles, total, err := pkg.Paginate(
		r.DB.WithContext(ctx).Table("vehicles"),
		pagination,
		"created_at DESC",
		toDomainVehicle,
	)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, 0, appErr
		}
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return vehicles, total, nil
}

func (r *VehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var rows []vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*vehicle.Vehicle, 0, len(rows))
	for i := range rows {
		v, err := toDomainVehicle(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	vdb := toDBVehicle(v)
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", vdb.Id).Updates(&vdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", id.String()).Updates(fields).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) AttachmentPaths(ctx context.Context, id ulid.ULID) ([]string, error) {
	var paths []string

	var receipts []string
	if err := r.DB.WithContext(ctx).Table("maintenance_logs").
		Joins("JOIN maintenance_items ON maintenance_items.id = maintenance_logs.item_id").
		Where("maintenance_items.vehicle_id = ? AND maintenance_logs.receipt_photo IS NOT NULL", id.String()).
		Pluck("maintenance_logs.receipt_photo", &receipts).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	paths = append(paths, receipts...)

	var files []string
	if err := r.DB.WithContext(ctx).Table("attachments").
		Joins("JOIN general_records ON general_records.id = attachments.general_record_id").
		Where("general_records.vehicle_id = ?", id.String()).
		Pluck("attachments.file_path", &files).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	paths = append(paths, files...)

	return paths, nil
}

// Delete remove o veículo e tudo que pende dele numa única transação.
func (r *VehicleRepository) Delete(ctx context.Context, id ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("attachments").
			Where("general_record_id IN (?)",
				tx.Table("general_records").Select("id").Where("vehicle_id = ?", id.String())).
			Delete(&attachmentDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("maintenance_logs").
			Where("item_id IN (?)",
				tx.Table("maintenance_items").Select("id").Where("vehicle_id = ?", id.String())).
			Delete(&maintenanceLogDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("general_records").
			Where("vehicle_id = ?", id.String()).
			Delete(&generalRecordDB{}).Error; err != nil {
			return err
		}
		if err := tx.Table("maintenance_items").
			Where("vehicle_id = ?", id.String()).
			Delete(&maintenanceItemDB{}).Error; err != nil {
			return err
		}
		result := tx.Table("vehicles").Where("id = ?", id.String()).Delete(&vehicleDB{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrVehicleNotFound
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
