package infrastructure

import (
	"context"
	"errors"
	"time"

	"Garagem/internal/domain/general"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"
	"Garagem/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GeneralRepository struct {
	DB *gorm.DB
}

type generalRecordDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	VehicleId     string    `gorm:"type:varchar(26);index;not null"`
	Description   string    `gorm:"not null"`
	DatePerformed time.Time `gorm:"type:date;not null"`
	Mileage       *int
	Cost          *float64
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toDomainGeneralRecord(rdb *generalRecordDB) (*general.GeneralRecord, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	vid, err := pkg.ParseULID(rdb.VehicleId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &general.GeneralRecord{
		Id:            id,
		VehicleId:     vid,
		Description:   rdb.Description,
		DatePerformed: rdb.DatePerformed,
		Mileage:       rdb.Mileage,
		Cost:          rdb.Cost,
		Notes:         rdb.Notes,
		CreatedAt:     rdb.CreatedAt,
		UpdatedAt:     rdb.UpdatedAt,
	}, nil
}

func toDBGeneralRecord(record *general.GeneralRecord) *generalRecordDB {
	return &generalRecordDB{
		Id:            record.Id.String(),
		VehicleId:     record.VehicleId.String(),
		Description:   record.Description,
		DatePerformed: record.DatePerformed,
		Mileage:       record.Mileage,
		Cost:          record.Cost,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

func (r *GeneralRepository) Create(ctx context.Context, record *general.GeneralRecord) error {
	rdb := toDBGeneralRecord(record)
	if err := r.DB.WithContext(ctx).Table("general_records").Create(&rdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GeneralRepository) GetById(ctx context.Context, id ulid.ULID) (*general.GeneralRecord, error) {
	var rdb generalRecordDB
	if err := r.DB.WithContext(ctx).Table("general_records").Where("id = ?", id.String()).First(&rdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRecordNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGeneralRecord(&rdb)
}

func (r *GeneralRepository) GetByVehicleId(ctx context.Context, vehicleID ulid.ULID) ([]*general.GeneralRecord, error) {
	records, err := query.ExecuteAll(
		query.New[generalRecordDB](r.DB, "general_records").
			Context(ctx).
			Where("vehicle_id = ?", vehicleID.String()).
			Order("date_performed DESC, id DESC"),
		toDomainGeneralRecord,
	)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return records, nil
}

func (r *GeneralRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*general.GeneralRecord, int64, error) {
	records, total, err := pkg.Paginate(
		r.DB.WithContext(ctx).Table("general_records"),
		pagination,
		"date_performed DESC",
		toDomainGeneralRecord,
	)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, 0, appErr
		}
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return records, total, nil
}

func (r *GeneralRepository) Update(ctx context.Context, record *general.GeneralRecord) error {
	rdb := toDBGeneralRecord(record)
	if err := r.DB.WithContext(ctx).Table("general_records").Where("id = ?", rdb.Id).Updates(&rdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GeneralRepository) Delete(ctx context.Context, id ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("attachments").
			Where("general_record_id = ?", id.String()).
			Delete(&attachmentDB{}).Error; err != nil {
			return err
		}
		result := tx.Table("general_records").Where("id = ?", id.String()).Delete(&generalRecordDB{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrRecordNotFound
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
