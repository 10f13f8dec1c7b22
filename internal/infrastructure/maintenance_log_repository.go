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

type MaintenanceLogRepository struct {
	DB *gorm.DB
}

type maintenanceLogDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	ItemId        string    `gorm:"type:varchar(26);index;not null"`
	DatePerformed time.Time `gorm:"type:date;not null"`
	Mileage       *int
	Cost          *float64
	Notes         string
	ReceiptPhoto  *string
	CreatedAt     time.Time
}

func toDomainMaintenanceLog(ldb *maintenanceLogDB) (*maintenance.MaintenanceLog, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	iid, err := pkg.ParseULID(ldb.ItemId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &maintenance.MaintenanceLog{
		Id:            id,
		ItemId:        iid,
		DatePerformed: ldb.DatePerformed,
		Mileage:       ldb.Mileage,
		Cost:          ldb.Cost,
		Notes:         ldb.Notes,
		ReceiptPhoto:  ldb.ReceiptPhoto,
		CreatedAt:     ldb.CreatedAt,
	}, nil
}

func toDBMaintenanceLog(log *maintenance.MaintenanceLog) *maintenanceLogDB {
	return &maintenanceLogDB{
		Id:            log.Id.String(),
		ItemId:        log.ItemId.String(),
		DatePerformed: log.DatePerformed,
		Mileage:       log.Mileage,
		Cost:          log.Cost,
		Notes:         log.Notes,
		ReceiptPhoto:  log.ReceiptPhoto,
		CreatedAt:     log.CreatedAt,
	}
}

func (r *MaintenanceLogRepository) Create(ctx context.Context, log *maintenance.MaintenanceLog) error {
	ldb := toDBMaintenanceLog(log)
	if err := r.DB.WithContext(ctx).Table("maintenance_logs").Create(&ldb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *MaintenanceLogRepository) GetById(ctx context.Context, id ulid.ULID) (*maintenance.MaintenanceLog, error) {
	var ldb maintenanceLogDB
	if err := r.DB.WithContext(ctx).Table("maintenance_logs").Where("id = ?", id.String()).First(&ldb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrLogNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMaintenanceLog(&ldb)
}

// GetByItemId ordena do mais recente para o mais antigo; logs na mesma
// data saem pelo id decrescente, que num ULID equivale à ordem de criação.
func (r *MaintenanceLogRepository) GetByItemId(ctx context.Context, itemID ulid.ULID) ([]*maintenance.MaintenanceLog, error) {
	var rows []maintenanceLogDB
	if err := r.DB.WithContext(ctx).Table("maintenance_logs").
		Where("item_id = ?", itemID.String()).
		Order("date_performed DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*maintenance.MaintenanceLog, 0, len(rows))
	for i := range rows {
		log, err := toDomainMaintenanceLog(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, log)
	}
	return out, nil
}

func (r *MaintenanceLogRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("maintenance_logs").Where("id = ?", id.String()).Delete(&maintenanceLogDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrLogNotFound
	}
	return nil
}
