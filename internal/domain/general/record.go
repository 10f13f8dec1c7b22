package general

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// GeneralRecord é um serviço avulso feito no veículo, fora dos itens de
// manutenção recorrentes.
type GeneralRecord struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	VehicleId     ulid.ULID `gorm:"type:varchar(26);index:idx_general_records_vehicle_id;not null" json:"vehicleId"`
	Description   string    `gorm:"type:varchar(255);not null" json:"description"`
	DatePerformed time.Time `gorm:"type:date;not null" json:"datePerformed"`
	Mileage       *int      `json:"mileage"`
	Cost          *float64  `gorm:"type:decimal(10,2)" json:"cost"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (GeneralRecord) TableName() string {
	return "general_records"
}
