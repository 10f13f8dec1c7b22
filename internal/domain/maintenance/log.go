package maintenance

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// MaintenanceLog registra uma execução de um item de manutenção recorrente.
type MaintenanceLog struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	ItemId        ulid.ULID `gorm:"type:varchar(26);index:idx_maintenance_logs_item_id;not null" json:"itemId"`
	DatePerformed time.Time `gorm:"type:date;not null" json:"datePerformed"`
	Mileage       *int      `json:"mileage"`
	Cost          *float64  `gorm:"type:decimal(10,2)" json:"cost"`
	Notes         string    `gorm:"type:text" json:"notes"`
	ReceiptPhoto  *string   `gorm:"type:varchar(255)" json:"receiptPhoto"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
