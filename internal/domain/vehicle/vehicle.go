package vehicle

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Vehicle struct {
	Id             ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Year           int       `gorm:"not null" json:"year"`
	Make           string    `gorm:"type:varchar(100);not null" json:"make"`
	Model          string    `gorm:"type:varchar(100);not null" json:"model"`
	EngineType     *string   `gorm:"type:varchar(100)" json:"engineType"`
	CurrentMileage int       `gorm:"not null;default:0" json:"currentMileage"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
