package maintenance

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type MaintenanceItem struct {
	Id              ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	VehicleId       ulid.ULID     `gorm:"type:varchar(26);index:idx_maintenance_items_vehicle_id;not null" json:"vehicleId"`
	Name            string        `gorm:"type:varchar(100);not null" json:"name"`
	MaintenanceType Type          `gorm:"type:varchar(20);not null" json:"maintenanceType"`
	FrequencyValue  int           `gorm:"not null" json:"frequencyValue"`
	FrequencyUnit   FrequencyUnit `gorm:"type:varchar(20);not null" json:"frequencyUnit"`
	Notes           string        `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time     `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (MaintenanceItem) TableName() string {
	return "maintenance_items"
}

type Type string

const (
	TypeMileage Type = "mileage"
	TypeTime    Type = "time"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeMileage, TypeTime:
		return true
	}
	return false
}

type FrequencyUnit string

const (
	UnitMiles  FrequencyUnit = "miles"
	UnitDays   FrequencyUnit = "days"
	UnitMonths FrequencyUnit = "months"
	UnitYears  FrequencyUnit = "years"
)

func (u FrequencyUnit) IsValid() bool {
	switch u {
	case UnitMiles, UnitDays, UnitMonths, UnitYears:
		return true
	}
	return false
}

// MatchesType garante a coerência entre o tipo do item e a unidade de
// frequência: manutenção por quilometragem usa milhas, por tempo usa
// dias, meses ou anos.
func (u FrequencyUnit) MatchesType(t Type) bool {
	if t == TypeMileage {
		return u == UnitMiles
	}
	return u == UnitDays || u == UnitMonths || u == UnitYears
}
