package contracts

import (
	domainMaintenance "Garagem/internal/domain/maintenance"
)

type MaintenanceItemCreateRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	MaintenanceType string `json:"maintenanceType" binding:"required,oneof=mileage time"`
	FrequencyValue  int    `json:"frequencyValue" binding:"required,gt=0"`
	FrequencyUnit   string `json:"frequencyUnit" binding:"required,oneof=miles days months years"`
	Notes           string `json:"notes" binding:"omitempty"`
}

type MaintenanceItemUpdateRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	MaintenanceType *string `json:"maintenanceType" binding:"omitempty,oneof=mileage time"`
	FrequencyValue  *int    `json:"frequencyValue" binding:"omitempty,gt=0"`
	FrequencyUnit   *string `json:"frequencyUnit" binding:"omitempty,oneof=miles days months years"`
	Notes           *string `json:"notes" binding:"omitempty"`
}

// MaintenanceLogCreateRequest chega como multipart/form-data para
// permitir o envio do recibo junto; DatePerformed usa o formato 2006-01-02.
type MaintenanceLogCreateRequest struct {
	DatePerformed string   `form:"datePerformed" binding:"required"`
	Mileage       *int     `form:"mileage" binding:"omitempty,gte=0"`
	Cost          *float64 `form:"cost" binding:"omitempty,gte=0"`
	Notes         string   `form:"notes" binding:"omitempty"`
}

type MaintenanceItemResponse struct {
	Item *domainMaintenance.MaintenanceItem `json:"item"`
}

type MaintenanceItemListResponse struct {
	Items []*domainMaintenance.MaintenanceItem `json:"items"`
	Total int64                                `json:"total"`
}

type MaintenanceLogResponse struct {
	Log *domainMaintenance.MaintenanceLog `json:"log"`
}

type MaintenanceLogListResponse struct {
	Logs  []*domainMaintenance.MaintenanceLog `json:"logs"`
	Total int                                 `json:"total"`
}
