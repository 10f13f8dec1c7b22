package contracts

import (
	domainVehicle "Garagem/internal/domain/vehicle"
)

type VehicleCreateRequest struct {
	Year           int     `json:"year" binding:"required,gte=1900,lte=2100"`
	Make           string  `json:"make" binding:"required,max=100"`
	Model          string  `json:"model" binding:"required,max=100"`
	EngineType     *string `json:"engineType" binding:"omitempty,max=100"`
	CurrentMileage *int    `json:"currentMileage" binding:"omitempty,gte=0"`
}

type VehicleUpdateRequest struct {
	Year           *int    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Make           *string `json:"make" binding:"omitempty,max=100"`
	Model          *string `json:"model" binding:"omitempty,max=100"`
	EngineType     *string `json:"engineType" binding:"omitempty,max=100"`
	CurrentMileage *int    `json:"currentMileage" binding:"omitempty,gte=0"`
}

type VehicleResponse struct {
	Vehicle *domainVehicle.Vehicle `json:"vehicle"`
}

type VehicleListResponse struct {
	Vehicles []*domainVehicle.Vehicle `json:"vehicles"`
	Total    int64                    `json:"total"`
}
