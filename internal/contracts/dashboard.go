package contracts

import (
	domainDashboard "Garagem/internal/domain/dashboard"
)

type DashboardResponse struct {
	Vehicles []*domainDashboard.VehicleSummary `json:"vehicles"`
	Total    int                               `json:"total"`
}

type VehicleStatusResponse struct {
	Status *domainDashboard.VehicleStatus `json:"status"`
}
