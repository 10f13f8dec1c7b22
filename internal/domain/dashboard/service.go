package dashboard

import (
	"context"

	"Garagem/internal/domain/health"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"

	"github.com/oklog/ulid/v2"
)

// Service monta a visão do dashboard: cada veículo com seu resumo de saúde
// e os itens mais urgentes. Os dados são materializados uma vez por
// requisição e entregues ao núcleo de cálculo como snapshot.
type Service struct {
	Vehicles vehicle.Repository
	Items    maintenance.ItemRepository
	Logs     maintenance.LogRepository
	Health   *health.Service
}

type VehicleSummary struct {
	Vehicle      *vehicle.Vehicle      `json:"vehicle"`
	Health       *health.VehicleHealth `json:"health"`
	HealthLabel  string                `json:"healthLabel"`
	HealthColor  string                `json:"healthColor"`
	ItemsTracked int                   `json:"itemsTracked"`
	Upcoming     []health.RankedItem   `json:"upcoming"`
}

type ItemStatusEntry struct {
	Item        *maintenance.MaintenanceItem `json:"item"`
	Status      *health.ItemStatus           `json:"status"`
	Label       string                       `json:"label"`
	Color       string                       `json:"color"`
	DisplayFill float64                      `json:"displayFill"`
}

type VehicleStatus struct {
	Vehicle *vehicle.Vehicle      `json:"vehicle"`
	Health  *health.VehicleHealth `json:"health"`
	Items   []ItemStatusEntry     `json:"items"`
}

func (s *Service) GetDashboard(ctx context.Context) ([]*VehicleSummary, error) {
	vehicles, err := s.Vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*VehicleSummary, 0, len(vehicles))
	for _, v := range vehicles {
		itemsWithLogs, err := s.loadSnapshot(ctx, v.Id)
		if err != nil {
			return nil, err
		}

		vehicleHealth := s.Health.ComputeVehicleHealth(v, itemsWithLogs)
		statusRange := health.GetStatusRange(vehicleHealth.Status)

		summaries = append(summaries, &VehicleSummary{
			Vehicle:      v,
			Health:       vehicleHealth,
			HealthLabel:  statusRange.Label,
			HealthColor:  statusRange.Color,
			ItemsTracked: len(itemsWithLogs),
			Upcoming:     s.Health.RankUpcoming(v, itemsWithLogs, health.DefaultUpcomingCount),
		})
	}

	return summaries, nil
}

func (s *Service) GetVehicleStatus(ctx context.Context, vehicleID ulid.ULID) (*VehicleStatus, error) {
	v, err := s.Vehicles.GetById(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	itemsWithLogs, err := s.loadSnapshot(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	entries := make([]ItemStatusEntry, 0, len(itemsWithLogs))
	for _, entry := range itemsWithLogs {
		status := s.Health.ComputeItemStatus(v, entry.Item, entry.Logs)
		statusRange := health.GetStatusRange(status.Status)
		entries = append(entries, ItemStatusEntry{
			Item:        entry.Item,
			Status:      status,
			Label:       statusRange.Label,
			Color:       statusRange.Color,
			DisplayFill: health.DisplayFill(status.PercentRemaining),
		})
	}

	return &VehicleStatus{
		Vehicle: v,
		Health:  s.Health.ComputeVehicleHealth(v, itemsWithLogs),
		Items:   entries,
	}, nil
}

func (s *Service) loadSnapshot(ctx context.Context, vehicleID ulid.ULID) ([]health.ItemWithLogs, error) {
	items, err := s.Items.GetByVehicleId(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	itemsWithLogs := make([]health.ItemWithLogs, 0, len(items))
	for _, item := range items {
		logs, err := s.Logs.GetByItemId(ctx, item.Id)
		if err != nil {
			return nil, err
		}
		itemsWithLogs = append(itemsWithLogs, health.ItemWithLogs{Item: item, Logs: logs})
	}

	return itemsWithLogs, nil
}
