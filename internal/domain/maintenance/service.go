package maintenance

import (
	"context"
	"strings"
	"time"

	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Items          ItemRepository
	Logs           LogRepository
	VehicleService *vehicle.Service
	Files          vehicle.FileRemover
}

func NewService(items ItemRepository, logs LogRepository, vehicleSvc *vehicle.Service, files vehicle.FileRemover) *Service {
	return &Service{
		Items:          items,
		Logs:           logs,
		VehicleService: vehicleSvc,
		Files:          files,
	}
}

type CreateItemRequest struct {
	VehicleId       ulid.ULID
	Name            string
	MaintenanceType Type
	FrequencyValue  int
	FrequencyUnit   FrequencyUnit
	Notes           string
}

type UpdateItemRequest struct {
	Name            *string
	MaintenanceType *Type
	FrequencyValue  *int
	FrequencyUnit   *FrequencyUnit
	Notes           *string
}

type CreateLogRequest struct {
	ItemId        ulid.ULID
	DatePerformed time.Time
	Mileage       *int
	Cost          *float64
	Notes         string
	ReceiptPhoto  *string
}

func (s *Service) CreateItem(ctx context.Context, req *CreateItemRequest) (*MaintenanceItem, error) {
	if _, err := s.VehicleService.GetVehicleByID(ctx, req.VehicleId); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if !req.MaintenanceType.IsValid() {
		return nil, appErrors.NewValidationError("maintenance_type", "deve ser 'mileage' ou 'time'")
	}
	// Frequência zero ou negativa tornaria o cálculo de status indefinido
	if req.FrequencyValue <= 0 {
		return nil, appErrors.NewValidationError("frequency_value", "deve ser maior que zero")
	}
	if !req.FrequencyUnit.IsValid() {
		return nil, appErrors.NewValidationError("frequency_unit", "deve ser 'miles', 'days', 'months' ou 'years'")
	}
	if !req.FrequencyUnit.MatchesType(req.MaintenanceType) {
		return nil, appErrors.NewValidationError("frequency_unit", "incompatível com o tipo de manutenção")
	}

	now := time.Now()
	item := &MaintenanceItem{
		Id:              pkg.GenerateULIDObject(),
		VehicleId:       req.VehicleId,
		Name:            strings.TrimSpace(req.Name),
		MaintenanceType: req.MaintenanceType,
		FrequencyValue:  req.FrequencyValue,
		FrequencyUnit:   req.FrequencyUnit,
		Notes:           strings.TrimSpace(req.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) GetItemByID(ctx context.Context, id ulid.ULID) (*MaintenanceItem, error) {
	return s.Items.GetById(ctx, id)
}

func (s *Service) ListItemsByVehicle(ctx context.Context, vehicleID ulid.ULID) ([]*MaintenanceItem, error) {
	if _, err := s.VehicleService.GetVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.Items.GetByVehicleId(ctx, vehicleID)
}

func (s *Service) ListItems(ctx context.Context, pagination *pkg.PaginationParams) ([]*MaintenanceItem, int64, error) {
	return s.Items.List(ctx, pagination)
}

func (s *Service) UpdateItem(ctx context.Context, id ulid.ULID, req *UpdateItemRequest) (*MaintenanceItem, error) {
	item, err := s.Items.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		item.Name = strings.TrimSpace(*req.Name)
	}

	if req.MaintenanceType != nil {
		if !req.MaintenanceType.IsValid() {
			return nil, appErrors.NewValidationError("maintenance_type", "deve ser 'mileage' ou 'time'")
		}
		item.MaintenanceType = *req.MaintenanceType
	}

	if req.FrequencyValue != nil {
		if *req.FrequencyValue <= 0 {
			return nil, appErrors.NewValidationError("frequency_value", "deve ser maior que zero")
		}
		item.FrequencyValue = *req.FrequencyValue
	}

	if req.FrequencyUnit != nil {
		if !req.FrequencyUnit.IsValid() {
			return nil, appErrors.NewValidationError("frequency_unit", "deve ser 'miles', 'days', 'months' ou 'years'")
		}
		item.FrequencyUnit = *req.FrequencyUnit
	}

	// A coerência é validada sobre o par resultante, já que tipo e unidade
	// podem ser alterados em requisições separadas
	if !item.FrequencyUnit.MatchesType(item.MaintenanceType) {
		return nil, appErrors.NewValidationError("frequency_unit", "incompatível com o tipo de manutenção")
	}

	if req.Notes != nil {
		item.Notes = strings.TrimSpace(*req.Notes)
	}

	item.UpdatedAt = time.Now()

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Items.GetById(ctx, id); err != nil {
		return err
	}

	paths, err := s.Items.ReceiptPaths(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Items.Delete(ctx, id); err != nil {
		return err
	}

	if s.Files != nil {
		s.Files.RemoveFiles(paths)
	}

	logger.Info().Str("item_id", id.String()).Msg("Item de manutenção removido com seus logs")
	return nil
}

func (s *Service) CreateLog(ctx context.Context, req *CreateLogRequest) (*MaintenanceLog, error) {
	item, err := s.Items.GetById(ctx, req.ItemId)
	if err != nil {
		return nil, err
	}

	if req.DatePerformed.IsZero() {
		return nil, appErrors.NewValidationError("date_performed", "é obrigatório")
	}
	if req.Mileage != nil && *req.Mileage < 0 {
		return nil, appErrors.NewValidationError("mileage", "deve ser maior ou igual a zero")
	}
	if req.Cost != nil && *req.Cost < 0 {
		return nil, appErrors.NewValidationError("cost", "deve ser maior ou igual a zero")
	}

	log := &MaintenanceLog{
		Id:            pkg.GenerateULIDObject(),
		ItemId:        req.ItemId,
		DatePerformed: req.DatePerformed,
		Mileage:       req.Mileage,
		Cost:          req.Cost,
		Notes:         strings.TrimSpace(req.Notes),
		ReceiptPhoto:  req.ReceiptPhoto,
		CreatedAt:     time.Now(),
	}

	if err := s.Logs.Create(ctx, log); err != nil {
		return nil, err
	}

	// O odômetro do veículo acompanha a quilometragem mais alta registrada
	if log.Mileage != nil {
		if err := s.VehicleService.RaiseMileage(ctx, item.VehicleId, *log.Mileage); err != nil {
			logger.Warn().
				Err(err).
				Str("vehicle_id", item.VehicleId.String()).
				Msg("Falha ao atualizar quilometragem do veículo")
		}
	}

	return log, nil
}

func (s *Service) GetLogByID(ctx context.Context, id ulid.ULID) (*MaintenanceLog, error) {
	return s.Logs.GetById(ctx, id)
}

func (s *Service) ListLogsByItem(ctx context.Context, itemID ulid.ULID) ([]*MaintenanceLog, error) {
	if _, err := s.Items.GetById(ctx, itemID); err != nil {
		return nil, err
	}
	return s.Logs.GetByItemId(ctx, itemID)
}

func (s *Service) DeleteLog(ctx context.Context, id ulid.ULID) error {
	log, err := s.Logs.GetById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Logs.Delete(ctx, id); err != nil {
		return err
	}

	if log.ReceiptPhoto != nil && s.Files != nil {
		s.Files.RemoveFiles([]string{*log.ReceiptPhoto})
	}

	return nil
}
