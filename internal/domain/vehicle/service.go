package vehicle

import (
	"context"
	"strings"
	"time"

	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// FileRemover remove arquivos de anexos órfãos após exclusões em cascata
type FileRemover interface {
	RemoveFiles(paths []string)
}

type Service struct {
	Repository Repository
	Files      FileRemover
}

func NewService(repo Repository, files FileRemover) *Service {
	return &Service{Repository: repo, Files: files}
}

type CreateVehicleRequest struct {
	Year           int
	Make           string
	Model          string
	EngineType     *string
	CurrentMileage int
}

type UpdateVehicleRequest struct {
	Year           *int
	Make           *string
	Model          *string
	EngineType     *string
	CurrentMileage *int
}

func (s *Service) CreateVehicle(ctx context.Context, req *CreateVehicleRequest) (*Vehicle, error) {
	if req.Year <= 0 {
		return nil, appErrors.NewValidationError("year", "deve ser maior que zero")
	}
	if strings.TrimSpace(req.Make) == "" {
		return nil, appErrors.NewValidationError("make", "é obrigatório")
	}
	if strings.TrimSpace(req.Model) == "" {
		return nil, appErrors.NewValidationError("model", "é obrigatório")
	}
	if req.CurrentMileage < 0 {
		return nil, appErrors.NewValidationError("current_mileage", "deve ser maior ou igual a zero")
	}

	now := time.Now()
	v := &Vehicle{
		Id:             pkg.GenerateULIDObject(),
		Year:           req.Year,
		Make:           strings.TrimSpace(req.Make),
		Model:          strings.TrimSpace(req.Model),
		EngineType:     req.EngineType,
		CurrentMileage: req.CurrentMileage,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repository.Create(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) GetVehicleByID(ctx context.Context, id ulid.ULID) (*Vehicle, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListVehicles(ctx context.Context, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) UpdateVehicle(ctx context.Context, id ulid.ULID, req *UpdateVehicleRequest) (*Vehicle, error) {
	v, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		if *req.Year <= 0 {
			return nil, appErrors.NewValidationError("year", "deve ser maior que zero")
		}
		v.Year = *req.Year
	}

	if req.Make != nil {
		if strings.TrimSpace(*req.Make) == "" {
			return nil, appErrors.NewValidationError("make", "é obrigatório")
		}
		v.Make = strings.TrimSpace(*req.Make)
	}

	if req.Model != nil {
		if strings.TrimSpace(*req.Model) == "" {
			return nil, appErrors.NewValidationError("model", "é obrigatório")
		}
		v.Model = strings.TrimSpace(*req.Model)
	}

	if req.EngineType != nil {
		v.EngineType = req.EngineType
	}

	// Correções de odômetro são aceitas, inclusive para baixo
	if req.CurrentMileage != nil {
		if *req.CurrentMileage < 0 {
			return nil, appErrors.NewValidationError("current_mileage", "deve ser maior ou igual a zero")
		}
		v.CurrentMileage = *req.CurrentMileage
	}

	v.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// RaiseMileage eleva a quilometragem do veículo quando um registro reporta
// valor maior que o atual. Nunca reduz.
func (s *Service) RaiseMileage(ctx context.Context, id ulid.ULID, mileage int) error {
	v, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return err
	}

	if mileage <= v.CurrentMileage {
		return nil
	}

	return s.Repository.UpdateFields(ctx, id, map[string]interface{}{
		"current_mileage": mileage,
		"updated_at":      time.Now(),
	})
}

func (s *Service) DeleteVehicle(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}

	paths, err := s.Repository.AttachmentPaths(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	if s.Files != nil {
		s.Files.RemoveFiles(paths)
	}

	logger.Info().Str("vehicle_id", id.String()).Msg("Veículo removido com itens, registros e anexos")
	return nil
}
