package general

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository     Repository
	Attachments    attachment.Repository
	Store          *attachment.Store
	VehicleService *vehicle.Service
}

func NewService(repo Repository, attachments attachment.Repository, store *attachment.Store, vehicleSvc *vehicle.Service) *Service {
	return &Service{
		Repository:     repo,
		Attachments:    attachments,
		Store:          store,
		VehicleService: vehicleSvc,
	}
}

type CreateRecordRequest struct {
	VehicleId     ulid.ULID
	Description   string
	DatePerformed time.Time
	Mileage       *int
	Cost          *float64
	Notes         string
}

type UpdateRecordRequest struct {
	Description   *string
	DatePerformed *time.Time
	Mileage       *int
	Cost          *float64
	Notes         *string
}

func (s *Service) CreateRecord(ctx context.Context, req *CreateRecordRequest, files []*multipart.FileHeader) (*GeneralRecord, error) {
	if _, err := s.VehicleService.GetVehicleByID(ctx, req.VehicleId); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" {
		return nil, appErrors.NewValidationError("description", "é obrigatório")
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
	if len(files) > s.Store.MaxPerRecord() {
		return nil, appErrors.ErrTooManyAttachments.WithDetails(map[string]interface{}{
			"max": s.Store.MaxPerRecord(),
		})
	}

	now := time.Now()
	record := &GeneralRecord{
		Id:            pkg.GenerateULIDObject(),
		VehicleId:     req.VehicleId,
		Description:   strings.TrimSpace(req.Description),
		DatePerformed: req.DatePerformed,
		Mileage:       req.Mileage,
		Cost:          req.Cost,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, record); err != nil {
		return nil, err
	}

	if err := s.attachFiles(ctx, record.Id, files); err != nil {
		return nil, err
	}

	if record.Mileage != nil {
		if err := s.VehicleService.RaiseMileage(ctx, record.VehicleId, *record.Mileage); err != nil {
			logger.Warn().
				Err(err).
				Str("vehicle_id", record.VehicleId.String()).
				Msg("Falha ao atualizar quilometragem do veículo")
		}
	}

	return record, nil
}

func (s *Service) GetRecordByID(ctx context.Context, id ulid.ULID) (*GeneralRecord, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListRecordsByVehicle(ctx context.Context, vehicleID ulid.ULID) ([]*GeneralRecord, error) {
	if _, err := s.VehicleService.GetVehicleByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	return s.Repository.GetByVehicleId(ctx, vehicleID)
}

func (s *Service) ListRecords(ctx context.Context, pagination *pkg.PaginationParams) ([]*GeneralRecord, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) ListAttachments(ctx context.Context, recordID ulid.ULID) ([]*attachment.Attachment, error) {
	if _, err := s.Repository.GetById(ctx, recordID); err != nil {
		return nil, err
	}
	return s.Attachments.GetByGeneralRecordId(ctx, recordID)
}

func (s *Service) UpdateRecord(ctx context.Context, id ulid.ULID, req *UpdateRecordRequest, files []*multipart.FileHeader) (*GeneralRecord, error) {
	record, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, appErrors.NewValidationError("description", "é obrigatório")
		}
		record.Description = strings.TrimSpace(*req.Description)
	}

	if req.DatePerformed != nil {
		if req.DatePerformed.IsZero() {
			return nil, appErrors.NewValidationError("date_performed", "deve ser uma data válida")
		}
		record.DatePerformed = *req.DatePerformed
	}

	if req.Mileage != nil {
		if *req.Mileage < 0 {
			return nil, appErrors.NewValidationError("mileage", "deve ser maior ou igual a zero")
		}
		record.Mileage = req.Mileage
	}

	if req.Cost != nil {
		if *req.Cost < 0 {
			return nil, appErrors.NewValidationError("cost", "deve ser maior ou igual a zero")
		}
		record.Cost = req.Cost
	}

	if req.Notes != nil {
		record.Notes = strings.TrimSpace(*req.Notes)
	}

	if len(files) > 0 {
		existing, err := s.Attachments.CountByGeneralRecordId(ctx, id)
		if err != nil {
			return nil, err
		}
		if int(existing)+len(files) > s.Store.MaxPerRecord() {
			return nil, appErrors.ErrTooManyAttachments.WithDetails(map[string]interface{}{
				"max":      s.Store.MaxPerRecord(),
				"existing": existing,
			})
		}
		if err := s.attachFiles(ctx, id, files); err != nil {
			return nil, err
		}
	}

	record.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}

	attachments, err := s.Attachments.GetByGeneralRecordId(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	paths := make([]string, 0, len(attachments))
	for _, att := range attachments {
		paths = append(paths, att.FilePath)
	}
	s.Store.RemoveFiles(paths)

	return nil
}

func (s *Service) DeleteAttachment(ctx context.Context, id ulid.ULID) error {
	att, err := s.Attachments.GetById(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Attachments.Delete(ctx, id); err != nil {
		return err
	}

	s.Store.RemoveFiles([]string{att.FilePath})
	return nil
}

func (s *Service) attachFiles(ctx context.Context, recordID ulid.ULID, files []*multipart.FileHeader) error {
	for _, file := range files {
		storedPath, err := s.Store.SaveFile(file)
		if err != nil {
			return err
		}

		att := &attachment.Attachment{
			Id:              pkg.GenerateULIDObject(),
			Filename:        file.Filename,
			FilePath:        storedPath,
			FileType:        file.Header.Get("Content-Type"),
			FileSize:        file.Size,
			GeneralRecordId: &recordID,
			CreatedAt:       time.Now(),
		}

		if err := s.Attachments.Create(ctx, att); err != nil {
			s.Store.RemoveFiles([]string{storedPath})
			return err
		}
	}
	return nil
}
