package backup

import (
	"context"
	"time"

	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
	"Garagem/internal/pkg"
)

const dateLayout = "2006-01-02"

// Purger remove todos os dados da base antes de um import em modo replace.
type Purger interface {
	PurgeAll(ctx context.Context) error
}

type Service struct {
	Vehicles    vehicle.Repository
	Items       maintenance.ItemRepository
	Logs        maintenance.LogRepository
	Records     general.Repository
	Attachments attachment.Repository
	Purger      Purger
	Now         func() time.Time
}

func NewService(
	vehicles vehicle.Repository,
	items maintenance.ItemRepository,
	logs maintenance.LogRepository,
	records general.Repository,
	attachments attachment.Repository,
	purger Purger,
) *Service {
	return &Service{
		Vehicles:    vehicles,
		Items:       items,
		Logs:        logs,
		Records:     records,
		Attachments: attachments,
		Purger:      purger,
		Now:         time.Now,
	}
}

// Export monta o documento de backup com todos os veículos e seus dados.
func (s *Service) Export(ctx context.Context) (*Document, error) {
	vehicles, err := s.Vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ExportDate: s.Now().UTC().Format(time.RFC3339),
		Version:    Version,
		Vehicles:   make([]VehicleExport, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		ve := VehicleExport{
			Year:             v.Year,
			Make:             v.Make,
			Model:            v.Model,
			EngineType:       v.EngineType,
			CurrentMileage:   v.CurrentMileage,
			MaintenanceItems: []ItemExport{},
			GeneralRecords:   []RecordExport{},
		}

		items, err := s.Items.GetByVehicleId(ctx, v.Id)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			ie := ItemExport{
				Name:            item.Name,
				MaintenanceType: string(item.MaintenanceType),
				FrequencyValue:  item.FrequencyValue,
				FrequencyUnit:   string(item.FrequencyUnit),
				Notes:           item.Notes,
				Logs:            []LogExport{},
			}
			logs, err := s.Logs.GetByItemId(ctx, item.Id)
			if err != nil {
				return nil, err
			}
			for _, log := range logs {
				ie.Logs = append(ie.Logs, LogExport{
					DatePerformed: log.DatePerformed.Format(dateLayout),
					Mileage:       log.Mileage,
					Cost:          log.Cost,
					Notes:         log.Notes,
					ReceiptPhoto:  log.ReceiptPhoto,
					Attachments:   []AttachmentExport{},
				})
			}
			ve.MaintenanceItems = append(ve.MaintenanceItems, ie)
		}

		records, err := s.Records.GetByVehicleId(ctx, v.Id)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			re := RecordExport{
				Description:   rec.Description,
				DatePerformed: rec.DatePerformed.Format(dateLayout),
				Mileage:       rec.Mileage,
				Cost:          rec.Cost,
				Notes:         rec.Notes,
				Attachments:   []AttachmentExport{},
			}
			atts, err := s.Attachments.GetByGeneralRecordId(ctx, rec.Id)
			if err != nil {
				return nil, err
			}
			for _, att := range atts {
				re.Attachments = append(re.Attachments, AttachmentExport{
					Filename: att.Filename,
					FileType: att.FileType,
					FileSize: att.FileSize,
				})
			}
			ve.GeneralRecords = append(ve.GeneralRecords, re)
		}

		doc.Vehicles = append(doc.Vehicles, ve)
	}

	return doc, nil
}

// Filename gera o nome do arquivo de download com carimbo de data/hora.
func (s *Service) Filename() string {
	return "garagem_backup_" + s.Now().Format("20060102_150405") + ".json"
}

// Import restaura um documento de backup. Em modo replace todos os dados
// atuais são apagados antes; em modo merge os veículos do backup são
// adicionados aos existentes. IDs novos são gerados em todos os casos e
// os arquivos de anexos não são restaurados, apenas os metadados ficam
// de fora.
func (s *Service) Import(ctx context.Context, doc *Document, mode string) (*ImportResult, error) {
	if doc == nil || doc.Vehicles == nil {
		return nil, appErrors.ErrInvalidBackup
	}
	if mode != ModeMerge && mode != ModeReplace {
		return nil, appErrors.ErrBadRequest.WithDetails(map[string]interface{}{
			"mode": "deve ser merge ou replace",
		})
	}

	if mode == ModeReplace {
		if err := s.Purger.PurgeAll(ctx); err != nil {
			return nil, err
		}
		logger.Info().Msg("dados existentes removidos para importação em modo replace")
	}

	result := &ImportResult{}
	now := s.Now()

	for _, ve := range doc.Vehicles {
		v := &vehicle.Vehicle{
			Id:             pkg.GenerateULIDObject(),
			Year:           ve.Year,
			Make:           ve.Make,
			Model:          ve.Model,
			EngineType:     ve.EngineType,
			CurrentMileage: ve.CurrentMileage,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.Vehicles.Create(ctx, v); err != nil {
			return nil, err
		}
		result.Vehicles++

		for _, ie := range ve.MaintenanceItems {
			item := &maintenance.MaintenanceItem{
				Id:              pkg.GenerateULIDObject(),
				VehicleId:       v.Id,
				Name:            ie.Name,
				MaintenanceType: maintenance.Type(ie.MaintenanceType),
				FrequencyValue:  ie.FrequencyValue,
				FrequencyUnit:   maintenance.FrequencyUnit(ie.FrequencyUnit),
				Notes:           ie.Notes,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := s.Items.Create(ctx, item); err != nil {
				return nil, err
			}
			result.MaintenanceItems++

			for _, le := range ie.Logs {
				date, err := parseDate(le.DatePerformed)
				if err != nil {
					return nil, appErrors.ErrInvalidBackup.WithDetails(map[string]interface{}{
						"date_performed": "data inválida em log de manutenção: " + le.DatePerformed,
					})
				}
				log := &maintenance.MaintenanceLog{
					Id:            pkg.GenerateULIDObject(),
					ItemId:        item.Id,
					DatePerformed: date,
					Mileage:       le.Mileage,
					Cost:          le.Cost,
					Notes:         le.Notes,
					CreatedAt:     now,
				}
				if err := s.Logs.Create(ctx, log); err != nil {
					return nil, err
				}
				result.MaintenanceLogs++
			}
		}

		for _, re := range ve.GeneralRecords {
			date, err := parseDate(re.DatePerformed)
			if err != nil {
				return nil, appErrors.ErrInvalidBackup.WithDetails(map[string]interface{}{
					"date_performed": "data inválida em serviço avulso: " + re.DatePerformed,
				})
			}
			rec := &general.GeneralRecord{
				Id:            pkg.GenerateULIDObject(),
				VehicleId:     v.Id,
				Description:   re.Description,
				DatePerformed: date,
				Mileage:       re.Mileage,
				Cost:          re.Cost,
				Notes:         re.Notes,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := s.Records.Create(ctx, rec); err != nil {
				return nil, err
			}
			result.GeneralRecords++
		}
	}

	logger.Info().
		Int("vehicles", result.Vehicles).
		Int("items", result.MaintenanceItems).
		Int("logs", result.MaintenanceLogs).
		Int("records", result.GeneralRecords).
		Str("mode", mode).
		Msg("importação de backup concluída")

	return result, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
