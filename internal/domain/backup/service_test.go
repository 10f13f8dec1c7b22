package backup_test

import (
	"context"
	"testing"
	"time"

	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/backup"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type memoryVehicleRepo struct {
	vehicles []*vehicle.Vehicle
}

func (m *memoryVehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	m.vehicles = append(m.vehicles, v)
	return nil
}
func (m *memoryVehicleRepo) List(_ context.Context, _ *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	return m.vehicles, int64(len(m.vehicles)), nil
}
func (m *memoryVehicleRepo) ListAll(_ context.Context) ([]*vehicle.Vehicle, error) {
	return m.vehicles, nil
}
func (m *memoryVehicleRepo) GetById(_ context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
	for _, v := range m.vehicles {
		if v.Id == id {
			return v, nil
		}
	}
	return nil, appErrors.ErrVehicleNotFound
}
func (m *memoryVehicleRepo) Update(_ context.Context, _ *vehicle.Vehicle) error { return nil }
func (m *memoryVehicleRepo) UpdateFields(_ context.Context, _ ulid.ULID, _ map[string]interface{}) error {
	return nil
}
func (m *memoryVehicleRepo) AttachmentPaths(_ context.Context, _ ulid.ULID) ([]string, error) {
	return nil, nil
}
func (m *memoryVehicleRepo) Delete(_ context.Context, _ ulid.ULID) error { return nil }

type memoryItemRepo struct {
	items []*maintenance.MaintenanceItem
}

func (m *memoryItemRepo) Create(_ context.Context, item *maintenance.MaintenanceItem) error {
	m.items = append(m.items, item)
	return nil
}
func (m *memoryItemRepo) GetById(_ context.Context, id ulid.ULID) (*maintenance.MaintenanceItem, error) {
	return nil, appErrors.ErrItemNotFound
}
func (m *memoryItemRepo) GetByVehicleId(_ context.Context, vehicleID ulid.ULID) ([]*maintenance.MaintenanceItem, error) {
	var out []*maintenance.MaintenanceItem
	for _, item := range m.items {
		if item.VehicleId == vehicleID {
			out = append(out, item)
		}
	}
	return out, nil
}
func (m *memoryItemRepo) List(_ context.Context, _ *pkg.PaginationParams) ([]*maintenance.MaintenanceItem, int64, error) {
	return m.items, int64(len(m.items)), nil
}
func (m *memoryItemRepo) Update(_ context.Context, _ *maintenance.MaintenanceItem) error { return nil }
func (m *memoryItemRepo) Delete(_ context.Context, _ ulid.ULID) error                    { return nil }
func (m *memoryItemRepo) ReceiptPaths(_ context.Context, _ ulid.ULID) ([]string, error) {
	return nil, nil
}

type memoryLogRepo struct {
	logs []*maintenance.MaintenanceLog
}

func (m *memoryLogRepo) Create(_ context.Context, log *maintenance.MaintenanceLog) error {
	m.logs = append(m.logs, log)
	return nil
}
func (m *memoryLogRepo) GetById(_ context.Context, _ ulid.ULID) (*maintenance.MaintenanceLog, error) {
	return nil, appErrors.ErrLogNotFound
}
func (m *memoryLogRepo) GetByItemId(_ context.Context, itemID ulid.ULID) ([]*maintenance.MaintenanceLog, error) {
	var out []*maintenance.MaintenanceLog
	for _, log := range m.logs {
		if log.ItemId == itemID {
			out = append(out, log)
		}
	}
	return out, nil
}
func (m *memoryLogRepo) Delete(_ context.Context, _ ulid.ULID) error { return nil }

type memoryGeneralRepo struct {
	records []*general.GeneralRecord
}

func (m *memoryGeneralRepo) Create(_ context.Context, record *general.GeneralRecord) error {
	m.records = append(m.records, record)
	return nil
}
func (m *memoryGeneralRepo) GetById(_ context.Context, _ ulid.ULID) (*general.GeneralRecord, error) {
	return nil, appErrors.ErrRecordNotFound
}
func (m *memoryGeneralRepo) GetByVehicleId(_ context.Context, vehicleID ulid.ULID) ([]*general.GeneralRecord, error) {
	var out []*general.GeneralRecord
	for _, record := range m.records {
		if record.VehicleId == vehicleID {
			out = append(out, record)
		}
	}
	return out, nil
}
func (m *memoryGeneralRepo) List(_ context.Context, _ *pkg.PaginationParams) ([]*general.GeneralRecord, int64, error) {
	return m.records, int64(len(m.records)), nil
}
func (m *memoryGeneralRepo) Update(_ context.Context, _ *general.GeneralRecord) error { return nil }
func (m *memoryGeneralRepo) Delete(_ context.Context, _ ulid.ULID) error              { return nil }

type memoryAttachmentRepo struct {
	attachments []*attachment.Attachment
}

func (m *memoryAttachmentRepo) Create(_ context.Context, att *attachment.Attachment) error {
	m.attachments = append(m.attachments, att)
	return nil
}
func (m *memoryAttachmentRepo) GetById(_ context.Context, _ ulid.ULID) (*attachment.Attachment, error) {
	return nil, appErrors.ErrAttachmentNotFound
}
func (m *memoryAttachmentRepo) GetByGeneralRecordId(_ context.Context, recordID ulid.ULID) ([]*attachment.Attachment, error) {
	var out []*attachment.Attachment
	for _, att := range m.attachments {
		if att.GeneralRecordId != nil && *att.GeneralRecordId == recordID {
			out = append(out, att)
		}
	}
	return out, nil
}
func (m *memoryAttachmentRepo) CountByGeneralRecordId(_ context.Context, _ ulid.ULID) (int64, error) {
	return 0, nil
}
func (m *memoryAttachmentRepo) Delete(_ context.Context, _ ulid.ULID) error { return nil }

type fakePurger struct {
	purged bool
}

func (f *fakePurger) PurgeAll(_ context.Context) error {
	f.purged = true
	return nil
}

func seededService(t *testing.T) (*backup.Service, *memoryVehicleRepo, *fakePurger) {
	t.Helper()

	vehicles := &memoryVehicleRepo{}
	items := &memoryItemRepo{}
	logs := &memoryLogRepo{}
	records := &memoryGeneralRepo{}
	attachments := &memoryAttachmentRepo{}
	purger := &fakePurger{}

	svc := backup.NewService(vehicles, items, logs, records, attachments, purger)
	svc.Now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	}
	return svc, vehicles, purger
}

func sampleDocument() *backup.Document {
	mileage := 46000
	cost := 89.90
	return &backup.Document{
		ExportDate: "2026-08-31T12:00:00Z",
		Version:    backup.Version,
		Vehicles: []backup.VehicleExport{
			{
				Year:           2020,
				Make:           "Honda",
				Model:          "Civic",
				CurrentMileage: 50000,
				MaintenanceItems: []backup.ItemExport{
					{
						Name:            "Troca de óleo",
						MaintenanceType: "mileage",
						FrequencyValue:  5000,
						FrequencyUnit:   "miles",
						Logs: []backup.LogExport{
							{DatePerformed: "2026-06-15", Mileage: &mileage, Cost: &cost},
						},
					},
				},
				GeneralRecords: []backup.RecordExport{
					{Description: "Pneus novos", DatePerformed: "2026-05-10"},
				},
			},
			{
				Year:  2015,
				Make:  "Ford",
				Model: "Ranger",
			},
		},
	}
}

func TestExportBuildsFullDocument(t *testing.T) {
	t.Parallel()

	svc, vehicles, _ := seededService(t)
	ctx := context.Background()

	v := &vehicle.Vehicle{Id: ulid.Make(), Year: 2020, Make: "Honda", Model: "Civic", CurrentMileage: 50000}
	vehicles.vehicles = append(vehicles.vehicles, v)

	item := &maintenance.MaintenanceItem{
		Id:              ulid.Make(),
		VehicleId:       v.Id,
		Name:            "Troca de óleo",
		MaintenanceType: maintenance.TypeMileage,
		FrequencyValue:  5000,
		FrequencyUnit:   maintenance.UnitMiles,
	}
	svc.Items.(*memoryItemRepo).items = append(svc.Items.(*memoryItemRepo).items, item)

	mileage := 46000
	svc.Logs.(*memoryLogRepo).logs = append(svc.Logs.(*memoryLogRepo).logs, &maintenance.MaintenanceLog{
		Id:            ulid.Make(),
		ItemId:        item.Id,
		DatePerformed: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Mileage:       &mileage,
	})

	doc, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if doc.Version != backup.Version {
		t.Errorf("version = %s, esperado %s", doc.Version, backup.Version)
	}
	if len(doc.Vehicles) != 1 {
		t.Fatalf("veículos exportados = %d, esperado 1", len(doc.Vehicles))
	}
	ve := doc.Vehicles[0]
	if ve.Make != "Honda" || ve.CurrentMileage != 50000 {
		t.Errorf("veículo exportado = %+v", ve)
	}
	if len(ve.MaintenanceItems) != 1 || len(ve.MaintenanceItems[0].Logs) != 1 {
		t.Fatalf("itens/logs exportados incompletos: %+v", ve.MaintenanceItems)
	}
	if ve.MaintenanceItems[0].Logs[0].DatePerformed != "2026-06-15" {
		t.Errorf("data do log = %s, esperado 2026-06-15", ve.MaintenanceItems[0].Logs[0].DatePerformed)
	}
}

func TestFilenameCarriesTimestamp(t *testing.T) {
	t.Parallel()

	svc, _, _ := seededService(t)
	want := "garagem_backup_20260901_103000.json"
	if got := svc.Filename(); got != want {
		t.Errorf("filename = %s, esperado %s", got, want)
	}
}

func TestImportMergeCountsEntities(t *testing.T) {
	t.Parallel()

	svc, vehicles, purger := seededService(t)
	existing := &vehicle.Vehicle{Id: ulid.Make(), Year: 2010, Make: "Fiat", Model: "Uno"}
	vehicles.vehicles = append(vehicles.vehicles, existing)

	result, err := svc.Import(context.Background(), sampleDocument(), backup.ModeMerge)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if purger.purged {
		t.Error("modo merge não deveria apagar dados existentes")
	}
	if result.Vehicles != 2 || result.MaintenanceItems != 1 || result.MaintenanceLogs != 1 || result.GeneralRecords != 1 {
		t.Errorf("resultado = %+v, esperado 2/1/1/1", result)
	}
	// Existente + os dois importados
	if len(vehicles.vehicles) != 3 {
		t.Errorf("veículos na base = %d, esperado 3", len(vehicles.vehicles))
	}
	for _, v := range vehicles.vehicles[1:] {
		if v.Id == existing.Id {
			t.Error("veículo importado reutilizou id existente")
		}
	}
}

func TestImportReplacePurgesFirst(t *testing.T) {
	t.Parallel()

	svc, _, purger := seededService(t)

	if _, err := svc.Import(context.Background(), sampleDocument(), backup.ModeReplace); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !purger.purged {
		t.Error("modo replace deveria apagar os dados antes de importar")
	}
}

func TestImportRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	svc, _, _ := seededService(t)
	ctx := context.Background()

	if _, err := svc.Import(ctx, nil, backup.ModeMerge); err == nil {
		t.Error("documento nulo deveria falhar")
	}
	if _, err := svc.Import(ctx, &backup.Document{}, backup.ModeMerge); err == nil {
		t.Error("documento sem veículos deveria falhar")
	}
	if _, err := svc.Import(ctx, sampleDocument(), "overwrite"); err == nil {
		t.Error("modo desconhecido deveria falhar")
	}

	doc := sampleDocument()
	doc.Vehicles[0].MaintenanceItems[0].Logs[0].DatePerformed = "15/06/2026"
	_, err := svc.Import(ctx, doc, backup.ModeMerge)
	if err == nil {
		t.Fatal("data inválida deveria falhar")
	}
	if appErrors.FromError(err).Code != appErrors.ErrInvalidBackup.Code {
		t.Errorf("code = %s, esperado %s", appErrors.FromError(err).Code, appErrors.ErrInvalidBackup.Code)
	}
}
