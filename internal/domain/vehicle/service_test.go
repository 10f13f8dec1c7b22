package vehicle_test

import (
	"context"
	"testing"

	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeVehicleRepository struct {
	createFn          func(ctx context.Context, v *vehicle.Vehicle) error
	listFn            func(ctx context.Context, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error)
	listAllFn         func(ctx context.Context) ([]*vehicle.Vehicle, error)
	getByIDFn         func(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error)
	updateFn          func(ctx context.Context, v *vehicle.Vehicle) error
	updateFieldsFn    func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	attachmentPathsFn func(ctx context.Context, id ulid.ULID) ([]string, error)
	deleteFn          func(ctx context.Context, id ulid.ULID) error
}

func (f *fakeVehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if f.createFn != nil {
		return f.createFn(ctx, v)
	}
	return nil
}

func (f *fakeVehicleRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, pagination)
	}
	return nil, 0, nil
}

func (f *fakeVehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeVehicleRepository) GetById(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &vehicle.Vehicle{Id: id}, nil
}

func (f *fakeVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, v)
	}
	return nil
}

func (f *fakeVehicleRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if f.updateFieldsFn != nil {
		return f.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeVehicleRepository) AttachmentPaths(ctx context.Context, id ulid.ULID) ([]string, error) {
	if f.attachmentPathsFn != nil {
		return f.attachmentPathsFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeVehicleRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeFileRemover struct {
	removed [][]string
}

func (f *fakeFileRemover) RemoveFiles(paths []string) {
	f.removed = append(f.removed, paths)
}

func TestCreateVehicleValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       vehicle.CreateVehicleRequest
		wantField string
	}{
		{
			name:      "missing year",
			req:       vehicle.CreateVehicleRequest{Make: "Honda", Model: "Civic"},
			wantField: "year",
		},
		{
			name:      "missing make",
			req:       vehicle.CreateVehicleRequest{Year: 2020, Model: "Civic"},
			wantField: "make",
		},
		{
			name:      "blank model",
			req:       vehicle.CreateVehicleRequest{Year: 2020, Make: "Honda", Model: "   "},
			wantField: "model",
		},
		{
			name:      "negative mileage",
			req:       vehicle.CreateVehicleRequest{Year: 2020, Make: "Honda", Model: "Civic", CurrentMileage: -1},
			wantField: "current_mileage",
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := vehicle.NewService(&fakeVehicleRepository{}, nil)
			_, err := svc.CreateVehicle(ctx, &tt.req)
			if err == nil {
				t.Fatal("esperava erro de validação")
			}
			appErr := appErrors.FromError(err)
			if appErr.Code != "VALIDATION_ERROR" {
				t.Errorf("code = %s, esperado VALIDATION_ERROR", appErr.Code)
			}
			if appErr.Details["field"] != tt.wantField {
				t.Errorf("details.field = %v, esperado %q", appErr.Details["field"], tt.wantField)
			}
		})
	}
}

func TestCreateVehicleTrimsAndPersists(t *testing.T) {
	t.Parallel()

	var created *vehicle.Vehicle
	repo := &fakeVehicleRepository{
		createFn: func(_ context.Context, v *vehicle.Vehicle) error {
			created = v
			return nil
		},
	}
	svc := vehicle.NewService(repo, nil)

	got, err := svc.CreateVehicle(context.Background(), &vehicle.CreateVehicleRequest{
		Year:           2019,
		Make:           "  Toyota ",
		Model:          " Corolla ",
		CurrentMileage: 42000,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if created == nil {
		t.Fatal("veículo não foi persistido")
	}
	if got.Make != "Toyota" || got.Model != "Corolla" {
		t.Errorf("make/model = %q/%q, esperado valores sem espaços", got.Make, got.Model)
	}
	if pkg.IsEmptyULID(got.Id) {
		t.Error("id não foi gerado")
	}
}

func TestRaiseMileage(t *testing.T) {
	t.Parallel()

	vehicleID := ulid.Make()

	tests := []struct {
		name       string
		current    int
		reported   int
		wantUpdate bool
	}{
		{name: "raises when higher", current: 40000, reported: 45000, wantUpdate: true},
		{name: "ignores when lower", current: 40000, reported: 30000, wantUpdate: false},
		{name: "ignores when equal", current: 40000, reported: 40000, wantUpdate: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			updated := false
			repo := &fakeVehicleRepository{
				getByIDFn: func(_ context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
					return &vehicle.Vehicle{Id: id, CurrentMileage: tt.current}, nil
				},
				updateFieldsFn: func(_ context.Context, _ ulid.ULID, fields map[string]interface{}) error {
					updated = true
					if fields["current_mileage"] != tt.reported {
						t.Errorf("current_mileage = %v, esperado %d", fields["current_mileage"], tt.reported)
					}
					return nil
				},
			}
			svc := vehicle.NewService(repo, nil)

			if err := svc.RaiseMileage(context.Background(), vehicleID, tt.reported); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if updated != tt.wantUpdate {
				t.Errorf("updated = %v, esperado %v", updated, tt.wantUpdate)
			}
		})
	}
}

func TestUpdateVehicleAcceptsOdometerCorrection(t *testing.T) {
	t.Parallel()

	vehicleID := ulid.Make()
	repo := &fakeVehicleRepository{
		getByIDFn: func(_ context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
			return &vehicle.Vehicle{Id: id, Year: 2020, Make: "Honda", Model: "Civic", CurrentMileage: 50000}, nil
		},
	}
	svc := vehicle.NewService(repo, nil)

	lower := 48000
	got, err := svc.UpdateVehicle(context.Background(), vehicleID, &vehicle.UpdateVehicleRequest{CurrentMileage: &lower})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got.CurrentMileage != 48000 {
		t.Errorf("currentMileage = %d, esperado 48000 (correção para baixo é aceita)", got.CurrentMileage)
	}
}

func TestDeleteVehicleRemovesOrphanFiles(t *testing.T) {
	t.Parallel()

	vehicleID := ulid.Make()
	paths := []string{"20260101120000_recibo.jpg", "20260102090000_nota.pdf"}

	deleted := false
	repo := &fakeVehicleRepository{
		attachmentPathsFn: func(_ context.Context, _ ulid.ULID) ([]string, error) {
			return paths, nil
		},
		deleteFn: func(_ context.Context, _ ulid.ULID) error {
			deleted = true
			return nil
		},
	}
	files := &fakeFileRemover{}
	svc := vehicle.NewService(repo, files)

	if err := svc.DeleteVehicle(context.Background(), vehicleID); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !deleted {
		t.Error("veículo não foi removido do repositório")
	}
	if len(files.removed) != 1 || len(files.removed[0]) != 2 {
		t.Errorf("arquivos removidos = %v, esperado os dois caminhos", files.removed)
	}
}

func TestDeleteVehicleNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeVehicleRepository{
		getByIDFn: func(_ context.Context, _ ulid.ULID) (*vehicle.Vehicle, error) {
			return nil, appErrors.ErrVehicleNotFound
		},
	}
	files := &fakeFileRemover{}
	svc := vehicle.NewService(repo, files)

	err := svc.DeleteVehicle(context.Background(), ulid.Make())
	if err == nil {
		t.Fatal("esperava erro")
	}
	if appErrors.FromError(err).Code != appErrors.ErrVehicleNotFound.Code {
		t.Errorf("code = %s, esperado %s", appErrors.FromError(err).Code, appErrors.ErrVehicleNotFound.Code)
	}
	if len(files.removed) != 0 {
		t.Error("nenhum arquivo deveria ter sido removido")
	}
}
