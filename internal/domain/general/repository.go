package general

import (
	"context"

	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, record *GeneralRecord) error
	GetById(ctx context.Context, id ulid.ULID) (*GeneralRecord, error)
	// GetByVehicleId retorna os registros ordenados por data decrescente.
	GetByVehicleId(ctx context.Context, vehicleID ulid.ULID) ([]*GeneralRecord, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*GeneralRecord, int64, error)
	Update(ctx context.Context, record *GeneralRecord) error
	// Delete remove o registro e seus anexos em cascata.
	Delete(ctx context.Context, id ulid.ULID) error
}
