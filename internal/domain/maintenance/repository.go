package maintenance

import (
	"context"

	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type ItemRepository interface {
	Create(ctx context.Context, item *MaintenanceItem) error
	GetById(ctx context.Context, id ulid.ULID) (*MaintenanceItem, error)
	GetByVehicleId(ctx context.Context, vehicleID ulid.ULID) ([]*MaintenanceItem, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*MaintenanceItem, int64, error)
	Update(ctx context.Context, item *MaintenanceItem) error
	// Delete remove o item e seus logs em cascata.
	Delete(ctx context.Context, id ulid.ULID) error
	// ReceiptPaths lista os recibos dos logs do item, para limpeza de arquivos.
	ReceiptPaths(ctx context.Context, id ulid.ULID) ([]string, error)
}

type LogRepository interface {
	Create(ctx context.Context, log *MaintenanceLog) error
	GetById(ctx context.Context, id ulid.ULID) (*MaintenanceLog, error)
	// GetByItemId retorna os logs do item ordenados por data de realização
	// decrescente, com desempate pelo id.
	GetByItemId(ctx context.Context, itemID ulid.ULID) ([]*MaintenanceLog, error)
	Delete(ctx context.Context, id ulid.ULID) error
}
