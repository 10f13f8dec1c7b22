package vehicle

import (
	"context"

	"Garagem/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error)
	// ListAll retorna todos os veículos, para dashboard e backup.
	ListAll(ctx context.Context) ([]*Vehicle, error)
	GetById(ctx context.Context, id ulid.ULID) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	// AttachmentPaths lista os caminhos de arquivos pertencentes ao veículo
	// (recibos de logs e anexos de serviços avulsos) antes de uma exclusão.
	AttachmentPaths(ctx context.Context, id ulid.ULID) ([]string, error)
	// Delete remove o veículo e, em cascata, itens, logs, serviços avulsos e anexos.
	Delete(ctx context.Context, id ulid.ULID) error
}
