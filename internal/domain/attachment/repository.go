package attachment

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, att *Attachment) error
	GetById(ctx context.Context, id ulid.ULID) (*Attachment, error)
	GetByGeneralRecordId(ctx context.Context, recordID ulid.ULID) ([]*Attachment, error)
	CountByGeneralRecordId(ctx context.Context, recordID ulid.ULID) (int64, error)
	Delete(ctx context.Context, id ulid.ULID) error
}
