package infrastructure

import (
	"context"
	"errors"
	"time"

	"Garagem/internal/domain/attachment"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"
	"Garagem/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AttachmentRepository struct {
	DB *gorm.DB
}

type attachmentDB struct {
	Id              string `gorm:"type:varchar(26);primaryKey"`
	Filename        string `gorm:"not null"`
	FilePath        string `gorm:"not null"`
	FileType        string
	FileSize        int64
	LogId           *string `gorm:"type:varchar(26);index"`
	GeneralRecordId *string `gorm:"type:varchar(26);index"`
	CreatedAt       time.Time
}

func toDomainAttachment(adb *attachmentDB) (*attachment.Attachment, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	att := &attachment.Attachment{
		Id:        id,
		Filename:  adb.Filename,
		FilePath:  adb.FilePath,
		FileType:  adb.FileType,
		FileSize:  adb.FileSize,
		CreatedAt: adb.CreatedAt,
	}
	if adb.LogId != nil {
		lid, err := pkg.ParseULID(*adb.LogId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		att.LogId = &lid
	}
	if adb.GeneralRecordId != nil {
		rid, err := pkg.ParseULID(*adb.GeneralRecordId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		att.GeneralRecordId = &rid
	}
	return att, nil
}

func toDBAttachment(att *attachment.Attachment) *attachmentDB {
	adb := &attachmentDB{
		Id:        att.Id.String(),
		Filename:  att.Filename,
		FilePath:  att.FilePath,
		FileType:  att.FileType,
		FileSize:  att.FileSize,
		CreatedAt: att.CreatedAt,
	}
	if att.LogId != nil {
		s := att.LogId.String()
		adb.LogId = &s
	}
	if att.GeneralRecordId != nil {
		s := att.GeneralRecordId.String()
		adb.GeneralRecordId = &s
	}
	return adb
}

func (r *AttachmentRepository) Create(ctx context.Context, att *attachment.Attachment) error {
	adb := toDBAttachment(att)
	if err := r.DB.WithContext(ctx).Table("attachments").Create(&adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AttachmentRepository) GetById(ctx context.Context, id ulid.ULID) (*attachment.Attachment, error) {
	var adb attachmentDB
	if err := r.DB.WithContext(ctx).Table("attachments").Where("id = ?", id.String()).First(&adb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAttachmentNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAttachment(&adb)
}

func (r *AttachmentRepository) GetByGeneralRecordId(ctx context.Context, recordID ulid.ULID) ([]*attachment.Attachment, error) {
	attachments, err := query.ExecuteAll(
		query.New[attachmentDB](r.DB, "attachments").
			Context(ctx).
			Where("general_record_id = ?", recordID.String()).
			Order("created_at ASC"),
		toDomainAttachment,
	)
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return attachments, nil
}

func (r *AttachmentRepository) CountByGeneralRecordId(ctx context.Context, recordID ulid.ULID) (int64, error) {
	count, err := query.New[attachmentDB](r.DB, "attachments").
		Context(ctx).
		Where("general_record_id = ?", recordID.String()).
		Count()
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("attachments").Where("id = ?", id.String()).Delete(&attachmentDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAttachmentNotFound
	}
	return nil
}
