package attachment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Attachment guarda os metadados de um arquivo enviado, pertencente a um
// log de manutenção ou a um serviço avulso (nunca aos dois).
type Attachment struct {
	Id              ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Filename        string     `gorm:"type:varchar(255);not null" json:"filename"`
	FilePath        string     `gorm:"type:varchar(255);not null" json:"filePath"`
	FileType        string     `gorm:"type:varchar(50)" json:"fileType"`
	FileSize        int64      `json:"fileSize"`
	LogId           *ulid.ULID `gorm:"type:varchar(26);index:idx_attachments_log_id" json:"logId"`
	GeneralRecordId *ulid.ULID `gorm:"type:varchar(26);index:idx_attachments_general_record_id" json:"generalRecordId"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Attachment) TableName() string {
	return "attachments"
}
