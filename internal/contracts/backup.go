package contracts

import (
	domainBackup "Garagem/internal/domain/backup"
)

type BackupImportRequest struct {
	Mode string                 `json:"mode" binding:"omitempty,oneof=merge replace"`
	Data *domainBackup.Document `json:"data" binding:"required"`
}

type BackupImportResponse struct {
	Message string                     `json:"message"`
	Note    string                     `json:"note,omitempty"`
	Result  *domainBackup.ImportResult `json:"result"`
}
