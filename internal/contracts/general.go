package contracts

import (
	domainAttachment "Garagem/internal/domain/attachment"
	domainGeneral "Garagem/internal/domain/general"
)

// GeneralRecordCreateRequest chega como multipart/form-data para permitir
// anexos junto do registro; DatePerformed usa o formato 2006-01-02.
type GeneralRecordCreateRequest struct {
	Description   string   `form:"description" binding:"required,max=255"`
	DatePerformed string   `form:"datePerformed" binding:"required"`
	Mileage       *int     `form:"mileage" binding:"omitempty,gte=0"`
	Cost          *float64 `form:"cost" binding:"omitempty,gte=0"`
	Notes         string   `form:"notes" binding:"omitempty"`
}

type GeneralRecordUpdateRequest struct {
	Description   *string  `form:"description" binding:"omitempty,max=255"`
	DatePerformed *string  `form:"datePerformed" binding:"omitempty"`
	Mileage       *int     `form:"mileage" binding:"omitempty,gte=0"`
	Cost          *float64 `form:"cost" binding:"omitempty,gte=0"`
	Notes         *string  `form:"notes" binding:"omitempty"`
}

type GeneralRecordResponse struct {
	Record      *domainGeneral.GeneralRecord    `json:"record"`
	Attachments []*domainAttachment.Attachment  `json:"attachments,omitempty"`
}

type GeneralRecordListResponse struct {
	Records []*domainGeneral.GeneralRecord `json:"records"`
	Total   int64                          `json:"total"`
}

type AttachmentListResponse struct {
	Attachments []*domainAttachment.Attachment `json:"attachments"`
	Total       int                            `json:"total"`
}
