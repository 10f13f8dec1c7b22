package routes

import (
	"mime/multipart"
	"net/http"
	"time"

	"Garagem/internal/contracts"
	"Garagem/internal/domain/general"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/gin-gonic/gin"
)

// CreateGeneralRecord recebe multipart/form-data: os campos do registro
// mais anexos opcionais no campo "attachments".
func (h *Handler) CreateGeneralRecord(c *gin.Context) {
	var body contracts.GeneralRecordCreateRequest
	if err := c.ShouldBind(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	datePerformed, err := time.Parse(dateLayout, body.DatePerformed)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date_performed", "formato inválido, use AAAA-MM-DD"))
		return
	}

	req := general.CreateRecordRequest{
		VehicleId:     vehicleID,
		Description:   body.Description,
		DatePerformed: datePerformed,
		Mileage:       body.Mileage,
		Cost:          body.Cost,
		Notes:         body.Notes,
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["attachments"]
	}

	ctx := c.Request.Context()
	created, err := h.GeneralService.CreateRecord(ctx, &req, files)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GeneralRecordResponse{Record: created})
}

func (h *Handler) ListVehicleGeneralRecords(c *gin.Context) {
	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	records, err := h.GeneralService.ListRecordsByVehicle(ctx, vehicleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GeneralRecordListResponse{Records: records, Total: int64(len(records))})
}

func (h *Handler) ListGeneralRecords(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	records, total, err := h.GeneralService.ListRecords(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(records, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetGeneralRecord(c *gin.Context) {
	recordID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	record, err := h.GeneralService.GetRecordByID(ctx, recordID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	attachments, err := h.GeneralService.ListAttachments(ctx, recordID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GeneralRecordResponse{Record: record, Attachments: attachments})
}

func (h *Handler) UpdateGeneralRecord(c *gin.Context) {
	var body contracts.GeneralRecordUpdateRequest
	if err := c.ShouldBind(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	recordID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := general.UpdateRecordRequest{
		Description: body.Description,
		Mileage:     body.Mileage,
		Cost:        body.Cost,
		Notes:       body.Notes,
	}
	if body.DatePerformed != nil {
		datePerformed, err := time.Parse(dateLayout, *body.DatePerformed)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("date_performed", "formato inválido, use AAAA-MM-DD"))
			return
		}
		req.DatePerformed = &datePerformed
	}

	var newFiles []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		newFiles = form.File["attachments"]
	}

	ctx := c.Request.Context()
	updated, err := h.GeneralService.UpdateRecord(ctx, recordID, &req, newFiles)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GeneralRecordResponse{Record: updated})
}

func (h *Handler) DeleteGeneralRecord(c *gin.Context) {
	recordID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GeneralService.DeleteRecord(ctx, recordID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Serviço avulso removido com sucesso"})
}

func (h *Handler) ListRecordAttachments(c *gin.Context) {
	recordID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	attachments, err := h.GeneralService.ListAttachments(ctx, recordID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AttachmentListResponse{Attachments: attachments, Total: len(attachments)})
}

func (h *Handler) DownloadAttachment(c *gin.Context) {
	attachmentID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	att, err := h.GeneralService.Attachments.GetById(ctx, attachmentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fullPath, err := h.Store.Resolve(att.FilePath)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.FileAttachment(fullPath, att.Filename)
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	attachmentID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.GeneralService.DeleteAttachment(ctx, attachmentID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Anexo removido com sucesso"})
}
