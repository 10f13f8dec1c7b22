package routes

import (
	"net/http"
	"time"

	"Garagem/internal/contracts"
	"Garagem/internal/domain/maintenance"
	appErrors "Garagem/internal/errors"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// CreateMaintenanceLog recebe multipart/form-data: os campos do log mais
// um arquivo opcional de recibo no campo "receipt".
func (h *Handler) CreateMaintenanceLog(c *gin.Context) {
	var body contracts.MaintenanceLogCreateRequest
	if err := c.ShouldBind(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	itemID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	datePerformed, err := time.Parse(dateLayout, body.DatePerformed)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("date_performed", "formato inválido, use AAAA-MM-DD"))
		return
	}

	req := maintenance.CreateLogRequest{
		ItemId:        itemID,
		DatePerformed: datePerformed,
		Mileage:       body.Mileage,
		Cost:          body.Cost,
		Notes:         body.Notes,
	}

	if file, err := c.FormFile("receipt"); err == nil && file != nil {
		stored, err := h.Store.SaveFile(file)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.ReceiptPhoto = &stored
	}

	ctx := c.Request.Context()
	created, err := h.MaintenanceService.CreateLog(ctx, &req)
	if err != nil {
		if req.ReceiptPhoto != nil {
			h.Store.RemoveFiles([]string{*req.ReceiptPhoto})
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.MaintenanceLogResponse{Log: created})
}

func (h *Handler) ListMaintenanceLogs(c *gin.Context) {
	itemID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	logs, err := h.MaintenanceService.ListLogsByItem(ctx, itemID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MaintenanceLogListResponse{Logs: logs, Total: len(logs)})
}

func (h *Handler) GetMaintenanceLog(c *gin.Context) {
	logID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	log, err := h.MaintenanceService.GetLogByID(ctx, logID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MaintenanceLogResponse{Log: log})
}

func (h *Handler) DeleteMaintenanceLog(c *gin.Context) {
	logID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.MaintenanceService.DeleteLog(ctx, logID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Log de manutenção removido com sucesso"})
}

// GetMaintenanceLogReceipt serve o arquivo de recibo do log, quando existe.
func (h *Handler) GetMaintenanceLogReceipt(c *gin.Context) {
	logID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	log, err := h.MaintenanceService.GetLogByID(ctx, logID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if log.ReceiptPhoto == nil {
		h.respondError(c, appErrors.ErrAttachmentNotFound)
		return
	}

	fullPath, err := h.Store.Resolve(*log.ReceiptPhoto)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.File(fullPath)
}
