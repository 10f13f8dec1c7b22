package routes

import (
	"net/http"

	"Garagem/internal/contracts"
	"Garagem/internal/domain/backup"
	appErrors "Garagem/internal/errors"

	"github.com/gin-gonic/gin"
)

// ExportBackup devolve o backup completo como download JSON.
func (h *Handler) ExportBackup(c *gin.Context) {
	ctx := c.Request.Context()
	doc, err := h.BackupService.Export(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.BackupService.Filename()+`"`)
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) ImportBackup(c *gin.Context) {
	var body contracts.BackupImportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	mode := body.Mode
	if mode == "" {
		mode = backup.ModeMerge
	}

	ctx := c.Request.Context()
	result, err := h.BackupService.Import(ctx, body.Data, mode)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BackupImportResponse{
		Message: "Backup importado com sucesso",
		Note:    "Anexos não são restaurados; reenvie os arquivos manualmente",
		Result:  result,
	})
}
