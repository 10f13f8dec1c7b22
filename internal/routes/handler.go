package routes

import (
	"Garagem/internal/domain/attachment"
	"Garagem/internal/domain/backup"
	"Garagem/internal/domain/dashboard"
	"Garagem/internal/domain/general"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/logger"
	"Garagem/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	VehicleService     *vehicle.Service
	MaintenanceService *maintenance.Service
	GeneralService     *general.Service
	DashboardService   *dashboard.Service
	BackupService      *backup.Service
	Store              *attachment.Store
}

func (h *Handler) parseIDParam(c *gin.Context, name string) (ulid.ULID, error) {
	raw := c.Param(name)
	if raw == "" {
		return ulid.ULID{}, appErrors.NewValidationError(name, "é obrigatório")
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(name, "formato inválido")
	}
	return id, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
