package routes

import (
	"net/http"

	"Garagem/internal/contracts"
	"Garagem/internal/domain/maintenance"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateMaintenanceItem(c *gin.Context) {
	var body contracts.MaintenanceItemCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := maintenance.CreateItemRequest{
		VehicleId:       vehicleID,
		Name:            body.Name,
		MaintenanceType: maintenance.Type(body.MaintenanceType),
		FrequencyValue:  body.FrequencyValue,
		FrequencyUnit:   maintenance.FrequencyUnit(body.FrequencyUnit),
		Notes:           body.Notes,
	}

	ctx := c.Request.Context()
	created, err := h.MaintenanceService.CreateItem(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.MaintenanceItemResponse{Item: created})
}

func (h *Handler) ListVehicleMaintenanceItems(c *gin.Context) {
	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	items, err := h.MaintenanceService.ListItemsByVehicle(ctx, vehicleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MaintenanceItemListResponse{Items: items, Total: int64(len(items))})
}

func (h *Handler) ListMaintenanceItems(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	items, total, err := h.MaintenanceService.ListItems(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(items, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetMaintenanceItem(c *gin.Context) {
	itemID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	item, err := h.MaintenanceService.GetItemByID(ctx, itemID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MaintenanceItemResponse{Item: item})
}

func (h *Handler) UpdateMaintenanceItem(c *gin.Context) {
	var body contracts.MaintenanceItemUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	itemID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := maintenance.UpdateItemRequest{
		Name:           body.Name,
		FrequencyValue: body.FrequencyValue,
		Notes:          body.Notes,
	}
	if body.MaintenanceType != nil {
		t := maintenance.Type(*body.MaintenanceType)
		req.MaintenanceType = &t
	}
	if body.FrequencyUnit != nil {
		u := maintenance.FrequencyUnit(*body.FrequencyUnit)
		req.FrequencyUnit = &u
	}

	ctx := c.Request.Context()
	updated, err := h.MaintenanceService.UpdateItem(ctx, itemID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MaintenanceItemResponse{Item: updated})
}

func (h *Handler) DeleteMaintenanceItem(c *gin.Context) {
	itemID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.MaintenanceService.DeleteItem(ctx, itemID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Item de manutenção removido com sucesso"})
}
