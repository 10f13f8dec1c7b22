package routes

import (
	"net/http"

	"Garagem/internal/contracts"
	"Garagem/internal/domain/vehicle"
	appErrors "Garagem/internal/errors"
	"Garagem/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateVehicle(c *gin.Context) {
	var body contracts.VehicleCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := vehicle.CreateVehicleRequest{
		Year:       body.Year,
		Make:       body.Make,
		Model:      body.Model,
		EngineType: body.EngineType,
	}
	if body.CurrentMileage != nil {
		req.CurrentMileage = *body.CurrentMileage
	}

	ctx := c.Request.Context()
	created, err := h.VehicleService.CreateVehicle(ctx, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.VehicleResponse{Vehicle: created})
}

func (h *Handler) ListVehicles(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	vehicles, total, err := h.VehicleService.ListVehicles(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(vehicles, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	found, err := h.VehicleService.GetVehicleByID(ctx, vehicleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.VehicleResponse{Vehicle: found})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	var body contracts.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := vehicle.UpdateVehicleRequest{
		Year:           body.Year,
		Make:           body.Make,
		Model:          body.Model,
		EngineType:     body.EngineType,
		CurrentMileage: body.CurrentMileage,
	}

	ctx := c.Request.Context()
	updated, err := h.VehicleService.UpdateVehicle(ctx, vehicleID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.VehicleResponse{Vehicle: updated})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.VehicleService.DeleteVehicle(ctx, vehicleID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Veículo removido com sucesso"})
}

func (h *Handler) GetVehicleStatus(c *gin.Context) {
	vehicleID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	status, err := h.DashboardService.GetVehicleStatus(ctx, vehicleID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.VehicleStatusResponse{Status: status})
}
