package routes

import (
	"net/http"

	"Garagem/internal/contracts"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	summaries, err := h.DashboardService.GetDashboard(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DashboardResponse{Vehicles: summaries, Total: len(summaries)})
}
