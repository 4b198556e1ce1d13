package handlers

import (
	"net/http"

	"medicare/services/admin"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard reports.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) BookingStatsHandler(c *gin.Context) {
	stats, err := h.Service.BookingStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
