package handlers

import (
	"net/http"

	locationRepo "medicare/database/repository/location"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	Repo locationRepo.LocationRepository
}

func NewLocationHandler(repo locationRepo.LocationRepository) *LocationHandler {
	return &LocationHandler{Repo: repo}
}

func (h *LocationHandler) DistrictsHandler(c *gin.Context) {
	districts, err := h.Repo.Districts(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, districts)
}

func (h *LocationHandler) UpazilasHandler(c *gin.Context) {
	upazilas, err := h.Repo.Upazilas(c.Request.Context(), c.Query("district_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upazilas)
}
