package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/banner"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type BannerHandler struct {
	Service banner.BannerService
}

func NewBannerHandler(svc banner.BannerService) *BannerHandler {
	return &BannerHandler{Service: svc}
}

func (h *BannerHandler) ListBannersHandler(c *gin.Context) {
	banners, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *BannerHandler) CreateBannerHandler(c *gin.Context) {
	var input models.BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	b, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": b.ID})
}

func (h *BannerHandler) DeleteBannerHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// ActiveBannerHandler answers null when no banner is active.
func (h *BannerHandler) ActiveBannerHandler(c *gin.Context) {
	b, err := h.Service.Active(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BannerHandler) SetActiveBannerHandler(c *gin.Context) {
	updated, err := h.Service.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedCount": updated})
}
