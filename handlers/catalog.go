package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/booking"
	"medicare/services/catalog"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Service  catalog.CatalogService
	Bookings booking.BookingService
}

func NewCatalogHandler(svc catalog.CatalogService, bookings booking.BookingService) *CatalogHandler {
	return &CatalogHandler{Service: svc, Bookings: bookings}
}

// ListActiveTestsHandler lists tests that still have a date today or later.
func (h *CatalogHandler) ListActiveTestsHandler(c *gin.Context) {
	tests, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *CatalogHandler) ListAllTestsHandler(c *gin.Context) {
	tests, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *CatalogHandler) GetTestHandler(c *gin.Context) {
	test, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *CatalogHandler) CreateTestHandler(c *gin.Context) {
	var input models.DiagnosticTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	test, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": test.ID, "test": test})
}

func (h *CatalogHandler) UpdateTestHandler(c *gin.Context) {
	var input models.DiagnosticTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	outcome, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *CatalogHandler) DeleteTestHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// DecrementSlotHandler takes one slot from ?date= of the test.
func (h *CatalogHandler) DecrementSlotHandler(c *gin.Context) {
	outcome, err := h.Bookings.DecrementSlot(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}
