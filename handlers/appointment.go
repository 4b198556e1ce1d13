package handlers

import (
	"net/http"

	"medicare/middleware"
	"medicare/models"
	"medicare/services/booking"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	Service booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookHandler runs the booking flow for the test named by ?id=.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	result, err := h.Service.Book(c.Request.Context(), middleware.Principal(c), c.Query("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *AppointmentHandler) ListUpcomingHandler(c *gin.Context) {
	appts, err := h.Service.ListUpcoming(c.Request.Context(), middleware.Principal(c), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	outcome, err := h.Service.Cancel(c.Request.Context(), middleware.Principal(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *AppointmentHandler) ListAllHandler(c *gin.Context) {
	appts, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

type reportRequest struct {
	ReportLink string `json:"reportLink"`
}

func (h *AppointmentHandler) DeliverReportHandler(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	outcome, err := h.Service.DeliverReport(c.Request.Context(), c.Param("id"), req.ReportLink)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *AppointmentHandler) ResultsHandler(c *gin.Context) {
	appts, err := h.Service.Results(c.Request.Context(), middleware.Principal(c), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *AppointmentHandler) SummaryHandler(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), middleware.Principal(c), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
