package handlers

import (
	"net/http"

	"medicare/middleware"
	"medicare/models"
	"medicare/services/payment"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	secret, err := h.Service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	saved, err := h.Service.Record(c.Request.Context(), middleware.Principal(c), p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": saved.ID})
}

func (h *PaymentHandler) HistoryHandler(c *gin.Context) {
	payments, err := h.Service.History(c.Request.Context(), middleware.Principal(c), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListAllHandler(c *gin.Context) {
	payments, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
