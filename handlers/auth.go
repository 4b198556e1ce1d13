package handlers

import (
	"net/http"

	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Tokens *utils.TokenManager
}

func NewAuthHandler(tokens *utils.TokenManager) *AuthHandler {
	return &AuthHandler{Tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueTokenHandler exchanges an email for a signed bearer token.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
