package handlers

import (
	"net/http"

	"medicare/middleware"
	"medicare/models"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	id, created, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exist", "insertedId": nil})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "insertedId": id})
}

func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	u, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), middleware.Principal(c), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *UserHandler) ProfileHandler(c *gin.Context) {
	u, err := h.Service.Profile(c.Request.Context(), middleware.Principal(c), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) EditProfileHandler(c *gin.Context) {
	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	outcome, err := h.Service.UpdateProfile(c.Request.Context(), middleware.Principal(c), c.Param("id"), update)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

type fieldRequest struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	var req fieldRequest
	_ = c.ShouldBindJSON(&req) // empty body means the default role
	u, err := h.Service.SetRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateStatusHandler(c *gin.Context) {
	var req fieldRequest
	_ = c.ShouldBindJSON(&req)
	u, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
