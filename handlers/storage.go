package handlers

import (
	"net/http"

	"medicare/services/storage"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 << 20

type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadFileHandler stores the multipart "file" field under :folder.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File is required", err.Error())
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to read file", err.Error())
		return
	}
	defer file.Close()

	result, err := h.Service.Upload(c.Request.Context(), file, c.Param("folder"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.LoggerFrom(c).Info("Upload stored", zap.String("filename", header.Filename), zap.String("publicId", result.PublicID))
	c.JSON(http.StatusOK, result)
}
