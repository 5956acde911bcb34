package handlers

import (
	"errors"
	"io"
	"net/http"

	"sportsclub_backend/internal/storage"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts photo uploads and stores them in object storage.
type UploadHandler struct {
	uploader *storage.Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadPhoto receives a multipart file under the "photo" field and
// responds with the public URL of the stored object.
func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	if h.uploader == nil || !h.uploader.Enabled() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeUpstreamError, "Photo storage is not configured.", ""))
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing file field 'photo'.", err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "UploadPhoto: Error opening uploaded file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read uploaded file.", "Internal error"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.LogError(err, "UploadPhoto: Error reading uploaded file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read uploaded file.", "Internal error"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uploader.Upload(c.Request.Context(), data, contentType, fileHeader.Filename)
	if err != nil {
		utils.LogError(err, "UploadPhoto: Error from uploader")
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Photo exceeds the maximum allowed size.", err.Error()))
		case errors.Is(err, storage.ErrUpstream):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamError, "Photo storage is currently unavailable.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to store photo.", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
