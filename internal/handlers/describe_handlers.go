package handlers

import (
	"errors"
	"net/http"

	"sportsclub_backend/internal/textgen"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DescribeHandler generates marketing descriptions for club services.
type DescribeHandler struct {
	textClient *textgen.Client
}

// NewDescribeHandler creates a new DescribeHandler.
func NewDescribeHandler(client *textgen.Client) *DescribeHandler {
	return &DescribeHandler{textClient: client}
}

type describeRequest struct {
	ServiceName    string   `json:"service_name" binding:"required"`
	ActivityType   string   `json:"activity_type"`
	TargetAudience string   `json:"target_audience"`
	KeyFeatures    []string `json:"key_features"`
}

// GenerateDescription asks the text generation service for a short
// description based on structured hints about the service.
func (h *DescribeHandler) GenerateDescription(c *gin.Context) {
	if h.textClient == nil || !h.textClient.Enabled() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeUpstreamError, "Text generation is not configured.", ""))
		return
	}

	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	description, err := h.textClient.Describe(c.Request.Context(), textgen.Request{
		ServiceName:    req.ServiceName,
		ActivityType:   req.ActivityType,
		TargetAudience: req.TargetAudience,
		KeyFeatures:    req.KeyFeatures,
	})
	if err != nil {
		utils.LogError(err, "GenerateDescription: Error from textgen client")
		if errors.Is(err, textgen.ErrUpstream) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamError, "Text generation service is currently unavailable.", err.Error()))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate description.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": description})
}
