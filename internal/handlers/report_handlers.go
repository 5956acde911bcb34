package handlers

import (
	"net/http"

	"sportsclub_backend/internal/services"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetFinancialSummary returns totals and breakdowns derived from the full
// payment and expenditure sets.
func (h *ReportHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.reportService.FinancialSummary()
	if err != nil {
		utils.LogError(err, "GetFinancialSummary: Error from reportService")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build financial summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}
