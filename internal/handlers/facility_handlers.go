package handlers

import (
	"net/http"

	"sportsclub_backend/internal/services"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// FacilityHandler exposes the static fee schedule.
type FacilityHandler struct {
	feeService services.FeeService
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(fs services.FeeService) *FacilityHandler {
	return &FacilityHandler{feeService: fs}
}

// GetFacilities lists the fee schedule: every facility with its subscription
// fee, plus the base maintenance fee applied to all members.
func (h *FacilityHandler) GetFacilities(c *gin.Context) {
	facilities, err := h.feeService.GetFacilities()
	if err != nil {
		utils.LogError(err, "GetFacilities: Error from feeService")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch facilities.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":     facilities,
		"base_fee": h.feeService.BaseFee(),
	})
}
