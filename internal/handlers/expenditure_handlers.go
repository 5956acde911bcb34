package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sportsclub_backend/internal/middleware"
	"sportsclub_backend/internal/services"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExpenditureHandler holds the expenditure service.
type ExpenditureHandler struct {
	expenditureService services.ExpenditureService
}

// NewExpenditureHandler creates a new ExpenditureHandler.
func NewExpenditureHandler(es services.ExpenditureService) *ExpenditureHandler {
	return &ExpenditureHandler{expenditureService: es}
}

func respondExpenditureError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from expenditureService")
	switch {
	case errors.Is(err, services.ErrExpenditureNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expenditure not found.", err.Error()))
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", ""))
	case errors.Is(err, services.ErrExpenditureValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process expenditure request.", "Internal error"))
	}
}

// CreateExpenditure handles creation of a new expenditure.
func (h *ExpenditureHandler) CreateExpenditure(c *gin.Context) {
	var req services.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	exp, err := h.expenditureService.CreateExpenditure(middleware.GetPrincipal(c), req)
	if err != nil {
		respondExpenditureError(c, err, "CreateExpenditure")
		return
	}
	c.JSON(http.StatusCreated, exp)
}

// GetExpenditures lists all expenditures.
func (h *ExpenditureHandler) GetExpenditures(c *gin.Context) {
	expenditures, err := h.expenditureService.GetExpenditures()
	if err != nil {
		respondExpenditureError(c, err, "GetExpenditures")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenditures, "total": len(expenditures)})
}

// GetExpenditureByID fetches a single expenditure.
func (h *ExpenditureHandler) GetExpenditureByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid expenditure ID format.", err.Error()))
		return
	}

	exp, err := h.expenditureService.GetExpenditureByID(id)
	if err != nil {
		respondExpenditureError(c, err, "GetExpenditureByID")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// UpdateExpenditure handles updating an expenditure.
func (h *ExpenditureHandler) UpdateExpenditure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid expenditure ID format.", err.Error()))
		return
	}

	var req services.UpdateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	exp, err := h.expenditureService.UpdateExpenditure(middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondExpenditureError(c, err, "UpdateExpenditure")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// DeleteExpenditure handles deleting an expenditure.
func (h *ExpenditureHandler) DeleteExpenditure(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid expenditure ID format.", err.Error()))
		return
	}

	if err := h.expenditureService.DeleteExpenditure(middleware.GetPrincipal(c), id); err != nil {
		respondExpenditureError(c, err, "DeleteExpenditure")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expenditure deleted"})
}
