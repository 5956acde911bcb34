package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sportsclub_backend/internal/middleware"
	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/services"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

func respondPaymentError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from paymentService")
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found.", err.Error()))
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", ""))
	case errors.Is(err, services.ErrPaymentValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process payment request.", "Internal error"))
	}
}

// CreatePayment handles creation of a single ledger entry.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	payment, err := h.paymentService.AddPayment(middleware.GetPrincipal(c), req)
	if err != nil {
		respondPaymentError(c, err, "CreatePayment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// CreateBulkPayment posts one payment entry with shared terms to many members.
func (h *PaymentHandler) CreateBulkPayment(c *gin.Context) {
	var req services.BulkPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	result, err := h.paymentService.PostBulk(middleware.GetPrincipal(c), req)
	if err != nil {
		respondPaymentError(c, err, "CreateBulkPayment")
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// MarkPaymentPaid transitions a Due payment to Paid.
func (h *PaymentHandler) MarkPaymentPaid(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid payment ID format.", err.Error()))
		return
	}

	payment, err := h.paymentService.MarkPaid(middleware.GetPrincipal(c), paymentID)
	if err != nil {
		respondPaymentError(c, err, "MarkPaymentPaid")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPayments lists ledger entries with optional ANDed filters.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	var filter models.PaymentFilter
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		memberID, err := strconv.ParseInt(memberIDStr, 10, 64)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member_id format.", err.Error()))
			return
		}
		filter.MemberID = &memberID
	}
	if description := c.Query("description"); description != "" {
		filter.Description = &description
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if monthYear := c.Query("month_year"); monthYear != "" {
		filter.MonthYear = &monthYear
	}

	payments, err := h.paymentService.ListPayments(filter)
	if err != nil {
		respondPaymentError(c, err, "GetPayments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments, "total": len(payments)})
}

// GetMemberPayments lists one member's ledger, newest date first.
func (h *PaymentHandler) GetMemberPayments(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member ID format.", err.Error()))
		return
	}

	payments, err := h.paymentService.ListByMember(memberID)
	if err != nil {
		respondPaymentError(c, err, "GetMemberPayments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments, "total": len(payments)})
}
