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

// MemberHandler holds the member and fee services.
type MemberHandler struct {
	memberService services.MemberService
	feeService    services.FeeService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(ms services.MemberService, fs services.FeeService) *MemberHandler {
	return &MemberHandler{memberService: ms, feeService: fs}
}

func respondMemberError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from memberService")
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Member not found.", err.Error()))
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", ""))
	case errors.Is(err, services.ErrMemberValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process member request.", "Internal error"))
	}
}

// CreateMember handles the creation of a new member (credential + record).
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.memberService.CreateMember(middleware.GetPrincipal(c), req)
	if err != nil {
		respondMemberError(c, err, "CreateMember")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetMembers handles fetching all members with pagination and search.
func (h *MemberHandler) GetMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	searchTerm := c.Query("search")

	var pSearchTerm *string
	if searchTerm != "" {
		pSearchTerm = &searchTerm
	}

	members, totalCount, err := h.memberService.GetMembers(page, pageSize, pSearchTerm)
	if err != nil {
		respondMemberError(c, err, "GetMembers")
		return
	}
	if members == nil {
		members = []models.Member{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      members,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetMemberByID handles fetching a single member by ID.
func (h *MemberHandler) GetMemberByID(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member ID format.", err.Error()))
		return
	}

	member, err := h.memberService.GetMemberByID(memberID)
	if err != nil {
		respondMemberError(c, err, "GetMemberByID")
		return
	}
	c.JSON(http.StatusOK, member)
}

// GetMemberDue returns the member's periodic due amount from the fee schedule.
func (h *MemberHandler) GetMemberDue(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member ID format.", err.Error()))
		return
	}

	due, err := h.feeService.DueForMember(memberID)
	if err != nil {
		respondMemberError(c, err, "GetMemberDue")
		return
	}
	c.JSON(http.StatusOK, gin.H{"member_id": memberID, "due_amount": due, "base_fee": h.feeService.BaseFee()})
}

// UpdateMember handles updating a member.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member ID format.", err.Error()))
		return
	}

	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	member, err := h.memberService.UpdateMember(middleware.GetPrincipal(c), memberID, req)
	if err != nil {
		respondMemberError(c, err, "UpdateMember")
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles deleting a member. Payment history is not cascaded.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid member ID format.", err.Error()))
		return
	}

	if err := h.memberService.DeleteMember(middleware.GetPrincipal(c), memberID); err != nil {
		respondMemberError(c, err, "DeleteMember")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
