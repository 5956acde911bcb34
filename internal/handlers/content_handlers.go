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

// ContentHandler holds the content service for events, team members,
// locations and enquiries.
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(cs services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: cs}
}

func respondContentError(c *gin.Context, err error, action string) {
	utils.LogError(err, action+": Error from contentService")
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrTeamMemberNotFound),
		errors.Is(err, services.ErrLocationNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Record not found.", err.Error()))
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", ""))
	case errors.Is(err, services.ErrContentValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process content request.", "Internal error"))
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// --- Events ---

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	event, err := h.contentService.CreateEvent(middleware.GetPrincipal(c), req)
	if err != nil {
		respondContentError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *ContentHandler) GetEvents(c *gin.Context) {
	events, err := h.contentService.GetEvents()
	if err != nil {
		respondContentError(c, err, "GetEvents")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events, "total": len(events)})
}

func (h *ContentHandler) GetEventByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	event, err := h.contentService.GetEventByID(id)
	if err != nil {
		respondContentError(c, err, "GetEventByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	event, err := h.contentService.UpdateEvent(middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondContentError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteEvent(middleware.GetPrincipal(c), id); err != nil {
		respondContentError(c, err, "DeleteEvent")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// --- Team members ---

func (h *ContentHandler) CreateTeamMember(c *gin.Context) {
	var req services.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	tm, err := h.contentService.CreateTeamMember(middleware.GetPrincipal(c), req)
	if err != nil {
		respondContentError(c, err, "CreateTeamMember")
		return
	}
	c.JSON(http.StatusCreated, tm)
}

func (h *ContentHandler) GetTeamMembers(c *gin.Context) {
	teamMembers, err := h.contentService.GetTeamMembers()
	if err != nil {
		respondContentError(c, err, "GetTeamMembers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": teamMembers, "total": len(teamMembers)})
}

func (h *ContentHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	tm, err := h.contentService.UpdateTeamMember(middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondContentError(c, err, "UpdateTeamMember")
		return
	}
	c.JSON(http.StatusOK, tm)
}

func (h *ContentHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteTeamMember(middleware.GetPrincipal(c), id); err != nil {
		respondContentError(c, err, "DeleteTeamMember")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted"})
}

// --- Locations ---

func (h *ContentHandler) CreateLocation(c *gin.Context) {
	var req services.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	loc, err := h.contentService.CreateLocation(middleware.GetPrincipal(c), req)
	if err != nil {
		respondContentError(c, err, "CreateLocation")
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (h *ContentHandler) GetLocations(c *gin.Context) {
	locations, err := h.contentService.GetLocations()
	if err != nil {
		respondContentError(c, err, "GetLocations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": locations, "total": len(locations)})
}

func (h *ContentHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	loc, err := h.contentService.UpdateLocation(middleware.GetPrincipal(c), id, req)
	if err != nil {
		respondContentError(c, err, "UpdateLocation")
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *ContentHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteLocation(middleware.GetPrincipal(c), id); err != nil {
		respondContentError(c, err, "DeleteLocation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// --- Enquiries ---

// SubmitEnquiry accepts a public contact-form message.
func (h *ContentHandler) SubmitEnquiry(c *gin.Context) {
	var req services.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	enquiry, err := h.contentService.SubmitEnquiry(req)
	if err != nil {
		respondContentError(c, err, "SubmitEnquiry")
		return
	}
	c.JSON(http.StatusCreated, enquiry)
}

// GetEnquiries lists submitted contact messages for admins.
func (h *ContentHandler) GetEnquiries(c *gin.Context) {
	enquiries, err := h.contentService.GetEnquiries()
	if err != nil {
		respondContentError(c, err, "GetEnquiries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": enquiries, "total": len(enquiries)})
}
