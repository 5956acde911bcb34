package services

import (
	"database/sql"
	"errors"
	"fmt"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/pkg/utils"
)

// --- Custom Service Errors for Content ---
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrContentValidation  = errors.New("content data validation error")
)

// --- Content DTOs ---
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"` // Format YYYY-MM-DD
	ImageURL    *string `json:"image_url"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	ImageURL    *string `json:"image_url"`
}

type CreateTeamMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position *string `json:"position"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	ImageURL    *string `json:"image_url"`
}

type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	ImageURL    *string `json:"image_url"`
}

type CreateEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// --- ContentService Interface ---
type ContentService interface {
	CreateEvent(actor models.Principal, req CreateEventRequest) (*models.Event, error)
	GetEventByID(id int64) (*models.Event, error)
	GetEvents() ([]models.Event, error)
	UpdateEvent(actor models.Principal, id int64, req UpdateEventRequest) (*models.Event, error)
	DeleteEvent(actor models.Principal, id int64) error

	CreateTeamMember(actor models.Principal, req CreateTeamMemberRequest) (*models.TeamMember, error)
	GetTeamMembers() ([]models.TeamMember, error)
	UpdateTeamMember(actor models.Principal, id int64, req UpdateTeamMemberRequest) (*models.TeamMember, error)
	DeleteTeamMember(actor models.Principal, id int64) error

	CreateLocation(actor models.Principal, req CreateLocationRequest) (*models.Location, error)
	GetLocations() ([]models.Location, error)
	UpdateLocation(actor models.Principal, id int64, req UpdateLocationRequest) (*models.Location, error)
	DeleteLocation(actor models.Principal, id int64) error

	SubmitEnquiry(req CreateEnquiryRequest) (*models.Enquiry, error)
	GetEnquiries() ([]models.Enquiry, error)
}

// --- contentService Implementation ---
type contentService struct {
	contentRepo repositories.ContentRepository
	db          *sql.DB
}

// NewContentService creates a new instance of ContentService.
func NewContentService(repo repositories.ContentRepository, db *sql.DB) ContentService {
	return &contentService{contentRepo: repo, db: db}
}

// --- Events ---

func (s *contentService) CreateEvent(actor models.Principal, req CreateEventRequest) (*models.Event, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if utils.IsEmpty(req.Title) {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrContentValidation)
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, ErrDateFormat
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ImageURL:    req.ImageURL,
	}
	id, err := s.contentRepo.CreateEvent(s.db, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return s.contentRepo.GetEventByID(id)
}

func (s *contentService) GetEventByID(id int64) (*models.Event, error) {
	event, err := s.contentRepo.GetEventByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}
	return event, nil
}

func (s *contentService) GetEvents() ([]models.Event, error) {
	events, err := s.contentRepo.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

func (s *contentService) UpdateEvent(actor models.Principal, id int64, req UpdateEventRequest) (*models.Event, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	event, err := s.contentRepo.GetEventByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event for update: %w", err)
	}

	if req.Title != nil {
		if utils.IsEmpty(*req.Title) {
			return nil, fmt.Errorf("%w: title cannot be empty if provided", ErrContentValidation)
		}
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Date != nil {
		if _, err := utils.ParseDate(*req.Date); err != nil {
			return nil, ErrDateFormat
		}
		event.Date = *req.Date
	}
	if req.ImageURL != nil {
		event.ImageURL = req.ImageURL
	}

	if err := s.contentRepo.UpdateEvent(s.db, event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return s.contentRepo.GetEventByID(id)
}

func (s *contentService) DeleteEvent(actor models.Principal, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.contentRepo.DeleteEvent(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// --- Team members ---

func (s *contentService) CreateTeamMember(actor models.Principal, req CreateTeamMemberRequest) (*models.TeamMember, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrContentValidation)
	}

	tm := &models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	}
	id, err := s.contentRepo.CreateTeamMember(s.db, tm)
	if err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}
	return s.contentRepo.GetTeamMemberByID(id)
}

func (s *contentService) GetTeamMembers() ([]models.TeamMember, error) {
	teamMembers, err := s.contentRepo.GetTeamMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return teamMembers, nil
}

func (s *contentService) UpdateTeamMember(actor models.Principal, id int64, req UpdateTeamMemberRequest) (*models.TeamMember, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	tm, err := s.contentRepo.GetTeamMemberByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to find team member for update: %w", err)
	}

	if req.Name != nil {
		if utils.IsEmpty(*req.Name) {
			return nil, fmt.Errorf("%w: name cannot be empty if provided", ErrContentValidation)
		}
		tm.Name = *req.Name
	}
	if req.Position != nil {
		tm.Position = req.Position
	}
	if req.Bio != nil {
		tm.Bio = req.Bio
	}
	if req.PhotoURL != nil {
		tm.PhotoURL = req.PhotoURL
	}

	if err := s.contentRepo.UpdateTeamMember(s.db, tm); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}
	return s.contentRepo.GetTeamMemberByID(id)
}

func (s *contentService) DeleteTeamMember(actor models.Principal, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.contentRepo.DeleteTeamMember(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}

// --- Locations ---

func (s *contentService) CreateLocation(actor models.Principal, req CreateLocationRequest) (*models.Location, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrContentValidation)
	}

	loc := &models.Location{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		ImageURL:    req.ImageURL,
	}
	id, err := s.contentRepo.CreateLocation(s.db, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return s.contentRepo.GetLocationByID(id)
}

func (s *contentService) GetLocations() ([]models.Location, error) {
	locations, err := s.contentRepo.GetLocations()
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	return locations, nil
}

func (s *contentService) UpdateLocation(actor models.Principal, id int64, req UpdateLocationRequest) (*models.Location, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	loc, err := s.contentRepo.GetLocationByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to find location for update: %w", err)
	}

	if req.Name != nil {
		if utils.IsEmpty(*req.Name) {
			return nil, fmt.Errorf("%w: name cannot be empty if provided", ErrContentValidation)
		}
		loc.Name = *req.Name
	}
	if req.Description != nil {
		loc.Description = req.Description
	}
	if req.Address != nil {
		loc.Address = req.Address
	}
	if req.ImageURL != nil {
		loc.ImageURL = req.ImageURL
	}

	if err := s.contentRepo.UpdateLocation(s.db, loc); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return s.contentRepo.GetLocationByID(id)
}

func (s *contentService) DeleteLocation(actor models.Principal, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.contentRepo.DeleteLocation(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLocationNotFound
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// --- Enquiries ---

// SubmitEnquiry records a public contact-form message. No principal required.
func (s *contentService) SubmitEnquiry(req CreateEnquiryRequest) (*models.Enquiry, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Message) {
		return nil, fmt.Errorf("%w: name and message are required", ErrContentValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrContentValidation)
	}

	enquiry := &models.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if _, err := s.contentRepo.CreateEnquiry(s.db, enquiry); err != nil {
		return nil, fmt.Errorf("failed to submit enquiry: %w", err)
	}
	return enquiry, nil
}

func (s *contentService) GetEnquiries() ([]models.Enquiry, error) {
	enquiries, err := s.contentRepo.GetEnquiries()
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiries: %w", err)
	}
	return enquiries, nil
}
