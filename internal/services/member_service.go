package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Member ---
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberValidation = errors.New("member data validation error")
	ErrDateFormat       = errors.New("invalid date format, please use YYYY-MM-DD")
	ErrForbidden        = errors.New("acting principal is not permitted to perform this operation")
)

// --- Member DTOs ---
type CreateMemberRequest struct {
	FullName             string   `json:"full_name" binding:"required"`
	Email                string   `json:"email" binding:"required"`
	Password             string   `json:"password" binding:"required,min=8"`
	PhoneNumber          *string  `json:"phone_number"`
	Address              *string  `json:"address"`
	DateOfBirth          *string  `json:"date_of_birth"` // Format YYYY-MM-DD
	DateOfJoining        *string  `json:"date_of_joining"`
	Role                 *string  `json:"role"` // "admin" or "member"; defaults to member
	PhotoURL             *string  `json:"photo_url"`
	SubscribedFacilities []string `json:"subscribed_facilities"`
}

type UpdateMemberRequest struct {
	FullName             *string   `json:"full_name"`
	Email                *string   `json:"email"`
	PhoneNumber          *string   `json:"phone_number"`
	Address              *string   `json:"address"`
	DateOfBirth          *string   `json:"date_of_birth"`
	DateOfJoining        *string   `json:"date_of_joining"`
	Role                 *string   `json:"role"`
	PhotoURL             *string   `json:"photo_url"`
	SubscribedFacilities *[]string `json:"subscribed_facilities"`
}

// --- MemberService Interface ---
type MemberService interface {
	CreateMember(actor models.Principal, req CreateMemberRequest) (*models.Member, error)
	GetMemberByID(memberID int64) (*models.Member, error)
	GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error)
	UpdateMember(actor models.Principal, memberID int64, req UpdateMemberRequest) (*models.Member, error)
	DeleteMember(actor models.Principal, memberID int64) error
}

// --- memberService Implementation ---
type memberService struct {
	memberRepo repositories.MemberRepository
	authRepo   repositories.AuthRepository
	db         *sql.DB
}

// NewMemberService creates a new instance of MemberService.
func NewMemberService(memberRepo repositories.MemberRepository, authRepo repositories.AuthRepository, db *sql.DB) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		authRepo:   authRepo,
		db:         db,
	}
}

func validateMemberRole(role string) error {
	if role != models.RoleAdmin && role != models.RoleMember {
		return fmt.Errorf("%w: role must be %q or %q", ErrMemberValidation, models.RoleAdmin, models.RoleMember)
	}
	return nil
}

func validateOptionalDate(dateStr *string) (*string, error) {
	if dateStr == nil || utils.IsEmpty(*dateStr) {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*dateStr)
	if _, err := utils.ParseDate(trimmed); err != nil {
		return nil, ErrDateFormat
	}
	return &trimmed, nil
}

// CreateMember provisions a login credential first, then the member record.
// If the member insert fails after the credential insert succeeded, the
// orphaned credential is left in place and logged; there is no compensating
// delete. Callers retry by creating the member under a fresh email.
func (s *memberService) CreateMember(actor models.Principal, req CreateMemberRequest) (*models.Member, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrMemberValidation)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrMemberValidation)
	}
	if !utils.IsValidPasswordLength(req.Password, 8) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrMemberValidation)
	}

	role := models.RoleMember
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}
	if err := validateMemberRole(role); err != nil {
		return nil, err
	}

	dob, err := validateOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	joining := utils.Today()
	if req.DateOfJoining != nil && !utils.IsEmpty(*req.DateOfJoining) {
		parsed, err := validateOptionalDate(req.DateOfJoining)
		if err != nil {
			return nil, err
		}
		joining = *parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     strings.ToLower(strings.TrimSpace(req.Email)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         role,
	}
	userID, err := s.authRepo.CreateUser(s.db, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrMemberValidation)
		}
		return nil, fmt.Errorf("failed to create member credential: %w", err)
	}

	member := &models.Member{
		UserID:               &userID,
		FullName:             req.FullName,
		Email:                user.Email,
		PhoneNumber:          req.PhoneNumber,
		Address:              req.Address,
		DateOfBirth:          dob,
		DateOfJoining:        joining,
		Role:                 role,
		PhotoURL:             req.PhotoURL,
		SubscribedFacilities: req.SubscribedFacilities,
	}
	id, err := s.memberRepo.CreateMember(s.db, member)
	if err != nil {
		// Accepted partial-failure behavior: the credential row outlives the
		// failed member insert. Logged so an operator can clean it up.
		utils.LogWarn("Member record creation failed after credential creation; orphaned credential remains",
			map[string]interface{}{"user_id": userID, "email": user.Email})
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: a member with this email already exists", ErrMemberValidation)
		}
		return nil, fmt.Errorf("failed to create member record: %w", err)
	}
	return s.memberRepo.GetMemberByID(id)
}

func (s *memberService) GetMemberByID(memberID int64) (*models.Member, error) {
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by ID: %w", err)
	}
	return member, nil
}

func (s *memberService) GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	members, totalCount, err := s.memberRepo.GetMembers(page, pageSize, searchTerm)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get members: %w", err)
	}
	return members, totalCount, nil
}

func (s *memberService) UpdateMember(actor models.Principal, memberID int64, req UpdateMemberRequest) (*models.Member, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	member, err := s.memberRepo.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member for update: %w", err)
	}

	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: full name cannot be empty if provided", ErrMemberValidation)
		}
		member.FullName = *req.FullName
	}
	if req.Email != nil {
		if !utils.IsValidEmail(*req.Email) {
			return nil, fmt.Errorf("%w: email format is invalid", ErrMemberValidation)
		}
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		member.Address = req.Address
	}
	if req.DateOfBirth != nil {
		dob, err := validateOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		member.DateOfBirth = dob
	}
	if req.DateOfJoining != nil {
		joining, err := validateOptionalDate(req.DateOfJoining)
		if err != nil {
			return nil, err
		}
		if joining != nil {
			member.DateOfJoining = *joining
		}
	}
	if req.Role != nil {
		if err := validateMemberRole(*req.Role); err != nil {
			return nil, err
		}
		member.Role = *req.Role
	}
	if req.PhotoURL != nil {
		member.PhotoURL = req.PhotoURL
	}
	if req.SubscribedFacilities != nil {
		member.SubscribedFacilities = *req.SubscribedFacilities
	}

	if err := s.memberRepo.UpdateMember(s.db, member); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: a member with this email already exists", ErrMemberValidation)
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return s.memberRepo.GetMemberByID(memberID)
}

// DeleteMember removes the member record. The member's payment history is
// intentionally not cascaded; orphaned ledger rows keep their member id.
func (s *memberService) DeleteMember(actor models.Principal, memberID int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	err := s.memberRepo.DeleteMember(s.db, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
