package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/pkg/utils"
)

// --- Custom Service Errors for Expenditure ---
var (
	ErrExpenditureNotFound   = errors.New("expenditure not found")
	ErrExpenditureValidation = errors.New("expenditure data validation error")
)

// --- Expenditure DTOs ---
type CreateExpenditureRequest struct {
	Date        string  `json:"date" binding:"required"` // Format YYYY-MM-DD
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

type UpdateExpenditureRequest struct {
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}

// --- ExpenditureService Interface ---
type ExpenditureService interface {
	CreateExpenditure(actor models.Principal, req CreateExpenditureRequest) (*models.Expenditure, error)
	GetExpenditureByID(id int64) (*models.Expenditure, error)
	GetExpenditures() ([]models.Expenditure, error)
	UpdateExpenditure(actor models.Principal, id int64, req UpdateExpenditureRequest) (*models.Expenditure, error)
	DeleteExpenditure(actor models.Principal, id int64) error
}

// --- expenditureService Implementation ---
type expenditureService struct {
	expenditureRepo repositories.ExpenditureRepository
	db              *sql.DB
}

// NewExpenditureService creates a new instance of ExpenditureService.
func NewExpenditureService(repo repositories.ExpenditureRepository, db *sql.DB) ExpenditureService {
	return &expenditureService{expenditureRepo: repo, db: db}
}

func validateExpenditure(date, category string, amount float64, description string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return ErrDateFormat
	}
	if !models.IsValidExpenditureCategory(category) {
		return fmt.Errorf("%w: category must be one of %s", ErrExpenditureValidation,
			strings.Join(models.ExpenditureCategories, ", "))
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrExpenditureValidation)
	}
	if utils.IsEmpty(description) {
		return fmt.Errorf("%w: description cannot be empty", ErrExpenditureValidation)
	}
	return nil
}

func (s *expenditureService) CreateExpenditure(actor models.Principal, req CreateExpenditureRequest) (*models.Expenditure, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validateExpenditure(req.Date, req.Category, req.Amount, req.Description); err != nil {
		return nil, err
	}

	exp := &models.Expenditure{
		Date:        strings.TrimSpace(req.Date),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	id, err := s.expenditureRepo.CreateExpenditure(s.db, exp)
	if err != nil {
		return nil, fmt.Errorf("failed to create expenditure: %w", err)
	}
	return s.expenditureRepo.GetExpenditureByID(id)
}

func (s *expenditureService) GetExpenditureByID(id int64) (*models.Expenditure, error) {
	exp, err := s.expenditureRepo.GetExpenditureByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenditureNotFound
		}
		return nil, fmt.Errorf("failed to get expenditure by ID: %w", err)
	}
	return exp, nil
}

func (s *expenditureService) GetExpenditures() ([]models.Expenditure, error) {
	expenditures, err := s.expenditureRepo.GetExpenditures()
	if err != nil {
		return nil, fmt.Errorf("failed to get expenditures: %w", err)
	}
	return expenditures, nil
}

func (s *expenditureService) UpdateExpenditure(actor models.Principal, id int64, req UpdateExpenditureRequest) (*models.Expenditure, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	exp, err := s.expenditureRepo.GetExpenditureByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenditureNotFound
		}
		return nil, fmt.Errorf("failed to find expenditure for update: %w", err)
	}

	if req.Date != nil {
		exp.Date = strings.TrimSpace(*req.Date)
	}
	if req.Category != nil {
		exp.Category = *req.Category
	}
	if req.Amount != nil {
		exp.Amount = *req.Amount
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if err := validateExpenditure(exp.Date, exp.Category, exp.Amount, exp.Description); err != nil {
		return nil, err
	}

	if err := s.expenditureRepo.UpdateExpenditure(s.db, exp); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenditureNotFound
		}
		return nil, fmt.Errorf("failed to update expenditure: %w", err)
	}
	return s.expenditureRepo.GetExpenditureByID(id)
}

func (s *expenditureService) DeleteExpenditure(actor models.Principal, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	err := s.expenditureRepo.DeleteExpenditure(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExpenditureNotFound
		}
		return fmt.Errorf("failed to delete expenditure: %w", err)
	}
	return nil
}
