package services

import (
	"database/sql"
	"errors"
	"fmt"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors for Payment ---
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentValidation = errors.New("payment data validation error")
)

// --- Payment DTOs ---
type CreatePaymentRequest struct {
	MemberID    int64   `json:"member_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"` // Format YYYY-MM-DD
	Description string  `json:"description" binding:"required"`
	Status      string  `json:"status" binding:"required"` // "Paid" or "Due"
	Comment     *string `json:"comment"`
}

type BulkPaymentRequest struct {
	MemberIDs      []int64 `json:"member_ids" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Status         string  `json:"status" binding:"required"`
	IdempotencyKey *string `json:"idempotency_key"`
}

// BulkPaymentResult reports the outcome of a bulk post. Creation is a batch of
// independent inserts with no spanning transaction: rows created before a
// failure stay created, and FailedMemberIDs tells the caller exactly which
// members to retry.
type BulkPaymentResult struct {
	CreatedCount    int     `json:"created_count"`
	FailedMemberIDs []int64 `json:"failed_member_ids,omitempty"`
	IdempotencyKey  string  `json:"idempotency_key"`
	Replayed        bool    `json:"replayed"`
}

// --- PaymentService Interface ---
type PaymentService interface {
	AddPayment(actor models.Principal, req CreatePaymentRequest) (*models.Payment, error)
	MarkPaid(actor models.Principal, paymentID int64) (*models.Payment, error)
	ListByMember(memberID int64) ([]models.Payment, error)
	ListPayments(filter models.PaymentFilter) ([]models.Payment, error)
	PostBulk(actor models.Principal, req BulkPaymentRequest) (*BulkPaymentResult, error)
}

// --- paymentService Implementation ---
type paymentService struct {
	paymentRepo repositories.PaymentRepository
	memberRepo  repositories.MemberRepository
	db          *sql.DB
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, memberRepo repositories.MemberRepository, db *sql.DB) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		db:          db,
	}
}

func validatePaymentStatus(status string) error {
	if status != models.PaymentStatusPaid && status != models.PaymentStatusDue {
		return fmt.Errorf("%w: status must be %q or %q", ErrPaymentValidation,
			models.PaymentStatusPaid, models.PaymentStatusDue)
	}
	return nil
}

func (s *paymentService) validatePaymentTerms(amount float64, date, description, status string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrPaymentValidation)
	}
	if _, err := utils.ParseDate(date); err != nil {
		return ErrDateFormat
	}
	if utils.IsEmpty(description) {
		return fmt.Errorf("%w: description cannot be empty", ErrPaymentValidation)
	}
	return validatePaymentStatus(status)
}

func (s *paymentService) memberExists(memberID int64) error {
	if _, err := s.memberRepo.GetMemberByID(memberID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to resolve member %d: %w", memberID, err)
	}
	return nil
}

// buildPayment assembles a ledger row from shared terms. A Paid row gets its
// completion date stamped to today; a Due row leaves it unset.
func buildPayment(memberID int64, amount float64, date, description, status string, comment, bulkRef *string) *models.Payment {
	payment := &models.Payment{
		MemberID:    memberID,
		Amount:      amount,
		Date:        date,
		Description: description,
		Status:      status,
		Comment:     comment,
		BulkRef:     bulkRef,
	}
	if status == models.PaymentStatusPaid {
		today := utils.Today()
		payment.PaymentDate = &today
	}
	return payment
}

// AddPayment creates one ledger row for an existing member.
func (s *paymentService) AddPayment(actor models.Principal, req CreatePaymentRequest) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := s.validatePaymentTerms(req.Amount, req.Date, req.Description, req.Status); err != nil {
		return nil, err
	}
	if err := s.memberExists(req.MemberID); err != nil {
		return nil, err
	}

	payment := buildPayment(req.MemberID, req.Amount, req.Date, req.Description, req.Status, req.Comment, nil)
	id, err := s.paymentRepo.CreatePayment(s.db, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return s.paymentRepo.GetPaymentByID(id)
}

// MarkPaid transitions a Due payment to Paid, stamping the completion date to
// now. Marking an already-Paid payment is a no-op that returns the stored row
// unchanged, which keeps the operation safe to retry.
func (s *paymentService) MarkPaid(actor models.Principal, paymentID int64) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment.Status == models.PaymentStatusPaid {
		return payment, nil
	}

	if err := s.paymentRepo.MarkPaymentPaid(s.db, paymentID, utils.Today()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to mark payment paid: %w", err)
	}
	return s.paymentRepo.GetPaymentByID(paymentID)
}

// ListByMember returns a member's ledger, newest date first, ties in insertion order.
func (s *paymentService) ListByMember(memberID int64) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetPaymentsByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for member %d: %w", memberID, err)
	}
	return payments, nil
}

// FilterPayments applies a filter to an in-memory payment list. All provided
// criteria are ANDed. MonthYear matches the calendar month and year of the
// payment's Date, never its PaymentDate.
func FilterPayments(payments []models.Payment, filter models.PaymentFilter) []models.Payment {
	result := []models.Payment{}
	for _, p := range payments {
		if filter.MemberID != nil && p.MemberID != *filter.MemberID {
			continue
		}
		if filter.Description != nil && p.Description != *filter.Description {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.MonthYear != nil && utils.MonthYearOf(p.Date) != *filter.MonthYear {
			continue
		}
		result = append(result, p)
	}
	return result
}

// ListPayments fetches the full ledger and filters it in memory. The ledger of
// a single club stays in the hundreds of rows, so full refetch per call is the
// intended design, not an optimization target.
func (s *paymentService) ListPayments(filter models.PaymentFilter) ([]models.Payment, error) {
	var (
		payments []models.Payment
		err      error
	)
	if filter.MemberID != nil {
		payments, err = s.paymentRepo.GetPaymentsByMember(*filter.MemberID)
	} else {
		payments, err = s.paymentRepo.GetAllPayments()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return FilterPayments(payments, filter), nil
}

// PostBulk applies one payment entry, with identical terms, to every selected
// member. Each member gets an independent ledger row; there is no transaction
// spanning the batch. Replaying the same idempotency key returns the rows
// already created instead of posting duplicates.
func (s *paymentService) PostBulk(actor models.Principal, req BulkPaymentRequest) (*BulkPaymentResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if len(req.MemberIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one member id is required", ErrPaymentValidation)
	}
	if err := s.validatePaymentTerms(req.Amount, req.Date, req.Description, req.Status); err != nil {
		return nil, err
	}

	key := uuid.NewString()
	if req.IdempotencyKey != nil && !utils.IsEmpty(*req.IdempotencyKey) {
		key = *req.IdempotencyKey
		existing, err := s.paymentRepo.GetPaymentsByBulkRef(key)
		if err != nil {
			return nil, fmt.Errorf("failed to check bulk idempotency key: %w", err)
		}
		if len(existing) > 0 {
			return &BulkPaymentResult{
				CreatedCount:   len(existing),
				IdempotencyKey: key,
				Replayed:       true,
			}, nil
		}
	}

	result := &BulkPaymentResult{IdempotencyKey: key}
	for _, memberID := range req.MemberIDs {
		if err := s.memberExists(memberID); err != nil {
			utils.LogWarn("Bulk payment skipped member", map[string]interface{}{
				"member_id": memberID, "bulk_ref": key, "reason": err.Error(),
			})
			result.FailedMemberIDs = append(result.FailedMemberIDs, memberID)
			continue
		}
		payment := buildPayment(memberID, req.Amount, req.Date, req.Description, req.Status, nil, &key)
		if _, err := s.paymentRepo.CreatePayment(s.db, payment); err != nil {
			utils.LogError(err, "Bulk payment insert failed for member")
			result.FailedMemberIDs = append(result.FailedMemberIDs, memberID)
			continue
		}
		result.CreatedCount++
	}
	return result, nil
}
