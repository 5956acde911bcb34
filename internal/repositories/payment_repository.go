package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sportsclub_backend/internal/models"
)

// PaymentRepository defines the interface for payment ledger persistence.
// The ledger is append-mostly: rows are created, at most their status flips
// from Due to Paid, and they are never hard-deleted by any exposed flow.
type PaymentRepository interface {
	CreatePayment(executor SQLExecutor, payment *models.Payment) (int64, error)
	GetPaymentByID(id int64) (*models.Payment, error)
	GetPaymentsByMember(memberID int64) ([]models.Payment, error)
	GetAllPayments() ([]models.Payment, error)
	MarkPaymentPaid(executor SQLExecutor, id int64, paymentDate string) error
	GetPaymentsByBulkRef(bulkRef string) ([]models.Payment, error)
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, member_id, amount, to_char(date, 'YYYY-MM-DD'),
	to_char(payment_date, 'YYYY-MM-DD'), description, status, comment, bulk_ref, created_at`

// CreatePayment inserts one ledger row.
func (r *paymentRepository) CreatePayment(executor SQLExecutor, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (member_id, amount, date, payment_date, description, status, comment, bulk_ref, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		payment.MemberID, payment.Amount, payment.Date, payment.PaymentDate,
		payment.Description, payment.Status, payment.Comment, payment.BulkRef,
		payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return payment.ID, nil
}

// GetPaymentByID retrieves one ledger row.
func (r *paymentRepository) GetPaymentByID(id int64) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&payment.ID, &payment.MemberID, &payment.Amount, &payment.Date, &payment.PaymentDate,
		&payment.Description, &payment.Status, &payment.Comment, &payment.BulkRef, &payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting payment by ID %d: %v", ErrDatabaseError, id, err)
	}
	return payment, nil
}

func (r *paymentRepository) queryPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID, &payment.MemberID, &payment.Amount, &payment.Date, &payment.PaymentDate,
			&payment.Description, &payment.Status, &payment.Comment, &payment.BulkRef, &payment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, payment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// GetPaymentsByMember returns a member's ledger, newest date first.
// Rows sharing a date keep insertion order (ascending id).
func (r *paymentRepository) GetPaymentsByMember(memberID int64) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE member_id = $1 ORDER BY date DESC, id ASC`
	return r.queryPayments(query, memberID)
}

// GetAllPayments returns the full ledger, newest date first.
func (r *paymentRepository) GetAllPayments() ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY date DESC, id ASC`
	return r.queryPayments(query)
}

// MarkPaymentPaid flips a row to Paid and stamps the completion date.
func (r *paymentRepository) MarkPaymentPaid(executor SQLExecutor, id int64, paymentDate string) error {
	query := `UPDATE payments SET status = $1, payment_date = $2 WHERE id = $3`
	result, err := executor.Exec(query, models.PaymentStatusPaid, paymentDate, id)
	if err != nil {
		return fmt.Errorf("%w: marking payment ID %d paid: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for payment ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPaymentsByBulkRef returns the rows created by a previous bulk post with
// the given idempotency key. An empty result means the key is unused.
func (r *paymentRepository) GetPaymentsByBulkRef(bulkRef string) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE bulk_ref = $1 ORDER BY id ASC`
	return r.queryPayments(query, bulkRef)
}
