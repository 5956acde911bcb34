package repositories

import (
	"testing"
	"time"

	"sportsclub_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentRepoWithMock(t *testing.T) (PaymentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPaymentRepository(db), mock
}

func paymentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "member_id", "amount", "date", "payment_date",
		"description", "status", "comment", "bulk_ref", "created_at",
	})
}

func TestCreatePayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(int64(7), 500.0, "2026-09-01", nil, "Monthly Maintenance Fee",
			models.PaymentStatusDue, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	payment := &models.Payment{
		MemberID:    7,
		Amount:      500,
		Date:        "2026-09-01",
		Description: "Monthly Maintenance Fee",
		Status:      models.PaymentStatusDue,
	}
	id, err := repo.CreatePayment(db, payment)

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(42), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentByID(t *testing.T) {
	repo, mock := newPaymentRepoWithMock(t)

	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(paymentRows().AddRow(
			int64(42), int64(7), 500.0, "2026-09-01", nil,
			"Monthly Maintenance Fee", models.PaymentStatusDue, nil, nil, created,
		))

	payment, err := repo.GetPaymentByID(42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), payment.ID)
	assert.Equal(t, int64(7), payment.MemberID)
	assert.Equal(t, "2026-09-01", payment.Date)
	assert.Nil(t, payment.PaymentDate)
	assert.Equal(t, models.PaymentStatusDue, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentByIDNotFound(t *testing.T) {
	repo, mock := newPaymentRepoWithMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(paymentRows())

	_, err := repo.GetPaymentByID(404)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentsByMember(t *testing.T) {
	repo, mock := newPaymentRepoWithMock(t)

	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	paidOn := "2026-09-05"
	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE member_id = \$1 ORDER BY date DESC, id ASC`).
		WithArgs(int64(7)).
		WillReturnRows(paymentRows().
			AddRow(int64(2), int64(7), 150.0, "2026-09-15", nil,
				"Court booking", models.PaymentStatusDue, nil, nil, created).
			AddRow(int64(1), int64(7), 500.0, "2026-09-01", paidOn,
				"Monthly Maintenance Fee", models.PaymentStatusPaid, nil, nil, created))

	payments, err := repo.GetPaymentsByMember(7)

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, int64(2), payments[0].ID)
	require.NotNil(t, payments[1].PaymentDate)
	assert.Equal(t, paidOn, *payments[1].PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepository(db)

	mock.ExpectExec(`UPDATE payments SET status = \$1, payment_date = \$2 WHERE id = \$3`).
		WithArgs(models.PaymentStatusPaid, "2026-09-05", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkPaymentPaid(db, 42, "2026-09-05")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentPaidNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepository(db)

	mock.ExpectExec(`UPDATE payments SET status = \$1, payment_date = \$2 WHERE id = \$3`).
		WithArgs(models.PaymentStatusPaid, "2026-09-05", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkPaymentPaid(db, 404, "2026-09-05")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPaymentsByBulkRef(t *testing.T) {
	repo, mock := newPaymentRepoWithMock(t)

	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	ref := "bulk-2026-09"
	mock.ExpectQuery(`SELECT (.+) FROM payments WHERE bulk_ref = \$1 ORDER BY id ASC`).
		WithArgs(ref).
		WillReturnRows(paymentRows().
			AddRow(int64(1), int64(7), 500.0, "2026-09-01", nil,
				"Monthly Maintenance Fee", models.PaymentStatusDue, nil, ref, created))

	payments, err := repo.GetPaymentsByBulkRef(ref)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.NotNil(t, payments[0].BulkRef)
	assert.Equal(t, ref, *payments[0].BulkRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}
