package services

import (
	"fmt"
	"testing"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
	"sportsclub_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminActor  = models.Principal{UserID: 1, Username: "admin", Role: models.RoleAdmin}
	memberActor = models.Principal{UserID: 2, Username: "alice", Role: models.RoleMember}
)

// fakePaymentRepo is an in-memory PaymentRepository.
type fakePaymentRepo struct {
	PaymentRepositoryStub
	payments      map[int64]*models.Payment
	nextID        int64
	markPaidCalls int
	failInserts   bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]*models.Payment{}, nextID: 1}
}

func (f *fakePaymentRepo) CreatePayment(executor repositories.SQLExecutor, payment *models.Payment) (int64, error) {
	if f.failInserts {
		return 0, repositories.ErrDatabaseError
	}
	stored := *payment
	stored.ID = f.nextID
	f.payments[stored.ID] = &stored
	f.nextID++
	return stored.ID, nil
}

func (f *fakePaymentRepo) GetPaymentByID(id int64) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) MarkPaymentPaid(executor repositories.SQLExecutor, id int64, paymentDate string) error {
	f.markPaidCalls++
	p, ok := f.payments[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Status = models.PaymentStatusPaid
	p.PaymentDate = &paymentDate
	return nil
}

func (f *fakePaymentRepo) GetPaymentsByBulkRef(bulkRef string) ([]models.Payment, error) {
	result := []models.Payment{}
	for id := int64(1); id < f.nextID; id++ {
		p := f.payments[id]
		if p != nil && p.BulkRef != nil && *p.BulkRef == bulkRef {
			result = append(result, *p)
		}
	}
	return result, nil
}

// fakeMemberRepo resolves a fixed set of member IDs.
type fakeMemberRepo struct {
	MemberRepositoryStub
	existing map[int64]bool
}

func (f *fakeMemberRepo) GetMemberByID(id int64) (*models.Member, error) {
	if !f.existing[id] {
		return nil, repositories.ErrNotFound
	}
	return &models.Member{ID: id, FullName: fmt.Sprintf("Member %d", id)}, nil
}

func newPaymentServiceForTest(paymentRepo *fakePaymentRepo, memberIDs ...int64) PaymentService {
	existing := map[int64]bool{}
	for _, id := range memberIDs {
		existing[id] = true
	}
	return NewPaymentService(paymentRepo, &fakeMemberRepo{existing: existing}, nil)
}

func TestAddPaymentRequiresAdmin(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	_, err := svc.AddPayment(memberActor, CreatePaymentRequest{
		MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAddPaymentValidation(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	tests := []struct {
		name    string
		req     CreatePaymentRequest
		wantErr error
	}{
		{
			name:    "amount must be positive",
			req:     CreatePaymentRequest{MemberID: 1, Amount: 0, Date: "2026-09-01", Description: "Fee", Status: models.PaymentStatusDue},
			wantErr: ErrPaymentValidation,
		},
		{
			name:    "negative amount rejected",
			req:     CreatePaymentRequest{MemberID: 1, Amount: -5, Date: "2026-09-01", Description: "Fee", Status: models.PaymentStatusDue},
			wantErr: ErrPaymentValidation,
		},
		{
			name:    "date must be yyyy-mm-dd",
			req:     CreatePaymentRequest{MemberID: 1, Amount: 100, Date: "01/09/2026", Description: "Fee", Status: models.PaymentStatusDue},
			wantErr: ErrDateFormat,
		},
		{
			name:    "description required",
			req:     CreatePaymentRequest{MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "   ", Status: models.PaymentStatusDue},
			wantErr: ErrPaymentValidation,
		},
		{
			name:    "status must be Paid or Due",
			req:     CreatePaymentRequest{MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Fee", Status: "Pending"},
			wantErr: ErrPaymentValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddPayment(adminActor, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddPaymentUnknownMember(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	_, err := svc.AddPayment(adminActor, CreatePaymentRequest{
		MemberID: 99, Amount: 100, Date: "2026-09-01", Description: "Fee", Status: models.PaymentStatusDue,
	})

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestAddPaymentDueLeavesPaymentDateUnset(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	payment, err := svc.AddPayment(adminActor, CreatePaymentRequest{
		MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusDue, payment.Status)
	assert.Nil(t, payment.PaymentDate)
}

func TestAddPaymentPaidStampsPaymentDate(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	payment, err := svc.AddPayment(adminActor, CreatePaymentRequest{
		MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Court booking", Status: models.PaymentStatusPaid,
	})

	require.NoError(t, err)
	require.NotNil(t, payment.PaymentDate)
	assert.Equal(t, utils.Today(), *payment.PaymentDate)
}

func TestMarkPaidTransitionsDuePayment(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentServiceForTest(repo, 1)

	created, err := svc.AddPayment(adminActor, CreatePaymentRequest{
		MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Fee", Status: models.PaymentStatusDue,
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(adminActor, created.ID)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, utils.Today(), *paid.PaymentDate)
}

func TestMarkPaidOnPaidPaymentIsNoOp(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentServiceForTest(repo, 1)

	created, err := svc.AddPayment(adminActor, CreatePaymentRequest{
		MemberID: 1, Amount: 100, Date: "2026-09-01", Description: "Fee", Status: models.PaymentStatusPaid,
	})
	require.NoError(t, err)

	again, err := svc.MarkPaid(adminActor, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created, again)
	assert.Zero(t, repo.markPaidCalls, "no update should be issued for an already-Paid row")
}

func TestMarkPaidNotFound(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	_, err := svc.MarkPaid(adminActor, 404)

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMarkPaidRequiresAdmin(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	_, err := svc.MarkPaid(memberActor, 1)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPostBulkCreatesARowPerMember(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentServiceForTest(repo, 1, 2, 3)

	result, err := svc.PostBulk(adminActor, BulkPaymentRequest{
		MemberIDs: []int64{1, 2, 3}, Amount: 500, Date: "2026-09-01",
		Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.CreatedCount)
	assert.Empty(t, result.FailedMemberIDs)
	assert.NotEmpty(t, result.IdempotencyKey)
	assert.False(t, result.Replayed)

	rows, err := repo.GetPaymentsByBulkRef(result.IdempotencyKey)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 500.0, row.Amount)
		assert.Equal(t, models.PaymentStatusDue, row.Status)
	}
}

func TestPostBulkSkipsUnknownMembersWithoutRollback(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentServiceForTest(repo, 1, 3)

	result, err := svc.PostBulk(adminActor, BulkPaymentRequest{
		MemberIDs: []int64{1, 2, 3}, Amount: 500, Date: "2026-09-01",
		Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, []int64{2}, result.FailedMemberIDs)

	rows, err := repo.GetPaymentsByBulkRef(result.IdempotencyKey)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "rows created before and after the failure stay created")
}

func TestPostBulkReplaysIdempotencyKey(t *testing.T) {
	repo := newFakePaymentRepo()
	svc := newPaymentServiceForTest(repo, 1, 2)
	key := "bulk-2026-09"

	first, err := svc.PostBulk(adminActor, BulkPaymentRequest{
		MemberIDs: []int64{1, 2}, Amount: 500, Date: "2026-09-01",
		Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
		IdempotencyKey: &key,
	})
	require.NoError(t, err)
	require.Equal(t, 2, first.CreatedCount)

	replay, err := svc.PostBulk(adminActor, BulkPaymentRequest{
		MemberIDs: []int64{1, 2}, Amount: 500, Date: "2026-09-01",
		Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue,
		IdempotencyKey: &key,
	})

	require.NoError(t, err)
	assert.True(t, replay.Replayed)
	assert.Equal(t, 2, replay.CreatedCount)

	rows, err := repo.GetPaymentsByBulkRef(key)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "replay must not post duplicates")
}

func TestPostBulkRejectsEmptyMemberList(t *testing.T) {
	svc := newPaymentServiceForTest(newFakePaymentRepo(), 1)

	_, err := svc.PostBulk(adminActor, BulkPaymentRequest{
		MemberIDs: nil, Amount: 500, Date: "2026-09-01",
		Description: "Fee", Status: models.PaymentStatusDue,
	})

	assert.ErrorIs(t, err, ErrPaymentValidation)
}

func TestFilterPayments(t *testing.T) {
	paidDate := "2026-10-03"
	payments := []models.Payment{
		{ID: 1, MemberID: 1, Description: "Monthly Maintenance Fee", Status: models.PaymentStatusDue, Date: "2026-09-01"},
		{ID: 2, MemberID: 1, Description: "Court booking", Status: models.PaymentStatusPaid, Date: "2026-09-15", PaymentDate: &paidDate},
		{ID: 3, MemberID: 2, Description: "Monthly Maintenance Fee", Status: models.PaymentStatusPaid, Date: "2026-10-01"},
	}

	memberOne := int64(1)
	maintenance := "Monthly Maintenance Fee"
	paid := models.PaymentStatusPaid
	september := "2026-09"
	october := "2026-10"

	tests := []struct {
		name    string
		filter  models.PaymentFilter
		wantIDs []int64
	}{
		{
			name:    "no criteria returns everything",
			filter:  models.PaymentFilter{},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "by member",
			filter:  models.PaymentFilter{MemberID: &memberOne},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "by description",
			filter:  models.PaymentFilter{Description: &maintenance},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "criteria are ANDed",
			filter:  models.PaymentFilter{Description: &maintenance, Status: &paid},
			wantIDs: []int64{3},
		},
		{
			name:    "month matches the charge date not the completion date",
			filter:  models.PaymentFilter{MonthYear: &september},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "october only sees the october charge",
			filter:  models.PaymentFilter{MonthYear: &october},
			wantIDs: []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPayments(payments, tt.filter)
			gotIDs := make([]int64, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}
