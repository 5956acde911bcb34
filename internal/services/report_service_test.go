package services

import (
	"testing"

	"sportsclub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalRevenueCountsOnlyPaid(t *testing.T) {
	payments := []models.Payment{
		{MemberID: 1, Amount: 100, Status: models.PaymentStatusPaid},
		{MemberID: 2, Amount: 50, Status: models.PaymentStatusDue},
	}

	assert.Equal(t, 100.0, TotalRevenue(payments))
}

func TestTotalRevenueEmptyLedger(t *testing.T) {
	assert.Equal(t, 0.0, TotalRevenue(nil))
}

func TestTotalExpenditureSumsAllRows(t *testing.T) {
	expenditures := []models.Expenditure{
		{Category: models.CategoryMaintenance, Amount: 500},
		{Category: models.CategoryUtilities, Amount: 100},
	}

	assert.Equal(t, 600.0, TotalExpenditure(expenditures))
}

func TestExpenditureByCategoryOmitsEmptyCategories(t *testing.T) {
	expenditures := []models.Expenditure{
		{Category: models.CategoryMaintenance, Amount: 300},
		{Category: models.CategoryMaintenance, Amount: 200},
		{Category: models.CategoryUtilities, Amount: 100},
	}

	byCategory := ExpenditureByCategory(expenditures)

	assert.Equal(t, map[string]float64{
		models.CategoryMaintenance: 500,
		models.CategoryUtilities:   100,
	}, byCategory)
	assert.NotContains(t, byCategory, models.CategorySalaries)
}

func TestRevenueByMember(t *testing.T) {
	members := []models.Member{
		{ID: 1, FullName: "Alice Smith"},
		{ID: 2, FullName: "Bob Jones"},
		{ID: 3, FullName: "Carol White"},
	}
	payments := []models.Payment{
		{MemberID: 1, Amount: 100, Status: models.PaymentStatusPaid},
		{MemberID: 2, Amount: 300, Status: models.PaymentStatusPaid},
		{MemberID: 2, Amount: 200, Status: models.PaymentStatusPaid},
		{MemberID: 3, Amount: 999, Status: models.PaymentStatusDue},
	}

	result := RevenueByMember(members, payments)

	require.Len(t, result, 2, "members with zero paid revenue are excluded")
	assert.Equal(t, int64(2), result[0].MemberID)
	assert.Equal(t, 500.0, result[0].Revenue)
	assert.Equal(t, int64(1), result[1].MemberID)
	assert.Equal(t, 100.0, result[1].Revenue)
}

func TestRevenueByMemberStableOnTies(t *testing.T) {
	members := []models.Member{
		{ID: 10, FullName: "First Listed"},
		{ID: 20, FullName: "Second Listed"},
	}
	payments := []models.Payment{
		{MemberID: 10, Amount: 100, Status: models.PaymentStatusPaid},
		{MemberID: 20, Amount: 100, Status: models.PaymentStatusPaid},
	}

	result := RevenueByMember(members, payments)

	require.Len(t, result, 2)
	assert.Equal(t, int64(10), result[0].MemberID)
	assert.Equal(t, int64(20), result[1].MemberID)
}

type stubPaymentLister struct {
	PaymentRepositoryStub
	payments []models.Payment
}

func (s *stubPaymentLister) GetAllPayments() ([]models.Payment, error) {
	return s.payments, nil
}

type stubExpenditureLister struct {
	ExpenditureRepositoryStub
	expenditures []models.Expenditure
}

func (s *stubExpenditureLister) GetExpenditures() ([]models.Expenditure, error) {
	return s.expenditures, nil
}

type stubMemberLister struct {
	MemberRepositoryStub
	members []models.Member
}

func (s *stubMemberLister) GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error) {
	return s.members, len(s.members), nil
}

func TestFinancialSummaryNetLoss(t *testing.T) {
	svc := NewReportService(
		&stubPaymentLister{payments: []models.Payment{
			{MemberID: 1, Amount: 100, Status: models.PaymentStatusPaid},
		}},
		&stubExpenditureLister{expenditures: []models.Expenditure{
			{Category: models.CategorySalaries, Amount: 400},
		}},
		&stubMemberLister{members: []models.Member{{ID: 1, FullName: "Alice Smith"}}},
	)

	summary, err := svc.FinancialSummary()

	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 400.0, summary.TotalExpenditure)
	assert.Equal(t, -300.0, summary.NetProfitLoss)
	require.Len(t, summary.RevenueByMember, 1)
	assert.Equal(t, "Alice Smith", summary.RevenueByMember[0].FullName)
}
