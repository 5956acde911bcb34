package services

import (
	"fmt"
	"sort"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/internal/repositories"
)

// Report aggregation is simple grouping and summation over the full payment
// and expenditure sets. Nothing is cached; every request recomputes.

// TotalRevenue sums the amounts of Paid payments. Due payments are expected
// future revenue and are excluded.
func TotalRevenue(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentStatusPaid {
			total += p.Amount
		}
	}
	return total
}

// TotalExpenditure sums all expenditure amounts. Expenditures carry no status;
// every row counts.
func TotalExpenditure(expenditures []models.Expenditure) float64 {
	var total float64
	for _, e := range expenditures {
		total += e.Amount
	}
	return total
}

// ExpenditureByCategory groups expenditure amounts by category. Categories
// with no expenditures are omitted, not reported as zero.
func ExpenditureByCategory(expenditures []models.Expenditure) map[string]float64 {
	byCategory := map[string]float64{}
	for _, e := range expenditures {
		byCategory[e.Category] += e.Amount
	}
	return byCategory
}

// RevenueByMember sums Paid payments per member, drops members with zero
// revenue, and sorts descending by revenue. The sort is stable, so tied
// members keep their input order.
func RevenueByMember(members []models.Member, payments []models.Payment) []models.MemberRevenue {
	paidByMember := map[int64]float64{}
	for _, p := range payments {
		if p.Status == models.PaymentStatusPaid {
			paidByMember[p.MemberID] += p.Amount
		}
	}

	result := []models.MemberRevenue{}
	for _, m := range members {
		revenue := paidByMember[m.ID]
		if revenue == 0 {
			continue
		}
		result = append(result, models.MemberRevenue{
			MemberID: m.ID,
			FullName: m.FullName,
			Revenue:  revenue,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})
	return result
}

// --- ReportService Interface ---
type ReportService interface {
	FinancialSummary() (*models.FinancialSummary, error)
}

// --- reportService Implementation ---
type reportService struct {
	paymentRepo     repositories.PaymentRepository
	expenditureRepo repositories.ExpenditureRepository
	memberRepo      repositories.MemberRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(paymentRepo repositories.PaymentRepository, expenditureRepo repositories.ExpenditureRepository, memberRepo repositories.MemberRepository) ReportService {
	return &reportService{
		paymentRepo:     paymentRepo,
		expenditureRepo: expenditureRepo,
		memberRepo:      memberRepo,
	}
}

// FinancialSummary derives the full financial report from the current ledger
// and expenditure sets.
func (s *reportService) FinancialSummary() (*models.FinancialSummary, error) {
	payments, err := s.paymentRepo.GetAllPayments()
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for report: %w", err)
	}
	expenditures, err := s.expenditureRepo.GetExpenditures()
	if err != nil {
		return nil, fmt.Errorf("failed to load expenditures for report: %w", err)
	}
	members, _, err := s.memberRepo.GetMembers(0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load members for report: %w", err)
	}

	revenue := TotalRevenue(payments)
	expenditure := TotalExpenditure(expenditures)
	return &models.FinancialSummary{
		TotalRevenue:          revenue,
		TotalExpenditure:      expenditure,
		NetProfitLoss:         revenue - expenditure,
		ExpenditureByCategory: ExpenditureByCategory(expenditures),
		RevenueByMember:       RevenueByMember(members, payments),
	}, nil
}
