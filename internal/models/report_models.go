package models

// MemberRevenue is one entry of the revenue-by-member breakdown.
type MemberRevenue struct {
	MemberID int64   `json:"member_id"`
	FullName string  `json:"full_name"`
	Revenue  float64 `json:"revenue"`
}

// FinancialSummary holds the derived financial report. Everything here is
// recomputed from the full payment and expenditure sets on every request;
// nothing is cached.
type FinancialSummary struct {
	TotalRevenue          float64            `json:"total_revenue"`
	TotalExpenditure      float64            `json:"total_expenditure"`
	NetProfitLoss         float64            `json:"net_profit_loss"`
	ExpenditureByCategory map[string]float64 `json:"expenditure_by_category"`
	RevenueByMember       []MemberRevenue    `json:"revenue_by_member"`
}

// ReportRequestParams holds common query parameters for report requests.
type ReportRequestParams struct {
	StartDate string `form:"start_date"` // yyyy-MM-dd
	EndDate   string `form:"end_date"`   // yyyy-MM-dd
	MonthYear string `form:"month_year"` // yyyy-MM
}
