package models

import "time"

// Expenditure categories form a closed set.
const (
	CategoryMaintenance = "Maintenance"
	CategorySalaries    = "Salaries"
	CategoryUtilities   = "Utilities"
	CategoryEvents      = "Events"
	CategoryOther       = "Other"
)

// ExpenditureCategories lists every valid expenditure category.
var ExpenditureCategories = []string{
	CategoryMaintenance,
	CategorySalaries,
	CategoryUtilities,
	CategoryEvents,
	CategoryOther,
}

// IsValidExpenditureCategory reports whether category belongs to the closed set.
func IsValidExpenditureCategory(category string) bool {
	for _, c := range ExpenditureCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expenditure is a money-out record. It has no relationship to members or
// payments; every expenditure counts toward totals regardless of any status.
type Expenditure struct {
	ID          int64     `json:"id" db:"id"`
	Date        string    `json:"date" db:"date"` // yyyy-MM-dd
	Category    string    `json:"category" db:"category"`
	Amount      float64   `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
