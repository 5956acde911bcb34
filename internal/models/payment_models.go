package models

import "time"

// Payment statuses. A ledger row is either money owed or money received.
const (
	PaymentStatusDue  = "Due"
	PaymentStatusPaid = "Paid"
)

// Well-known payment descriptions. Free text is also accepted.
const (
	DescriptionMaintenanceFee = "Monthly Maintenance Fee"
	DescriptionOther          = "Other"
)

// Payment is one row of the membership payment ledger.
// PaymentDate is set only when the row was (or became) Paid; Date is the
// calendar date the due/payment is logged for. Rows created by a bulk post
// share a BulkRef so a replayed bulk operation can be detected.
type Payment struct {
	ID          int64     `json:"id" db:"id"`
	MemberID    int64     `json:"member_id" db:"member_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Date        string    `json:"date" db:"date"` // yyyy-MM-dd
	PaymentDate *string   `json:"payment_date,omitempty" db:"payment_date"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Comment     *string   `json:"comment,omitempty" db:"comment"`
	BulkRef     *string   `json:"bulk_ref,omitempty" db:"bulk_ref"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PaymentFilter narrows a payment listing. All provided criteria are ANDed.
// MonthYear is a yyyy-MM key matched against the payment's Date, not its
// PaymentDate.
type PaymentFilter struct {
	MemberID    *int64  `form:"member_id"`
	Description *string `form:"description"`
	Status      *string `form:"status"`
	MonthYear   *string `form:"month_year"`
}
