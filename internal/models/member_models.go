package models

import (
	"time"

	"github.com/lib/pq"
)

// Member represents a registered club member.
// SubscribedFacilities holds facility names in subscription order; each name
// should match a fee-schedule entry, but unknown names are tolerated and simply
// contribute nothing to the member's dues.
type Member struct {
	ID                   int64          `json:"id" db:"id"`
	UserID               *int64         `json:"user_id,omitempty" db:"user_id"`
	FullName             string         `json:"full_name" db:"full_name" binding:"required"`
	Email                string         `json:"email" db:"email"`
	PhoneNumber          *string        `json:"phone_number,omitempty" db:"phone_number"`
	Address              *string        `json:"address,omitempty" db:"address"`
	DateOfBirth          *string        `json:"date_of_birth,omitempty" db:"date_of_birth"` // yyyy-MM-dd
	DateOfJoining        string         `json:"date_of_joining" db:"date_of_joining"`       // yyyy-MM-dd
	Role                 string         `json:"role" db:"role"`
	PhotoURL             *string        `json:"photo_url,omitempty" db:"photo_url"`
	SubscribedFacilities pq.StringArray `json:"subscribed_facilities" db:"subscribed_facilities"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at" db:"updated_at"`
}
