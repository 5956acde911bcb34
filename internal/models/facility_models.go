package models

// Facility is one fee-schedule entry: a subscribable club facility and its
// periodic subscription fee. The schedule is static configuration seeded at
// install time; nothing mutates it at runtime.
type Facility struct {
	ID   int64   `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Fee  float64 `json:"fee" db:"fee"`
}
