package models

import "time"

// Content records backing the public marketing pages. No business rules beyond
// field validation; standard create/update/delete lifecycle through admin forms.

// Event is a club event shown on the events page.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	Date        string    `json:"date" db:"date"` // yyyy-MM-dd
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TeamMember is a staff profile shown on the about page.
type TeamMember struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Position  *string   `json:"position,omitempty" db:"position"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	PhotoURL  *string   `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Location is a club venue shown on the facilities page.
type Location struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	Address     *string   `json:"address,omitempty" db:"address"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Enquiry is a message submitted through the public contact form.
type Enquiry struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Email     string    `json:"email" db:"email" binding:"required"`
	Message   string    `json:"message" db:"message" binding:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
