package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sportsclub_backend/internal/models"
)

// ContentRepository covers the simple content records behind the public pages:
// events, team members, locations and contact enquiries. They share a plain
// CRUD lifecycle with no business rules, so one repository carries all four.
type ContentRepository interface {
	CreateEvent(executor SQLExecutor, event *models.Event) (int64, error)
	GetEventByID(id int64) (*models.Event, error)
	GetEvents() ([]models.Event, error)
	UpdateEvent(executor SQLExecutor, event *models.Event) error
	DeleteEvent(executor SQLExecutor, id int64) error

	CreateTeamMember(executor SQLExecutor, tm *models.TeamMember) (int64, error)
	GetTeamMemberByID(id int64) (*models.TeamMember, error)
	GetTeamMembers() ([]models.TeamMember, error)
	UpdateTeamMember(executor SQLExecutor, tm *models.TeamMember) error
	DeleteTeamMember(executor SQLExecutor, id int64) error

	CreateLocation(executor SQLExecutor, loc *models.Location) (int64, error)
	GetLocationByID(id int64) (*models.Location, error)
	GetLocations() ([]models.Location, error)
	UpdateLocation(executor SQLExecutor, loc *models.Location) error
	DeleteLocation(executor SQLExecutor, id int64) error

	CreateEnquiry(executor SQLExecutor, enquiry *models.Enquiry) (int64, error)
	GetEnquiries() ([]models.Enquiry, error)
}

type contentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new instance of ContentRepository.
func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

// --- Events ---

func (r *contentRepository) CreateEvent(executor SQLExecutor, event *models.Event) (int64, error) {
	query := `INSERT INTO events (title, description, date, image_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	event.CreatedAt, event.UpdatedAt = now, now
	err := executor.QueryRow(query, event.Title, event.Description, event.Date, event.ImageURL, now, now).
		Scan(&event.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating event: %v", ErrDatabaseError, err)
	}
	return event.ID, nil
}

func (r *contentRepository) GetEventByID(id int64) (*models.Event, error) {
	event := &models.Event{}
	query := `SELECT id, title, description, to_char(date, 'YYYY-MM-DD'), image_url, created_at, updated_at
	          FROM events WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Date, &event.ImageURL,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting event by ID %d: %v", ErrDatabaseError, id, err)
	}
	return event, nil
}

// GetEvents returns all events, newest date first.
func (r *contentRepository) GetEvents() ([]models.Event, error) {
	query := `SELECT id, title, description, to_char(date, 'YYYY-MM-DD'), image_url, created_at, updated_at
	          FROM events ORDER BY date DESC, id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying events: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Date, &event.ImageURL,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning event: %v", ErrDatabaseError, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating event rows: %v", ErrDatabaseError, err)
	}
	return events, nil
}

func (r *contentRepository) UpdateEvent(executor SQLExecutor, event *models.Event) error {
	query := `UPDATE events SET title = $1, description = $2, date = $3, image_url = $4, updated_at = $5
	          WHERE id = $6`
	event.UpdatedAt = time.Now()
	return execExpectingRow(executor, "event", event.ID, query,
		event.Title, event.Description, event.Date, event.ImageURL, event.UpdatedAt, event.ID)
}

func (r *contentRepository) DeleteEvent(executor SQLExecutor, id int64) error {
	return execExpectingRow(executor, "event", id, `DELETE FROM events WHERE id = $1`, id)
}

// --- Team members ---

func (r *contentRepository) CreateTeamMember(executor SQLExecutor, tm *models.TeamMember) (int64, error) {
	query := `INSERT INTO team_members (name, position, bio, photo_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	tm.CreatedAt, tm.UpdatedAt = now, now
	err := executor.QueryRow(query, tm.Name, tm.Position, tm.Bio, tm.PhotoURL, now, now).Scan(&tm.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating team member: %v", ErrDatabaseError, err)
	}
	return tm.ID, nil
}

func (r *contentRepository) GetTeamMemberByID(id int64) (*models.TeamMember, error) {
	tm := &models.TeamMember{}
	query := `SELECT id, name, position, bio, photo_url, created_at, updated_at FROM team_members WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&tm.ID, &tm.Name, &tm.Position, &tm.Bio, &tm.PhotoURL, &tm.CreatedAt, &tm.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting team member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return tm, nil
}

func (r *contentRepository) GetTeamMembers() ([]models.TeamMember, error) {
	query := `SELECT id, name, position, bio, photo_url, created_at, updated_at FROM team_members ORDER BY name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying team members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	teamMembers := []models.TeamMember{}
	for rows.Next() {
		var tm models.TeamMember
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Position, &tm.Bio, &tm.PhotoURL, &tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning team member: %v", ErrDatabaseError, err)
		}
		teamMembers = append(teamMembers, tm)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating team member rows: %v", ErrDatabaseError, err)
	}
	return teamMembers, nil
}

func (r *contentRepository) UpdateTeamMember(executor SQLExecutor, tm *models.TeamMember) error {
	query := `UPDATE team_members SET name = $1, position = $2, bio = $3, photo_url = $4, updated_at = $5
	          WHERE id = $6`
	tm.UpdatedAt = time.Now()
	return execExpectingRow(executor, "team member", tm.ID, query,
		tm.Name, tm.Position, tm.Bio, tm.PhotoURL, tm.UpdatedAt, tm.ID)
}

func (r *contentRepository) DeleteTeamMember(executor SQLExecutor, id int64) error {
	return execExpectingRow(executor, "team member", id, `DELETE FROM team_members WHERE id = $1`, id)
}

// --- Locations ---

func (r *contentRepository) CreateLocation(executor SQLExecutor, loc *models.Location) (int64, error) {
	query := `INSERT INTO locations (name, description, address, image_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	loc.CreatedAt, loc.UpdatedAt = now, now
	err := executor.QueryRow(query, loc.Name, loc.Description, loc.Address, loc.ImageURL, now, now).Scan(&loc.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating location: %v", ErrDatabaseError, err)
	}
	return loc.ID, nil
}

func (r *contentRepository) GetLocationByID(id int64) (*models.Location, error) {
	loc := &models.Location{}
	query := `SELECT id, name, description, address, image_url, created_at, updated_at FROM locations WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&loc.ID, &loc.Name, &loc.Description, &loc.Address, &loc.ImageURL, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting location by ID %d: %v", ErrDatabaseError, id, err)
	}
	return loc, nil
}

func (r *contentRepository) GetLocations() ([]models.Location, error) {
	query := `SELECT id, name, description, address, image_url, created_at, updated_at FROM locations ORDER BY name ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying locations: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Address, &loc.ImageURL, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning location: %v", ErrDatabaseError, err)
		}
		locations = append(locations, loc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating location rows: %v", ErrDatabaseError, err)
	}
	return locations, nil
}

func (r *contentRepository) UpdateLocation(executor SQLExecutor, loc *models.Location) error {
	query := `UPDATE locations SET name = $1, description = $2, address = $3, image_url = $4, updated_at = $5
	          WHERE id = $6`
	loc.UpdatedAt = time.Now()
	return execExpectingRow(executor, "location", loc.ID, query,
		loc.Name, loc.Description, loc.Address, loc.ImageURL, loc.UpdatedAt, loc.ID)
}

func (r *contentRepository) DeleteLocation(executor SQLExecutor, id int64) error {
	return execExpectingRow(executor, "location", id, `DELETE FROM locations WHERE id = $1`, id)
}

// --- Enquiries ---

func (r *contentRepository) CreateEnquiry(executor SQLExecutor, enquiry *models.Enquiry) (int64, error) {
	query := `INSERT INTO enquiries (name, email, message, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now()
	}
	err := executor.QueryRow(query, enquiry.Name, enquiry.Email, enquiry.Message, enquiry.CreatedAt).
		Scan(&enquiry.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating enquiry: %v", ErrDatabaseError, err)
	}
	return enquiry.ID, nil
}

func (r *contentRepository) GetEnquiries() ([]models.Enquiry, error) {
	query := `SELECT id, name, email, message, created_at FROM enquiries ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying enquiries: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	enquiries := []models.Enquiry{}
	for rows.Next() {
		var enquiry models.Enquiry
		if err := rows.Scan(&enquiry.ID, &enquiry.Name, &enquiry.Email, &enquiry.Message, &enquiry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning enquiry: %v", ErrDatabaseError, err)
		}
		enquiries = append(enquiries, enquiry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating enquiry rows: %v", ErrDatabaseError, err)
	}
	return enquiries, nil
}

// execExpectingRow runs a write that must touch exactly one row.
func execExpectingRow(executor SQLExecutor, entity string, id int64, query string, args ...interface{}) error {
	result, err := executor.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: writing %s ID %d: %v", ErrDatabaseError, entity, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for %s ID %d: %v", ErrDatabaseError, entity, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
