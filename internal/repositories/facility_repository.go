package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"sportsclub_backend/internal/models"
)

// FacilityRepository reads the static fee schedule. Facilities are seeded by
// the schema and never mutated at runtime, so only read operations exist.
type FacilityRepository interface {
	GetFacilities() ([]models.Facility, error)
	GetFacilityByName(name string) (*models.Facility, error)
}

type facilityRepository struct {
	db *sql.DB
}

// NewFacilityRepository creates a new instance of FacilityRepository.
func NewFacilityRepository(db *sql.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

// GetFacilities returns every fee-schedule entry, ordered by name.
func (r *facilityRepository) GetFacilities() ([]models.Facility, error) {
	rows, err := r.db.Query(`SELECT id, name, fee FROM facilities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying facilities: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	facilities := []models.Facility{}
	for rows.Next() {
		var f models.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Fee); err != nil {
			return nil, fmt.Errorf("%w: scanning facility: %v", ErrDatabaseError, err)
		}
		facilities = append(facilities, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating facility rows: %v", ErrDatabaseError, err)
	}
	return facilities, nil
}

// GetFacilityByName retrieves one fee-schedule entry by its unique name.
func (r *facilityRepository) GetFacilityByName(name string) (*models.Facility, error) {
	f := &models.Facility{}
	err := r.db.QueryRow(`SELECT id, name, fee FROM facilities WHERE name = $1`, name).
		Scan(&f.ID, &f.Name, &f.Fee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting facility %q: %v", ErrDatabaseError, name, err)
	}
	return f, nil
}
