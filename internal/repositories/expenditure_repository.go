package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sportsclub_backend/internal/models"
)

// ExpenditureRepository defines the interface for expenditure persistence.
type ExpenditureRepository interface {
	CreateExpenditure(executor SQLExecutor, exp *models.Expenditure) (int64, error)
	GetExpenditureByID(id int64) (*models.Expenditure, error)
	GetExpenditures() ([]models.Expenditure, error)
	UpdateExpenditure(executor SQLExecutor, exp *models.Expenditure) error
	DeleteExpenditure(executor SQLExecutor, id int64) error
}

type expenditureRepository struct {
	db *sql.DB
}

// NewExpenditureRepository creates a new instance of ExpenditureRepository.
func NewExpenditureRepository(db *sql.DB) ExpenditureRepository {
	return &expenditureRepository{db: db}
}

const expenditureColumns = `id, to_char(date, 'YYYY-MM-DD'), category, amount, description, created_at`

// CreateExpenditure inserts a new expenditure row.
func (r *expenditureRepository) CreateExpenditure(executor SQLExecutor, exp *models.Expenditure) (int64, error) {
	query := `INSERT INTO expenditures (date, category, amount, description, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	if exp.CreatedAt.IsZero() {
		exp.CreatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		exp.Date, exp.Category, exp.Amount, exp.Description, exp.CreatedAt,
	).Scan(&exp.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating expenditure: %v", ErrDatabaseError, err)
	}
	return exp.ID, nil
}

// GetExpenditureByID retrieves one expenditure row.
func (r *expenditureRepository) GetExpenditureByID(id int64) (*models.Expenditure, error) {
	exp := &models.Expenditure{}
	query := `SELECT ` + expenditureColumns + ` FROM expenditures WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&exp.ID, &exp.Date, &exp.Category, &exp.Amount, &exp.Description, &exp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting expenditure by ID %d: %v", ErrDatabaseError, id, err)
	}
	return exp, nil
}

// GetExpenditures returns all expenditures, newest date first.
func (r *expenditureRepository) GetExpenditures() ([]models.Expenditure, error) {
	query := `SELECT ` + expenditureColumns + ` FROM expenditures ORDER BY date DESC, id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenditures: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	expenditures := []models.Expenditure{}
	for rows.Next() {
		var exp models.Expenditure
		if err := rows.Scan(&exp.ID, &exp.Date, &exp.Category, &exp.Amount, &exp.Description, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning expenditure: %v", ErrDatabaseError, err)
		}
		expenditures = append(expenditures, exp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expenditure rows: %v", ErrDatabaseError, err)
	}
	return expenditures, nil
}

// UpdateExpenditure updates an existing expenditure row.
func (r *expenditureRepository) UpdateExpenditure(executor SQLExecutor, exp *models.Expenditure) error {
	query := `UPDATE expenditures SET date = $1, category = $2, amount = $3, description = $4 WHERE id = $5`
	result, err := executor.Exec(query, exp.Date, exp.Category, exp.Amount, exp.Description, exp.ID)
	if err != nil {
		return fmt.Errorf("%w: updating expenditure ID %d: %v", ErrDatabaseError, exp.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for expenditure ID %d: %v", ErrDatabaseError, exp.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpenditure removes an expenditure row.
func (r *expenditureRepository) DeleteExpenditure(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM expenditures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting expenditure ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting expenditure ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
