package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"sportsclub_backend/internal/models"

	"github.com/lib/pq"
)

// MemberRepository defines the interface for member-related database operations.
type MemberRepository interface {
	CreateMember(executor SQLExecutor, member *models.Member) (int64, error)
	GetMemberByID(id int64) (*models.Member, error)
	GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error) // Members, total count, error
	UpdateMember(executor SQLExecutor, member *models.Member) error
	DeleteMember(executor SQLExecutor, id int64) error
}

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new instance of MemberRepository.
func NewMemberRepository(db *sql.DB) MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, user_id, full_name, email, phone_number, address, to_char(date_of_birth, 'YYYY-MM-DD'),
	to_char(date_of_joining, 'YYYY-MM-DD'), role, photo_url, subscribed_facilities, created_at, updated_at`

func scanMember(row interface{ Scan(...interface{}) error }, member *models.Member) error {
	return row.Scan(
		&member.ID, &member.UserID, &member.FullName, &member.Email, &member.PhoneNumber,
		&member.Address, &member.DateOfBirth, &member.DateOfJoining, &member.Role,
		&member.PhotoURL, &member.SubscribedFacilities, &member.CreatedAt, &member.UpdatedAt,
	)
}

// CreateMember inserts a new member into the database.
func (r *memberRepository) CreateMember(executor SQLExecutor, member *models.Member) (int64, error) {
	query := `INSERT INTO members (user_id, full_name, email, phone_number, address, date_of_birth,
	            date_of_joining, role, photo_url, subscribed_facilities, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now
	if member.SubscribedFacilities == nil {
		member.SubscribedFacilities = pq.StringArray{}
	}

	err := executor.QueryRow(query,
		member.UserID, member.FullName, member.Email, member.PhoneNumber, member.Address,
		member.DateOfBirth, member.DateOfJoining, member.Role, member.PhotoURL,
		member.SubscribedFacilities, member.CreatedAt, member.UpdatedAt,
	).Scan(&member.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating member: %v", ErrDatabaseError, err)
	}
	return member.ID, nil
}

// GetMemberByID retrieves a member by their ID.
func (r *memberRepository) GetMemberByID(id int64) (*models.Member, error) {
	member := &models.Member{}
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	err := scanMember(r.db.QueryRow(query, id), member)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return member, nil
}

// GetMembers retrieves a list of members with pagination and optional search.
func (r *memberRepository) GetMembers(page, pageSize int, searchTerm *string) ([]models.Member, int, error) {
	members := []models.Member{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + memberColumns + `, COUNT(*) OVER() as total_count FROM members`)

	var args []interface{}
	argCount := 1

	if searchTerm != nil && *searchTerm != "" {
		searchPattern := "%" + strings.ToLower(*searchTerm) + "%"
		queryBuilder.WriteString(fmt.Sprintf(" WHERE (LOWER(full_name) ILIKE $%d OR LOWER(email) ILIKE $%d)", argCount, argCount))
		args = append(args, searchPattern)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY full_name ASC")

	if pageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, pageSize)
		argCount++
		if page > 0 {
			offset := (page - 1) * pageSize
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID, &member.UserID, &member.FullName, &member.Email, &member.PhoneNumber,
			&member.Address, &member.DateOfBirth, &member.DateOfJoining, &member.Role,
			&member.PhotoURL, &member.SubscribedFacilities, &member.CreatedAt, &member.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning member: %v", ErrDatabaseError, err)
		}
		members = append(members, member)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating member rows: %v", ErrDatabaseError, err)
	}

	return members, totalCount, nil
}

// UpdateMember updates an existing member in the database.
func (r *memberRepository) UpdateMember(executor SQLExecutor, member *models.Member) error {
	query := `UPDATE members SET
	            full_name = $1, email = $2, phone_number = $3, address = $4, date_of_birth = $5,
	            date_of_joining = $6, role = $7, photo_url = $8, subscribed_facilities = $9, updated_at = $10
	          WHERE id = $11`

	member.UpdatedAt = time.Now()
	if member.SubscribedFacilities == nil {
		member.SubscribedFacilities = pq.StringArray{}
	}

	result, err := executor.Exec(query,
		member.FullName, member.Email, member.PhoneNumber, member.Address, member.DateOfBirth,
		member.DateOfJoining, member.Role, member.PhotoURL, member.SubscribedFacilities,
		member.UpdatedAt, member.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating member ID %d: %v", ErrDatabaseError, member.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating member ID %d: %v", ErrDatabaseError, member.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMember removes a member from the database. Ledger rows referencing the
// member are deliberately left in place; there is no foreign key to cascade.
func (r *memberRepository) DeleteMember(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting member ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
