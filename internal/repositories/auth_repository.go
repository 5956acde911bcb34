package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sportsclub_backend/internal/models"

	"github.com/lib/pq"
)

// AuthRepository defines the interface for user credential persistence.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) (int64, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

const userColumns = `id, username, email, password_hash, full_name, role, created_at, updated_at`

// CreateUser inserts a new credential row.
func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User) (int64, error) {
	query := `INSERT INTO users (username, email, password_hash, full_name, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	err := executor.QueryRow(query,
		user.Username, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

func (r *authRepository) getUserBy(field string, value interface{}) (*models.User, error) {
	user := &models.User{}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)
	err := r.db.QueryRow(query, value).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName,
		&user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by %s: %v", ErrDatabaseError, field, err)
	}
	return user, nil
}

// GetUserByID retrieves a user by primary key.
func (r *authRepository) GetUserByID(id int64) (*models.User, error) {
	return r.getUserBy("id", id)
}

// GetUserByUsername retrieves a user by username.
func (r *authRepository) GetUserByUsername(username string) (*models.User, error) {
	return r.getUserBy("username", username)
}

// GetUserByEmail retrieves a user by email.
func (r *authRepository) GetUserByEmail(email string) (*models.User, error) {
	return r.getUserBy("email", email)
}
