package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/randorium/randorium-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID and timestamps on the user struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (email, auth_hash, created_at, updated_at) VALUES (?, ?, ?, ?)`

	now := time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.db.ExecContext(ctx, query, user.Email, user.AuthHash, toMillis(now), toMillis(now))
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// selectUser reads a user with its roll and live saved prompt counts.
const selectUser = `SELECT u.id, u.email, u.auth_hash, u.created_at, u.updated_at,
	(SELECT COUNT(*) FROM dice_rolls d WHERE d.user_id = u.id),
	(SELECT COUNT(*) FROM saved_prompts p WHERE p.user_id = u.id AND p.deleted = FALSE)
	FROM users u`

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE u.email = ?`, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE u.id = ?`, id))
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	var (
		user             model.User
		created, updated int64
	)
	err := row.Scan(&user.ID, &user.Email, &user.AuthHash, &created, &updated,
		&user.Activity.Rolls, &user.Activity.SavedPrompts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.CreatedAt = fromMillis(created)
	user.UpdatedAt = fromMillis(updated)
	return &user, nil
}

// isDuplicateEntryError reports a unique key violation from MySQL (1062) or SQLite.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
