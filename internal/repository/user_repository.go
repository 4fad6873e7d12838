package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/coworking-reservation/internal/domain"
)

// User mirrors the 'users' table.  The domain entity is the validated
// form; this record is what gets scanned and persisted.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string // ADMIN | MEMBER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepo provides access to user rows.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo constructs a UserRepo bound to the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a validated domain user.  The password hash is
// computed by the caller; the plaintext never reaches this layer.
// A duplicate e-mail yields ErrDuplicate via the unique index.
func (r *UserRepo) Create(ctx context.Context, u *domain.User, passwordHash, role string) error {
	const q = `INSERT INTO users (id, first_name, last_name, email, password_hash, role)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, q,
		u.ID().String(),
		u.Name().First().String(),
		u.Name().Last().String(),
		u.Credentials().Email().String(),
		passwordHash,
		role,
	)
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// GetByEmail fetches a user by e-mail.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `SELECT id, first_name, last_name, email, password_hash, role, created_at, updated_at
	           FROM users WHERE email = ? LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	const q = `SELECT id, first_name, last_name, email, password_hash, role, created_at, updated_at
	           FROM users WHERE id = ? LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, id.String()))
}

// IsEmailUnique reports whether no user currently holds the e-mail.
// It is an early-rejection path; the unique index remains the final
// word under concurrency.
func (r *UserRepo) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, q, email).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

// UpdateName replaces a user's name fields.
func (r *UserRepo) UpdateName(ctx context.Context, id uuid.UUID, firstName, lastName string) error {
	const q = `UPDATE users SET first_name = ?, last_name = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	return r.exec(ctx, q, firstName, lastName, id.String())
}

// UpdateEmail replaces a user's e-mail.  ErrDuplicate signals that
// another user claimed the address first.
func (r *UserRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	const q = `UPDATE users SET email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	err := r.exec(ctx, q, email, id.String())
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// UpdatePasswordHash replaces a user's password hash.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	const q = `UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	return r.exec(ctx, q, hash, id.String())
}

func (r *UserRepo) exec(ctx context.Context, q string, args ...interface{}) error {
	res, err := r.DB.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row *sql.Row) (*User, error) {
	var u User
	var id string
	err := row.Scan(&id, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
