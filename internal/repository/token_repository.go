package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TokenRepo persists and validates refresh tokens.  Only the SHA-256
// hash of a token is stored; the raw value exists client-side only.
type TokenRepo struct{ DB *sql.DB }

// NewTokenRepo constructs a TokenRepo bound to the given DB handle.
func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uuid.UUID, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID.String(), tokenHash, exp)
	return err
}

// ValidateRefresh returns the owning user's id when a non-revoked,
// non-expired token with the given hash exists.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	var (
		id36      string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&id36, &expiresAt, &revokedAt)
	if err != nil {
		return uuid.Nil, err
	}
	if revokedAt.Valid || time.Now().UTC().After(expiresAt) {
		return uuid.Nil, sql.ErrNoRows
	}
	return uuid.Parse(id36)
}

// RevokeByHash marks a token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForUser revokes all of a user's active tokens.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID.String())
	return err
}
