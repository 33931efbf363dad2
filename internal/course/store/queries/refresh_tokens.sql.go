package queries

import "context"

const createConsumedRefreshToken = `
INSERT INTO refresh_tokens (fingerprint, user_id, expires_at)
VALUES (?, ?, ?)`

type CreateConsumedRefreshTokenParams struct {
	Fingerprint string
	UserID      int64
	ExpiresAt   int64 // unix seconds
}

func (q *Queries) CreateConsumedRefreshToken(ctx context.Context, arg CreateConsumedRefreshTokenParams) error {
	_, err := q.exec(ctx, createConsumedRefreshToken, arg.Fingerprint, arg.UserID, arg.ExpiresAt)
	return err
}

const deleteExpiredRefreshTokens = `DELETE FROM refresh_tokens WHERE expires_at <= ?`

func (q *Queries) DeleteExpiredRefreshTokens(ctx context.Context, now int64) (int64, error) {
	return q.execRows(ctx, deleteExpiredRefreshTokens, now)
}
