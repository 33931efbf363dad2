package sqlstore

import (
	"context"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

type refreshTokensRepo struct {
	q      *queries.Queries
	mapErr ErrorMapper
}

func (r *refreshTokensRepo) ConsumeRefreshToken(ctx context.Context, t domain.ConsumedRefreshToken) error {
	err := r.q.CreateConsumedRefreshToken(ctx, queries.CreateConsumedRefreshTokenParams{
		Fingerprint: t.Fingerprint,
		UserID:      t.UserID,
		ExpiresAt:   t.ExpiresAt.Unix(),
	})
	if err != nil {
		return r.mapErr(err)
	}
	return nil
}

func (r *refreshTokensRepo) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRefreshTokens(ctx, now.Unix())
}
