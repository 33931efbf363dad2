package sqlstore

import (
	"context"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

type progressRepo struct {
	q      *queries.Queries
	mapErr ErrorMapper
}

func (r *progressRepo) GetProgress(ctx context.Context, userID, courseID int64) (domain.Progress, error) {
	row, err := r.q.GetProgress(ctx, userID, courseID)
	if err != nil {
		return domain.Progress{}, mapNotFound(err)
	}
	return domain.Progress{
		UserID:        row.UserID,
		CourseID:      row.CourseID,
		CurrentStepID: row.CurrentStepID.Int64,
		IsCompleted:   row.IsCompleted,
	}, nil
}

func (r *progressRepo) CreateProgress(ctx context.Context, p domain.Progress) error {
	err := r.q.CreateProgress(ctx, toProgressRow(p))
	if err != nil {
		return r.mapErr(err)
	}
	return nil
}

func (r *progressRepo) UpdateProgress(ctx context.Context, p domain.Progress) error {
	return mustAffect(r.q.UpdateProgress(ctx, toProgressRow(p)))
}

func (r *progressRepo) DeleteProgress(ctx context.Context, userID, courseID int64) error {
	return mustAffect(r.q.DeleteProgress(ctx, userID, courseID))
}

func toProgressRow(p domain.Progress) queries.UserCourseProgress {
	return queries.UserCourseProgress{
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		CurrentStepID: queries.NullStepID(p.CurrentStepID),
		IsCompleted:   p.IsCompleted,
	}
}
