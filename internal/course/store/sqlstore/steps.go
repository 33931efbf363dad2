package sqlstore

import (
	"context"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

type stepsRepo struct {
	q      *queries.Queries
	mapErr ErrorMapper
}

func (r *stepsRepo) CreateStep(ctx context.Context, s domain.Step) (int64, error) {
	id, err := r.q.CreateStep(ctx, queries.CreateStepParams{
		CourseID:    s.CourseID,
		Title:       s.Title,
		StepOrder:   int64(s.Order),
		TextContent: mapStringNull(s.TextContent),
		ImageUrl:    mapStringNull(s.ImageURL),
		VideoUrl:    mapStringNull(s.VideoURL),
		IsActive:    s.IsActive,
		IsEnd:       s.IsEnd,
	})
	if err != nil {
		return 0, r.mapErr(err)
	}
	return id, nil
}

func (r *stepsRepo) ListActiveSteps(ctx context.Context, courseID int64) ([]domain.Step, error) {
	rows, err := r.q.ListActiveSteps(ctx, courseID)
	if err != nil {
		return nil, err
	}
	steps := make([]domain.Step, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, mapStep(row))
	}
	return steps, nil
}

func (r *stepsRepo) GetStepByID(ctx context.Context, id int64) (domain.Step, error) {
	row, err := r.q.GetStepByID(ctx, id)
	if err != nil {
		return domain.Step{}, mapNotFound(err)
	}
	return mapStep(row), nil
}

func (r *stepsRepo) GetActiveStepByOrder(ctx context.Context, courseID int64, order int) (domain.Step, error) {
	row, err := r.q.GetActiveStepByOrder(ctx, courseID, int64(order))
	if err != nil {
		return domain.Step{}, mapNotFound(err)
	}
	return mapStep(row), nil
}

func (r *stepsRepo) FirstActiveStep(ctx context.Context, courseID int64) (domain.Step, error) {
	row, err := r.q.FirstActiveStep(ctx, courseID)
	if err != nil {
		return domain.Step{}, mapNotFound(err)
	}
	return mapStep(row), nil
}

func mapStep(row queries.Step) domain.Step {
	return domain.Step{
		ID:          row.ID,
		CourseID:    row.CourseID,
		Title:       row.Title,
		Order:       int(row.StepOrder),
		TextContent: mapNullString(row.TextContent),
		ImageURL:    mapNullString(row.ImageUrl),
		VideoURL:    mapNullString(row.VideoUrl),
		IsActive:    row.IsActive,
		IsEnd:       row.IsEnd,
	}
}
