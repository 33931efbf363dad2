package sqlstore

import (
	"context"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

type coursesRepo struct {
	q      *queries.Queries
	mapErr ErrorMapper
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) (int64, error) {
	id, err := r.q.CreateCourse(ctx, queries.CreateCourseParams{
		Title:       c.Title,
		Description: mapStringNull(c.Description),
		IsActive:    c.IsActive,
	})
	if err != nil {
		return 0, r.mapErr(err)
	}
	return id, nil
}

func (r *coursesRepo) GetActiveCourse(ctx context.Context, id int64) (domain.Course, error) {
	row, err := r.q.GetActiveCourse(ctx, id)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return mapCourse(row), nil
}

func (r *coursesRepo) ListActiveCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.q.ListActiveCourses(ctx)
	if err != nil {
		return nil, err
	}
	return mapCourses(rows), nil
}

func (r *coursesRepo) ListCoursesForUser(ctx context.Context, userID int64) ([]domain.Course, error) {
	rows, err := r.q.ListCoursesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapCourses(rows), nil
}

func mapCourses(rows []queries.Course) []domain.Course {
	out := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCourse(row))
	}
	return out
}

func mapCourse(row queries.Course) domain.Course {
	return domain.Course{
		ID:          row.ID,
		Title:       row.Title,
		Description: mapNullString(row.Description),
		IsActive:    row.IsActive,
	}
}
