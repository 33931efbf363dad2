package queries

import (
	"context"
	"database/sql"
)

const courseColumns = `id, title, description, is_active`

func scanCourse(row interface{ Scan(...any) error }) (Course, error) {
	var i Course
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.IsActive)
	return i, err
}

func collectCourses(rows *sql.Rows) ([]Course, error) {
	defer rows.Close()

	var items []Course
	for rows.Next() {
		i, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createCourse = `
INSERT INTO courses (title, description, is_active)
VALUES (?, ?, ?)
RETURNING id`

type CreateCourseParams struct {
	Title       string
	Description sql.NullString
	IsActive    bool
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createCourse, arg.Title, arg.Description, arg.IsActive).Scan(&id)
	return id, err
}

const getActiveCourse = `SELECT ` + courseColumns + ` FROM courses WHERE id = ? AND is_active = TRUE`

func (q *Queries) GetActiveCourse(ctx context.Context, id int64) (Course, error) {
	return scanCourse(q.queryRow(ctx, getActiveCourse, id))
}

const listActiveCourses = `SELECT ` + courseColumns + ` FROM courses WHERE is_active = TRUE ORDER BY id`

func (q *Queries) ListActiveCourses(ctx context.Context) ([]Course, error) {
	rows, err := q.query(ctx, listActiveCourses)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

const listCoursesForUser = `
SELECT c.id, c.title, c.description, c.is_active
FROM courses c
JOIN user_course_progress p ON p.course_id = c.id
WHERE p.user_id = ? AND c.is_active = TRUE
ORDER BY c.id`

func (q *Queries) ListCoursesForUser(ctx context.Context, userID int64) ([]Course, error) {
	rows, err := q.query(ctx, listCoursesForUser, userID)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}
