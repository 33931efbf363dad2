package queries

import (
	"context"
	"database/sql"
)

const stepColumns = `id, course_id, title, step_order, text_content, image_url, video_url, is_active, is_end`

func scanStep(row interface{ Scan(...any) error }) (Step, error) {
	var i Step
	err := row.Scan(
		&i.ID,
		&i.CourseID,
		&i.Title,
		&i.StepOrder,
		&i.TextContent,
		&i.ImageUrl,
		&i.VideoUrl,
		&i.IsActive,
		&i.IsEnd,
	)
	return i, err
}

const createStep = `
INSERT INTO steps (course_id, title, step_order, text_content, image_url, video_url, is_active, is_end)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

type CreateStepParams struct {
	CourseID    int64
	Title       string
	StepOrder   int64
	TextContent sql.NullString
	ImageUrl    sql.NullString
	VideoUrl    sql.NullString
	IsActive    bool
	IsEnd       bool
}

func (q *Queries) CreateStep(ctx context.Context, arg CreateStepParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx, createStep,
		arg.CourseID,
		arg.Title,
		arg.StepOrder,
		arg.TextContent,
		arg.ImageUrl,
		arg.VideoUrl,
		arg.IsActive,
		arg.IsEnd,
	).Scan(&id)
	return id, err
}

const listActiveSteps = `
SELECT ` + stepColumns + `
FROM steps
WHERE course_id = ? AND is_active = TRUE
ORDER BY step_order`

func (q *Queries) ListActiveSteps(ctx context.Context, courseID int64) ([]Step, error) {
	rows, err := q.query(ctx, listActiveSteps, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Step
	for rows.Next() {
		i, err := scanStep(rows)
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

const getStepByID = `SELECT ` + stepColumns + ` FROM steps WHERE id = ?`

func (q *Queries) GetStepByID(ctx context.Context, id int64) (Step, error) {
	return scanStep(q.queryRow(ctx, getStepByID, id))
}

const getActiveStepByOrder = `
SELECT ` + stepColumns + `
FROM steps
WHERE course_id = ? AND step_order = ? AND is_active = TRUE`

func (q *Queries) GetActiveStepByOrder(ctx context.Context, courseID, order int64) (Step, error) {
	return scanStep(q.queryRow(ctx, getActiveStepByOrder, courseID, order))
}

const firstActiveStep = listActiveSteps + `
LIMIT 1`

func (q *Queries) FirstActiveStep(ctx context.Context, courseID int64) (Step, error) {
	return scanStep(q.queryRow(ctx, firstActiveStep, courseID))
}
