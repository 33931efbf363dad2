package queries

import (
	"context"
	"database/sql"
)

const getProgress = `
SELECT user_id, course_id, current_step_id, is_completed
FROM user_course_progress
WHERE user_id = ? AND course_id = ?`

func (q *Queries) GetProgress(ctx context.Context, userID, courseID int64) (UserCourseProgress, error) {
	var i UserCourseProgress
	err := q.queryRow(ctx, getProgress, userID, courseID).Scan(
		&i.UserID,
		&i.CourseID,
		&i.CurrentStepID,
		&i.IsCompleted,
	)
	return i, err
}

const createProgress = `
INSERT INTO user_course_progress (user_id, course_id, current_step_id, is_completed)
VALUES (?, ?, ?, ?)`

func (q *Queries) CreateProgress(ctx context.Context, arg UserCourseProgress) error {
	_, err := q.exec(ctx, createProgress, arg.UserID, arg.CourseID, arg.CurrentStepID, arg.IsCompleted)
	return err
}

const updateProgress = `
UPDATE user_course_progress
SET current_step_id = ?, is_completed = ?
WHERE user_id = ? AND course_id = ?`

func (q *Queries) UpdateProgress(ctx context.Context, arg UserCourseProgress) (int64, error) {
	return q.execRows(ctx, updateProgress, arg.CurrentStepID, arg.IsCompleted, arg.UserID, arg.CourseID)
}

const deleteProgress = `DELETE FROM user_course_progress WHERE user_id = ? AND course_id = ?`

func (q *Queries) DeleteProgress(ctx context.Context, userID, courseID int64) (int64, error) {
	return q.execRows(ctx, deleteProgress, userID, courseID)
}

// NullStepID maps a zero id to NULL.
func NullStepID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
