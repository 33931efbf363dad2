package queries

import "database/sql"

type User struct {
	ID             int64
	Username       string
	FirstName      string
	LastName       string
	HashedPassword string
	IsActive       bool
	IsAdmin        bool
}

type Course struct {
	ID          int64
	Title       string
	Description sql.NullString
	IsActive    bool
}

type Step struct {
	ID          int64
	CourseID    int64
	Title       string
	StepOrder   int64
	TextContent sql.NullString
	ImageUrl    sql.NullString
	VideoUrl    sql.NullString
	IsActive    bool
	IsEnd       bool
}

type UserCourseProgress struct {
	UserID        int64
	CourseID      int64
	CurrentStepID sql.NullInt64
	IsCompleted   bool
}
