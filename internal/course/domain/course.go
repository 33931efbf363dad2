package domain

import "github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"

// Course is only visible through the API while IsActive is set.
type Course struct {
	ID          int64
	Title       string
	Description string
	IsActive    bool
}

func (c Course) Response() coursesdk.CourseResponse {
	return coursesdk.CourseResponse{ID: c.ID, Title: c.Title, Description: c.Description}
}

// Step belongs to one course. Order is unique within the course and starts
// at 1.
type Step struct {
	ID          int64
	CourseID    int64
	Title       string
	Order       int
	TextContent string
	ImageURL    string
	VideoURL    string
	IsActive    bool
	IsEnd       bool
}

// Step list statuses.
const (
	StepFinished    = "finished"
	StepNotFinished = "not_finished"
)

// Status is the label shown next to a step in the course outline.
func (s Step) Status() string {
	if s.IsEnd {
		return StepFinished
	}
	return StepNotFinished
}

func (s Step) Response() coursesdk.StepResponse {
	return coursesdk.StepResponse{
		ID:          s.ID,
		CourseID:    s.CourseID,
		Title:       s.Title,
		Order:       s.Order,
		TextContent: s.TextContent,
		ImageURL:    s.ImageURL,
		VideoURL:    s.VideoURL,
		IsEnd:       s.IsEnd,
	}
}

// ListItem is the step as a row of the course outline.
func (s Step) ListItem() coursesdk.StepListItem {
	return coursesdk.StepListItem{
		Title:       s.Title,
		StepImage:   s.ImageURL,
		TextContent: s.TextContent,
		VideoURL:    s.VideoURL,
		Order:       s.Order,
		Status:      s.Status(),
	}
}

// Progress is one user's position in one course. CurrentStepID is zero when
// the step it pointed at has been deleted.
type Progress struct {
	UserID        int64
	CourseID      int64
	CurrentStepID int64
	IsCompleted   bool
}

// ProgressView is a progress row together with the step it points at.
// Step is nil when that step no longer exists.
type ProgressView struct {
	Progress
	Step *Step
}

func (p Progress) Response() coursesdk.ProgressResponse {
	return coursesdk.ProgressResponse{
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		CurrentStepID: p.CurrentStepID,
		IsCompleted:   p.IsCompleted,
	}
}

func (v ProgressView) Response() coursesdk.ProgressResponse {
	resp := v.Progress.Response()
	if v.Step != nil {
		st := v.Step.Response()
		resp.CurrentStep = &st
	}
	return resp
}
