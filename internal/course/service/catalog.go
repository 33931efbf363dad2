package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// CourseInput is the admin request to create a course.
type CourseInput struct {
	Title       string `json:"title" validate:"required,max=32"`
	Description string `json:"description" validate:"max=150"`
}

// StepInput is the admin request to add a step to a course.
type StepInput struct {
	Title       string `json:"title" validate:"required,max=32"`
	Order       int    `json:"order" validate:"gte=1"`
	TextContent string `json:"text_content"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	IsEnd       bool   `json:"is_end"`
}

// CatalogService serves courses and their steps. Only active rows are ever
// shown.
type CatalogService struct {
	Store store.Store
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.Store.Courses().ListActiveCourses(ctx)
}

func (s *CatalogService) GetCourse(ctx context.Context, id int64) (domain.Course, error) {
	c, err := s.Store.Courses().GetActiveCourse(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Course{}, ErrCourseNotFound
	}
	return c, err
}

// CoursesForUser lists the courses the user has started.
func (s *CatalogService) CoursesForUser(ctx context.Context, userID int64) ([]domain.Course, error) {
	return s.Store.Courses().ListCoursesForUser(ctx, userID)
}

// ListSteps returns the course outline in step order.
func (s *CatalogService) ListSteps(ctx context.Context, courseID int64) ([]coursesdk.StepListItem, error) {
	if _, err := s.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	steps, err := s.Store.Steps().ListActiveSteps(ctx, courseID)
	if err != nil {
		return nil, err
	}

	items := make([]coursesdk.StepListItem, 0, len(steps))
	for _, st := range steps {
		items = append(items, st.ListItem())
	}
	return items, nil
}

func (s *CatalogService) CreateCourse(ctx context.Context, in CourseInput) (domain.Course, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return domain.Course{}, err
	}

	c := domain.Course{Title: in.Title, Description: in.Description, IsActive: true}

	var err error
	c.ID, err = s.Store.Courses().CreateCourse(ctx, c)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Course{}, ErrCourseExists
	}
	if err != nil {
		return domain.Course{}, err
	}

	slogx.FromContext(ctx).Info("course created", slog.Int64("course_id", c.ID), slog.String("title", c.Title))
	return c, nil
}

func (s *CatalogService) CreateStep(ctx context.Context, courseID int64, in StepInput) (domain.Step, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return domain.Step{}, err
	}

	st := domain.Step{
		CourseID:    courseID,
		Title:       in.Title,
		Order:       in.Order,
		TextContent: in.TextContent,
		ImageURL:    in.ImageURL,
		VideoURL:    in.VideoURL,
		IsActive:    true,
		IsEnd:       in.IsEnd,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Courses().GetActiveCourse(ctx, courseID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		id, err := tx.Steps().CreateStep(ctx, st)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrStepExists
		case errors.Is(err, store.ErrNotFound):
			return ErrCourseNotFound
		case err != nil:
			return err
		}
		st.ID = id
		return nil
	})
	if err != nil {
		return domain.Step{}, err
	}

	slogx.FromContext(ctx).Info("step created",
		slog.Int64("course_id", courseID),
		slog.Int64("step_id", st.ID),
		slog.Int("order", st.Order),
	)
	return st, nil
}
