package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// ProgressService moves a user through a course one step at a time.
type ProgressService struct {
	Store store.Store
}

// Start puts the user on the first active step. started is false when the
// user already had progress in the course; the existing progress is
// returned untouched.
func (s *ProgressService) Start(ctx context.Context, userID, courseID int64) (view domain.ProgressView, started bool, err error) {
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Courses().GetActiveCourse(ctx, courseID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		existing, err := tx.Progress().GetProgress(ctx, userID, courseID)
		if err == nil {
			view, err = withStep(ctx, tx, existing)
			return err
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		first, err := tx.Steps().FirstActiveStep(ctx, courseID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoSteps
		}
		if err != nil {
			return err
		}

		p := domain.Progress{
			UserID:        userID,
			CourseID:      courseID,
			CurrentStepID: first.ID,
			IsCompleted:   first.IsEnd,
		}
		if err := tx.Progress().CreateProgress(ctx, p); err != nil {
			return err
		}

		view = domain.ProgressView{Progress: p, Step: &first}
		started = true
		return nil
	})
	if err != nil {
		return domain.ProgressView{}, false, err
	}

	if started {
		slogx.FromContext(ctx).Info("course started",
			slog.Int64("course_id", courseID),
			slog.Int64("step_id", view.CurrentStepID),
		)
	}
	return view, started, nil
}

// Current returns where the user is in the course.
func (s *ProgressService) Current(ctx context.Context, userID, courseID int64) (domain.ProgressView, error) {
	p, err := s.Store.Progress().GetProgress(ctx, userID, courseID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProgressView{}, ErrProgressNotFound
	}
	if err != nil {
		return domain.ProgressView{}, err
	}
	return withStep(ctx, s.Store, p)
}

// Next moves to the step with the following order. Reaching an end step
// marks the course completed; there is nothing after the last step.
func (s *ProgressService) Next(ctx context.Context, userID, courseID int64) (domain.ProgressView, error) {
	return s.move(ctx, userID, courseID, func(order int) int { return order + 1 })
}

// Back moves to the step with the preceding order, staying on order 1.
func (s *ProgressService) Back(ctx context.Context, userID, courseID int64) (domain.ProgressView, error) {
	return s.move(ctx, userID, courseID, func(order int) int { return max(order-1, 1) })
}

// Reset forgets the user's progress in the course.
func (s *ProgressService) Reset(ctx context.Context, userID, courseID int64) (domain.Progress, error) {
	var p domain.Progress
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		p, err = tx.Progress().GetProgress(ctx, userID, courseID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrProgressNotFound
		}
		if err != nil {
			return err
		}

		err = tx.Progress().DeleteProgress(ctx, userID, courseID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrProgressNotFound
		}
		return err
	})
	if err != nil {
		return domain.Progress{}, err
	}

	slogx.FromContext(ctx).Info("course progress reset", slog.Int64("course_id", courseID))
	return p, nil
}

func (s *ProgressService) move(ctx context.Context, userID, courseID int64, target func(order int) int) (domain.ProgressView, error) {
	var view domain.ProgressView
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Progress().GetProgress(ctx, userID, courseID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrProgressNotFound
		}
		if err != nil {
			return err
		}
		if p.CurrentStepID == 0 {
			return ErrStepNotFound
		}

		cur, err := tx.Steps().GetStepByID(ctx, p.CurrentStepID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrStepNotFound
		}
		if err != nil {
			return err
		}

		dest, err := tx.Steps().GetActiveStepByOrder(ctx, courseID, target(cur.Order))
		if errors.Is(err, store.ErrNotFound) {
			return ErrStepNotFound
		}
		if err != nil {
			return err
		}

		p.CurrentStepID = dest.ID
		p.IsCompleted = p.IsCompleted || dest.IsEnd
		if err := tx.Progress().UpdateProgress(ctx, p); err != nil {
			return err
		}

		view = domain.ProgressView{Progress: p, Step: &dest}
		return nil
	})
	if err != nil {
		return domain.ProgressView{}, err
	}

	slogx.FromContext(ctx).Debug("course step changed",
		slog.Int64("course_id", courseID),
		slog.Int64("step_id", view.CurrentStepID),
	)
	return view, nil
}

// stepReader is the slice of store.Store that withStep needs. Both the root
// store and a Tx satisfy it.
type stepReader interface {
	Steps() store.Steps
}

func withStep(ctx context.Context, r stepReader, p domain.Progress) (domain.ProgressView, error) {
	view := domain.ProgressView{Progress: p}
	if p.CurrentStepID == 0 {
		return view, nil
	}

	st, err := r.Steps().GetStepByID(ctx, p.CurrentStepID)
	if errors.Is(err, store.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return domain.ProgressView{}, err
	}
	view.Step = &st
	return view, nil
}
