package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Liddell",
		PasswordHash: "hash",
		IsActive:     true,
	})
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = s.Users().CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.True(t, u.IsActive)
	require.False(t, u.IsAdmin)

	_, err = s.Users().GetUserByID(ctx, id+100)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Users().SetUserAdmin(ctx, id, true))
	require.NoError(t, s.Users().SetUserActive(ctx, id, false))
	require.ErrorIs(t, s.Users().SetUserActive(ctx, id+100, false), store.ErrNotFound)

	u, err = s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, u.IsAdmin)
	require.False(t, u.IsActive)

	active, err := s.Users().ListActiveUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, active)

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, id, "new-hash"))
	u, err = s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new-hash", u.PasswordHash)
}

func TestCoursesStepsProgress(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	userID, err := s.Users().CreateUser(ctx, domain.User{Username: "bob", PasswordHash: "h", IsActive: true})
	require.NoError(t, err)

	courseID, err := s.Courses().CreateCourse(ctx, domain.Course{Title: "Go", Description: "basics", IsActive: true})
	require.NoError(t, err)
	_, err = s.Courses().CreateCourse(ctx, domain.Course{Title: "Go", IsActive: true})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	hiddenID, err := s.Courses().CreateCourse(ctx, domain.Course{Title: "Hidden"})
	require.NoError(t, err)
	_, err = s.Courses().GetActiveCourse(ctx, hiddenID)
	require.ErrorIs(t, err, store.ErrNotFound)

	courses, err := s.Courses().ListActiveCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "basics", courses[0].Description)

	// Insert out of order to check ordering.
	for _, order := range []int{2, 1, 3} {
		_, err := s.Steps().CreateStep(ctx, domain.Step{
			CourseID: courseID,
			Title:    "step",
			Order:    order,
			IsActive: true,
			IsEnd:    order == 3,
		})
		require.NoError(t, err)
	}
	_, err = s.Steps().CreateStep(ctx, domain.Step{CourseID: courseID, Title: "dup", Order: 2, IsActive: true})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	steps, err := s.Steps().ListActiveSteps(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	require.Equal(t, []int{1, 2, 3}, []int{steps[0].Order, steps[1].Order, steps[2].Order})
	require.True(t, steps[2].IsEnd)

	first, err := s.Steps().FirstActiveStep(ctx, courseID)
	require.NoError(t, err)
	require.Equal(t, 1, first.Order)

	_, err = s.Steps().GetActiveStepByOrder(ctx, courseID, 4)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Steps().FirstActiveStep(ctx, hiddenID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Progress
	p := domain.Progress{UserID: userID, CourseID: courseID, CurrentStepID: first.ID}
	require.NoError(t, s.Progress().CreateProgress(ctx, p))
	require.ErrorIs(t, s.Progress().CreateProgress(ctx, p), store.ErrAlreadyExists)

	p.CurrentStepID = steps[2].ID
	p.IsCompleted = true
	require.NoError(t, s.Progress().UpdateProgress(ctx, p))

	got, err := s.Progress().GetProgress(ctx, userID, courseID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	mine, err := s.Courses().ListCoursesForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, courseID, mine[0].ID)

	require.NoError(t, s.Progress().DeleteProgress(ctx, userID, courseID))
	require.ErrorIs(t, s.Progress().DeleteProgress(ctx, userID, courseID), store.ErrNotFound)
	_, err = s.Progress().GetProgress(ctx, userID, courseID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	userID, err := s.Users().CreateUser(ctx, domain.User{Username: "carol", PasswordHash: "h", IsActive: true})
	require.NoError(t, err)

	now := time.Unix(1_700_000_000, 0)
	old := domain.ConsumedRefreshToken{Fingerprint: "fp-old", UserID: userID, ExpiresAt: now.Add(-time.Minute)}
	fresh := domain.ConsumedRefreshToken{Fingerprint: "fp-new", UserID: userID, ExpiresAt: now.Add(time.Hour)}

	require.NoError(t, s.RefreshTokens().ConsumeRefreshToken(ctx, old))
	require.NoError(t, s.RefreshTokens().ConsumeRefreshToken(ctx, fresh))
	require.ErrorIs(t, s.RefreshTokens().ConsumeRefreshToken(ctx, fresh), store.ErrAlreadyExists)

	n, err := s.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	// Only the expired record is gone.
	require.NoError(t, s.RefreshTokens().ConsumeRefreshToken(ctx, old))
	require.ErrorIs(t, s.RefreshTokens().ConsumeRefreshToken(ctx, fresh), store.ErrAlreadyExists)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "dave", PasswordHash: "h"})
		require.NoError(t, err)
		_, err = tx.Users().CreateUser(ctx, domain.User{Username: "dave", PasswordHash: "h"})
		return err
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Rolled back as a whole.
	_, err = s.Users().GetUserByUsername(ctx, "dave")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Username: "erin", PasswordHash: "h"})
		return err
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByUsername(ctx, "erin")
	require.NoError(t, err)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "course.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(ctx))

	_, err = s.Users().CreateUser(ctx, domain.User{Username: "frank", PasswordHash: "h", IsActive: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopen: data survives and migrations are a no-op.
	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations())

	_, err = s.Users().GetUserByUsername(ctx, "frank")
	require.NoError(t, err)
}
