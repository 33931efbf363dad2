package store

import (
	"context"
	"errors"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so that a Tx hands out the same
// repositories bound to the transaction, and nobody opens a transaction
// within a transaction by accident.
type Store interface {
	Users() Users
	Courses() Courses
	Steps() Steps
	Progress() Progress
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// Inside fn only use the repositories of tx: an in-memory sqlite store
	// has a single connection and the outer store would block on it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID is called on every authenticated request.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername is used by login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user and returns its id. ErrAlreadyExists
	// when the username is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// ListActiveUsers returns active users ordered by id.
	ListActiveUsers(ctx context.Context) ([]domain.User, error)

	SetUserActive(ctx context.Context, id int64, active bool) error
	SetUserAdmin(ctx context.Context, id int64, admin bool) error

	// UpdatePasswordHash replaces a legacy hash after a successful login.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type Courses interface {
	// CreateCourse returns the new id. ErrAlreadyExists on a duplicate title.
	CreateCourse(ctx context.Context, c domain.Course) (int64, error)

	GetActiveCourse(ctx context.Context, id int64) (domain.Course, error)
	ListActiveCourses(ctx context.Context) ([]domain.Course, error)

	// ListCoursesForUser returns the courses the user has progress in.
	ListCoursesForUser(ctx context.Context, userID int64) ([]domain.Course, error)
}

type Steps interface {
	// CreateStep returns the new id. ErrAlreadyExists when the order is
	// already taken in that course.
	CreateStep(ctx context.Context, s domain.Step) (int64, error)

	// ListActiveSteps returns the course's active steps by ascending order.
	ListActiveSteps(ctx context.Context, courseID int64) ([]domain.Step, error)

	GetStepByID(ctx context.Context, id int64) (domain.Step, error)
	GetActiveStepByOrder(ctx context.Context, courseID int64, order int) (domain.Step, error)

	// FirstActiveStep returns the active step with the lowest order.
	FirstActiveStep(ctx context.Context, courseID int64) (domain.Step, error)
}

type Progress interface {
	GetProgress(ctx context.Context, userID, courseID int64) (domain.Progress, error)

	// CreateProgress fails with ErrAlreadyExists when the user already
	// started the course.
	CreateProgress(ctx context.Context, p domain.Progress) error

	// UpdateProgress moves the pointer and sets the completion flag.
	UpdateProgress(ctx context.Context, p domain.Progress) error

	// DeleteProgress returns ErrNotFound when there was nothing to delete.
	DeleteProgress(ctx context.Context, userID, courseID int64) error
}

type RefreshTokens interface {
	// ConsumeRefreshToken records a spent refresh token. ErrAlreadyExists
	// means it had been spent before.
	ConsumeRefreshToken(ctx context.Context, t domain.ConsumedRefreshToken) error

	// DeleteExpiredRefreshTokens is housekeeping; it returns the number of
	// records removed.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
