package http

import (
	"errors"
	"net/http"

	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
)

// notFound and conflict keep the service code in the response body so
// clients can tell which resource was meant.
var (
	notFound = map[error]string{
		service.ErrCourseNotFound:   "course not found",
		service.ErrStepNotFound:     "step not found",
		service.ErrNoSteps:          "course has no steps",
		service.ErrProgressNotFound: "course not started",
		service.ErrUserNotFound:     "user not found",
	}
	conflict = map[error]string{
		service.ErrUsernameTaken: "username already taken",
		service.ErrCourseExists:  "a course with this title already exists",
		service.ErrStepExists:    "a step with this order already exists",
	}
)

// toAPIError maps a service error onto the wire. Unknown errors are logged
// and become a bare 500.
func toAPIError(r *http.Request, err error) *coursesdk.APIError {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return coursesdk.NewValidationError(verr.Fields)
	}

	switch {
	case errors.Is(err, service.ErrExpiredCredential):
		return coursesdk.ErrTokenExpired
	case errors.Is(err, httpx.ErrNoCredential), service.IsAuthFailure(err):
		return coursesdk.ErrInvalidToken
	case errors.Is(err, service.ErrInvalidCredentials):
		return coursesdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrForbidden):
		return coursesdk.ErrForbidden
	}

	for sentinel, desc := range notFound {
		if errors.Is(err, sentinel) {
			return withCode(coursesdk.ErrNotFound, sentinel, desc)
		}
	}
	for sentinel, desc := range conflict {
		if errors.Is(err, sentinel) {
			return withCode(coursesdk.ErrConflict, sentinel, desc)
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	return coursesdk.ErrServerError
}

// withCode narrows a generic SDK error to the service sentinel's code.
func withCode(base *coursesdk.APIError, sentinel error, desc string) *coursesdk.APIError {
	e := base.WithDescription(desc)
	e.Code = sentinel.Error()
	return e
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	toAPIError(r, err).WriteError(w)
}

func writeBadBody(w http.ResponseWriter, err error) {
	coursesdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
}
