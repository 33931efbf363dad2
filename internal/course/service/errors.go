package service

import "errors"

// Authentication failures. All of them end in a 401.
var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrExpiredCredential     = errors.New("token_expired")
	ErrMalformedCredential   = errors.New("malformed_token")
	ErrInvalidClaims         = errors.New("invalid_claims")
	ErrUnknownOrInactiveUser = errors.New("unknown_or_inactive_user")
	ErrWrongTokenType        = errors.New("wrong_token_type")
	ErrRefreshReused         = errors.New("refresh_token_reused")
	ErrInvalidCredentials    = errors.New("invalid_credentials")
)

var (
	ErrForbidden        = errors.New("forbidden")
	ErrUsernameTaken    = errors.New("username_taken")
	ErrCourseNotFound   = errors.New("course_not_found")
	ErrCourseExists     = errors.New("course_exists")
	ErrStepNotFound     = errors.New("step_not_found")
	ErrStepExists       = errors.New("step_exists")
	ErrNoSteps          = errors.New("course_has_no_steps")
	ErrProgressNotFound = errors.New("progress_not_found")
)

// IsAuthFailure reports whether err means the caller could not be
// identified from the credential it presented.
func IsAuthFailure(err error) bool {
	for _, target := range []error{
		ErrUnauthenticated,
		ErrExpiredCredential,
		ErrMalformedCredential,
		ErrInvalidClaims,
		ErrUnknownOrInactiveUser,
		ErrWrongTokenType,
		ErrRefreshReused,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid_request"
}
