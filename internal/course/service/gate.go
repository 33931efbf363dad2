package service

import "github.com/gtrskylin3/CourseWebsite/internal/course/domain"

// RequireAdmin lets administrators through. It never hits the store; the
// user was loaded by the resolver a moment ago.
func RequireAdmin(u domain.User) error {
	if !u.IsAdmin {
		return ErrForbidden
	}
	return nil
}
