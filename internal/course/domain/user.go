package domain

import "github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"

// User is an account. IsActive and IsAdmin are only ever changed by an
// operator (coursectl), never by the request path.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id PHC string, or bcrypt for imported rows
	IsActive     bool
	IsAdmin      bool
}

// Public strips the secret fields.
func (u User) Public() coursesdk.UserResponse {
	return coursesdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
	}
}
