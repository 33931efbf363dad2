package coursesdk

import "github.com/gtrskylin3/CourseWebsite/pkg/jwtx"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a snake_case code (e.g., "invalid_token", "course_not_found")
	Error string `json:"error" example:"invalid_token"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description" example:"the access token is missing or invalid"`

	// Details maps request fields to what was wrong with them (400 only)
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Account Types
// ============================================================================

type RegisterRequest struct {
	Username  string `json:"username" example:"alice"`
	Password  string `json:"password" example:"correct-horse"`
	FirstName string `json:"first_name" example:"Alice"`
	LastName  string `json:"last_name" example:"Liddell"`
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

// TokenResponse is returned by login and refresh. RefreshToken is empty
// when a refresh kept the presented refresh token.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type" example:"Bearer"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int64 `json:"expires_in" example:"3600"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"alice"`
	FirstName string `json:"first_name" example:"Alice"`
	LastName  string `json:"last_name" example:"Liddell"`
	IsActive  bool   `json:"is_active" example:"true"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"logged out"`
}

// ============================================================================
// Course Types
// ============================================================================

type CourseResponse struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Intro to Go"`
	Description string `json:"description,omitempty" example:"From zero to goroutines"`
}

type CreateCourseRequest struct {
	Title       string `json:"title" example:"Intro to Go"`
	Description string `json:"description,omitempty" example:"From zero to goroutines"`
}

type StepResponse struct {
	ID          int64  `json:"id" example:"3"`
	CourseID    int64  `json:"course_id" example:"1"`
	Title       string `json:"title" example:"Channels"`
	Order       int    `json:"order" example:"2"`
	TextContent string `json:"text_content,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	IsEnd       bool   `json:"is_end"`
}

type CreateStepRequest struct {
	Title       string `json:"title" example:"Channels"`
	Order       int    `json:"order" example:"2"`
	TextContent string `json:"text_content,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	IsEnd       bool   `json:"is_end"`
}

// StepListItem is one row of a course outline.
type StepListItem struct {
	Title       string `json:"title" example:"Channels"`
	StepImage   string `json:"step_image,omitempty"`
	TextContent string `json:"text_content,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	Order       int    `json:"order" example:"2"`

	// Status is "finished" for end steps and "not_finished" otherwise
	Status string `json:"status" example:"not_finished"`
}

type StepListResponse struct {
	CourseID int64          `json:"course_id" example:"1"`
	Steps    []StepListItem `json:"steps"`
}

// ProgressResponse is a user's position in a course. CurrentStep is absent
// when the step has been removed.
type ProgressResponse struct {
	UserID        int64         `json:"user_id" example:"1"`
	CourseID      int64         `json:"course_id" example:"1"`
	CurrentStepID int64         `json:"current_step_id" example:"3"`
	IsCompleted   bool          `json:"is_completed"`
	CurrentStep   *StepResponse `json:"current_step,omitempty"`
}

// ============================================================================
// Health Check Types
// ============================================================================

type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains detailed health check results (only in readiness checks)
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates whether the signing key is loaded
	Signer string `json:"signer"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse contains the public key set used to verify tokens.
type JWKSResponse jwtx.JWKS
