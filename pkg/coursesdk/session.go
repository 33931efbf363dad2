package coursesdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is a logged-in caller. Its methods refresh the access token
// shortly before it expires and keep whatever refresh token the service
// hands back.
type Session struct {
	client *SDKClient

	// refreshMu serializes refreshes so a rotated refresh token is never
	// presented twice.
	refreshMu sync.Mutex

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func (s *Session) update(tokens *TokenResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		s.refreshToken = tokens.RefreshToken
	}

	// Subtract 30 seconds buffer to refresh before actual expiry
	s.expiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - 30*time.Second)
}

// Tokens returns the current access and refresh token.
func (s *Session) Tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

// Refresh forces a token refresh.
func (s *Session) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.refresh(ctx)
}

func (s *Session) refresh(ctx context.Context) error {
	_, refresh := s.Tokens()
	if s.client.Cookies {
		refresh = ""
	} else if refresh == "" {
		return errors.New("coursesdk: session has no refresh token")
	}

	tokens, err := s.client.RefreshRaw(ctx, refresh)
	if err != nil {
		return err
	}
	s.update(tokens)
	return nil
}

// Logout ends the session on the service side as far as the service
// allows and drops the cookies.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/v1/auth/logout", "", nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

// token returns the bearer token to send, refreshing it first when it is
// about to expire. It is empty with the cookie transport.
func (s *Session) token(ctx context.Context) (string, error) {
	if !s.fresh() {
		s.refreshMu.Lock()
		// Another caller may have refreshed while we waited.
		if !s.fresh() {
			if err := s.refresh(ctx); err != nil {
				s.refreshMu.Unlock()
				return "", fmt.Errorf("coursesdk: refresh: %w", err)
			}
		}
		s.refreshMu.Unlock()
	}
	token, _ := s.Tokens()
	if s.client.Cookies {
		return "", nil
	}
	return token, nil
}

func (s *Session) fresh() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Now().Before(s.expiresAt)
}

func (s *Session) call(ctx context.Context, method, path string, body, target any, expectedStatus ...int) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	return s.client.call(ctx, method, path, token, body, target, expectedStatus...)
}

// Me returns the caller.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var u UserResponse
	if err := s.call(ctx, http.MethodGet, "/v1/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// MyCourses lists the courses the caller has started.
func (s *Session) MyCourses(ctx context.Context) ([]CourseResponse, error) {
	var courses []CourseResponse
	if err := s.call(ctx, http.MethodGet, "/v1/users/me/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// StartCourse puts the caller on the first step, or returns the existing
// progress when the course was already started.
func (s *Session) StartCourse(ctx context.Context, courseID int64) (*ProgressResponse, error) {
	return s.progress(ctx, http.MethodPost, courseID, "/start", http.StatusCreated, http.StatusOK)
}

func (s *Session) Progress(ctx context.Context, courseID int64) (*ProgressResponse, error) {
	return s.progress(ctx, http.MethodGet, courseID, "/progress", http.StatusOK)
}

func (s *Session) Next(ctx context.Context, courseID int64) (*ProgressResponse, error) {
	return s.progress(ctx, http.MethodPost, courseID, "/next", http.StatusOK)
}

func (s *Session) Back(ctx context.Context, courseID int64) (*ProgressResponse, error) {
	return s.progress(ctx, http.MethodPost, courseID, "/back", http.StatusOK)
}

// ResetProgress deletes the caller's progress and returns what it was.
func (s *Session) ResetProgress(ctx context.Context, courseID int64) (*ProgressResponse, error) {
	return s.progress(ctx, http.MethodDelete, courseID, "/progress", http.StatusOK)
}

func (s *Session) progress(ctx context.Context, method string, courseID int64, suffix string, expected ...int) (*ProgressResponse, error) {
	var p ProgressResponse
	if err := s.call(ctx, method, fmt.Sprintf("/v1/courses/%d%s", courseID, suffix), nil, &p, expected...); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateCourse requires an administrator.
func (s *Session) CreateCourse(ctx context.Context, req CreateCourseRequest) (*CourseResponse, error) {
	var c CourseResponse
	if err := s.call(ctx, http.MethodPost, "/v1/admin/courses", req, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateStep requires an administrator.
func (s *Session) CreateStep(ctx context.Context, courseID int64, req CreateStepRequest) (*StepResponse, error) {
	var st StepResponse
	path := fmt.Sprintf("/v1/admin/courses/%d/steps", courseID)
	if err := s.call(ctx, http.MethodPost, path, req, &st, http.StatusCreated); err != nil {
		return nil, err
	}
	return &st, nil
}

// ListUsers requires an administrator.
func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var users []UserResponse
	if err := s.call(ctx, http.MethodGet, "/v1/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
