package coursesdk

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates an account.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var u UserResponse
	if err := c.call(ctx, http.MethodPost, "/v1/users/register", "", req, &u, http.StatusCreated); err != nil {
		return nil, err
	}
	return &u, nil
}

// LoginRaw performs the login call and returns the token body as is.
func (c *SDKClient) LoginRaw(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var tokens TokenResponse
	if err := c.call(ctx, http.MethodPost, "/v1/auth/login", "", req, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RefreshRaw exchanges a refresh token for new tokens. With the cookie
// transport pass an empty token; the jar supplies it.
func (c *SDKClient) RefreshRaw(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var tokens TokenResponse
	if err := c.call(ctx, http.MethodPost, "/v1/auth/token/refresh", refreshToken, nil, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *SDKClient) ListCourses(ctx context.Context) ([]CourseResponse, error) {
	var courses []CourseResponse
	if err := c.call(ctx, http.MethodGet, "/v1/courses", "", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *SDKClient) GetCourse(ctx context.Context, id int64) (*CourseResponse, error) {
	var course CourseResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/v1/courses/%d", id), "", nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *SDKClient) ListSteps(ctx context.Context, courseID int64) (*StepListResponse, error) {
	var steps StepListResponse
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/v1/courses/%d/steps", courseID), "", nil, &steps); err != nil {
		return nil, err
	}
	return &steps, nil
}

// GetJWKS retrieves the JSON Web Key Set for token verification.
func (c *SDKClient) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var jwks JWKSResponse
	if err := c.call(ctx, http.MethodGet, "/.well-known/jwks.json", "", nil, &jwks); err != nil {
		return nil, err
	}
	return &jwks, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
