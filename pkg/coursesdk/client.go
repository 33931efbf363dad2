package coursesdk

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the course service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Cookies is true when tokens travel in cookies held by HTTPClient's jar.
	Cookies bool
}

// NewSDKClient creates a client for the header transport.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewCookieSDKClient creates a client for the cookie transport.
func NewCookieSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil) // never fails without options
	c := NewSDKClient(baseURL)
	c.HTTPClient.Jar = jar
	c.Cookies = true
	return c
}

// Login exchanges a username and password for a Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	tokens, err := c.LoginRaw(ctx, LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(tokens), nil
}

// NewSessionFromTokens wraps tokens obtained elsewhere.
func (c *SDKClient) NewSessionFromTokens(tokens *TokenResponse) *Session {
	s := &Session{client: c}
	s.update(tokens)
	return s
}
