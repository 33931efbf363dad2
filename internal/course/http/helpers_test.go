package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	courseapi "github.com/gtrskylin3/CourseWebsite/internal/course/http"
	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/drivers/sqlite"
	"github.com/gtrskylin3/CourseWebsite/pkg/coursesdk"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "https://courses.example.test"
	accessTTL  = 15 * time.Minute
	refreshTTL = 24 * time.Hour
)

// env is the whole HTTP stack on an in-memory store, served by httptest.
type env struct {
	t     *testing.T
	srv   *httptest.Server
	store store.Store
	now   time.Time
	mode  string

	issuer   *service.TokenIssuer
	accounts *service.AccountService
	catalog  *service.CatalogService
}

func newEnv(t *testing.T, mode string) *env {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	e := &env{t: t, store: s, now: time.Now().UTC(), mode: mode}
	clock := func() time.Time { return e.now }

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, Now: clock})
	require.NoError(t, err)
	codec := jwtx.NewCodec(km, accessTTL)
	codec.Now = clock

	e.issuer = &service.TokenIssuer{Codec: codec, Issuer: testIssuer, AccessTTL: accessTTL, RefreshTTL: refreshTTL}
	resolver := &service.Resolver{Codec: codec, Store: s}
	e.accounts = &service.AccountService{Store: s, Hasher: cryptox.NewHasher("pepper"), Issuer: e.issuer}
	e.catalog = &service.CatalogService{Store: s}

	transport, err := courseapi.NewTransport(mode, httpx.CookieOptions{})
	require.NoError(t, err)

	router := courseapi.NewRouter(km.KeySet, transport, "test", s, slogx.Discard())
	router.Resolver = resolver
	router.Refresher = &service.Refresher{Resolver: resolver, Issuer: e.issuer, Store: s, Rotation: true}
	router.Accounts = e.accounts
	router.Catalog = e.catalog
	router.Progress = &service.ProgressService{Store: s}
	router.ApplyRoutes()

	e.srv = httptest.NewServer(router)
	t.Cleanup(e.srv.Close)
	return e
}

func (e *env) advance(d time.Duration) {
	e.now = e.now.Add(d)
}

// client returns an SDK client speaking the env's transport.
func (e *env) client() *coursesdk.SDKClient {
	if e.mode == courseapi.TransportCookie {
		return coursesdk.NewCookieSDKClient(e.srv.URL)
	}
	return coursesdk.NewSDKClient(e.srv.URL)
}

// user registers username with password "secret" and returns its id.
func (e *env) user(username string) int64 {
	e.t.Helper()

	u, err := e.client().Register(context.Background(), coursesdk.RegisterRequest{
		Username:  username,
		Password:  "secret",
		FirstName: "First",
		LastName:  "Last",
	})
	require.NoError(e.t, err)
	return u.ID
}

func (e *env) admin(username string) *coursesdk.Session {
	e.t.Helper()

	e.user(username)
	_, err := e.accounts.SetAdmin(context.Background(), username, true)
	require.NoError(e.t, err)
	return e.login(username)
}

func (e *env) login(username string) *coursesdk.Session {
	e.t.Helper()

	s, err := e.client().Login(context.Background(), username, "secret")
	require.NoError(e.t, err)
	return s
}

// request is one raw call against the server.
type request struct {
	method string
	path   string
	bearer string
	form   url.Values
	json   any
	cookie []*http.Cookie
}

func (e *env) do(req request) *http.Response {
	e.t.Helper()

	var body io.Reader
	var contentType string
	switch {
	case req.form != nil:
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.json != nil:
		buf, err := json.Marshal(req.json)
		require.NoError(e.t, err)
		body = strings.NewReader(string(buf))
		contentType = "application/json"
	}

	r, err := http.NewRequest(req.method, e.srv.URL+req.path, body)
	require.NoError(e.t, err)
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if req.bearer != "" {
		r.Header.Set("Authorization", "Bearer "+req.bearer)
	}
	for _, c := range req.cookie {
		r.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(r)
	require.NoError(e.t, err)
	e.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func loginForm(username string) url.Values {
	return url.Values{"username": {username}, "password": {"secret"}}
}
