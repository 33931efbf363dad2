package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/service"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/pkg/httpx"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	_ "github.com/gtrskylin3/CourseWebsite/api/course" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	transport    Transport
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store     store.Store
	Resolver  *service.Resolver
	Refresher *service.Refresher
	Accounts  *service.AccountService
	Catalog   *service.CatalogService
	Progress  *service.ProgressService

	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func NewRouter(
	keys *jwtx.KeySet,
	transport Transport,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		transport:    transport,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// Instrument puts an otelhttp span and request metrics around every
// request, outside the logging middleware.
func (r *Router) Instrument(tp trace.TracerProvider, mp metric.MeterProvider) {
	mw := otelhttp.NewMiddleware("course-api",
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithMeterProvider(mp),
		otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
			return req.Method + " " + req.URL.Path
		}),
		otelhttp.WithFilter(func(req *http.Request) bool {
			return req.URL.Path != "/livez" && req.URL.Path != "/readyz" && req.URL.Path != "/metrics"
		}),
	)
	r.middlewares = append([]httpx.Middleware{mw}, r.middlewares...)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCourses()
	r.registerProgress()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Course Delivery API
//	@version		0.1.0
//	@description	Courses made of ordered steps, and each user's progress through them.
//	@description
//	@description				Sessions are RS256 JWTs. Depending on deployment they travel in HttpOnly cookies
//	@description				(access_token, refresh_token) or in the Authorization header.
//	@description				The public key is published at /.well-known/jwks.json.
//
//	@contact.name				CourseWebsite Team
//	@contact.url				https://github.com/gtrskylin3/CourseWebsite
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}". Only used with the header transport.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticated(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, Authn(r.transport, r.Resolver))
}

func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, Authn(r.transport, r.Resolver), RequireAdmin)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Accounts:  r.Accounts,
		Refresher: r.Refresher,
		Transport: r.transport,
	}

	r.Mux.HandleFunc("POST /v1/users/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /v1/auth/login", h.HandleLogin)
	r.Mux.Handle("GET /v1/auth/me", r.authenticated(h.HandleMe))
	r.Mux.Handle("POST /v1/auth/me", r.authenticated(h.HandleMe))
	r.Mux.HandleFunc("GET /v1/auth/logout", h.HandleLogout)

	// The refresh token is the credential here, so no Authn.
	r.Mux.HandleFunc("POST /v1/auth/token/refresh", h.HandleRefresh)
}

func (r *Router) registerCourses() {
	h := &CoursesHandler{Catalog: r.Catalog}

	r.Mux.HandleFunc("GET /v1/courses", h.HandleList)
	r.Mux.HandleFunc("GET /v1/courses/{id}", h.HandleGet)
	r.Mux.HandleFunc("GET /v1/courses/{id}/steps", h.HandleSteps)
	r.Mux.Handle("GET /v1/users/me/courses", r.authenticated(h.HandleMine))
}

func (r *Router) registerProgress() {
	h := &ProgressHandler{Progress: r.Progress}

	r.Mux.Handle("POST /v1/courses/{id}/start", r.authenticated(h.HandleStart))
	r.Mux.Handle("GET /v1/courses/{id}/progress", r.authenticated(h.HandleCurrent))
	r.Mux.Handle("POST /v1/courses/{id}/next", r.authenticated(h.HandleNext))
	r.Mux.Handle("POST /v1/courses/{id}/back", r.authenticated(h.HandleBack))
	r.Mux.Handle("DELETE /v1/courses/{id}/progress", r.authenticated(h.HandleReset))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Catalog: r.Catalog, Accounts: r.Accounts}

	r.Mux.Handle("POST /v1/admin/courses", r.admin(h.HandleCreateCourse))
	r.Mux.Handle("POST /v1/admin/courses/{id}/steps", r.admin(h.HandleCreateStep))
	r.Mux.Handle("GET /v1/admin/users", r.admin(h.HandleListUsers))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json", JWKSHandler(r.keys))
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))

	if r.Metrics != nil {
		r.Mux.Handle("GET /metrics", r.Metrics)
	}
}
