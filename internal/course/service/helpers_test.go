package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gtrskylin3/CourseWebsite/internal/course/domain"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/drivers/sqlite"
	"github.com/gtrskylin3/CourseWebsite/pkg/cryptox"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://courses.example.test"

// harness wires the services the way app.New does, on an in-memory store
// and a clock the test controls.
type harness struct {
	t     *testing.T
	store store.Store
	now   time.Time

	metrics   *recordingMetrics
	codec     *jwtx.Codec
	issuer    *TokenIssuer
	resolver  *Resolver
	refresher *Refresher
	accounts  *AccountService
	catalog   *CatalogService
	progress  *ProgressService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	h := &harness{
		t:       t,
		store:   s,
		now:     time.Now().UTC(),
		metrics: &recordingMetrics{},
	}
	clock := func() time.Time { return h.now }

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: testIssuer, Now: clock})
	require.NoError(t, err)

	h.codec = jwtx.NewCodec(km, jwtx.DefaultAccessTokenTTL)
	h.codec.Now = clock

	h.issuer = &TokenIssuer{
		Codec:      h.codec,
		Issuer:     testIssuer,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		Metrics:    h.metrics,
	}
	h.resolver = &Resolver{Codec: h.codec, Store: s, Metrics: h.metrics}
	h.refresher = &Refresher{Resolver: h.resolver, Issuer: h.issuer, Store: s, Rotation: true}
	h.accounts = &AccountService{Store: s, Hasher: cryptox.NewHasher("pepper"), Issuer: h.issuer}
	h.catalog = &CatalogService{Store: s}
	h.progress = &ProgressService{Store: s}
	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
}

// register creates an active user with password "secret".
func (h *harness) register(username string) domain.User {
	h.t.Helper()

	u, err := h.accounts.Register(context.Background(), RegisterInput{
		Username:  username,
		Password:  "secret",
		FirstName: "First",
		LastName:  "Last",
	})
	require.NoError(h.t, err)
	return u
}

// course creates an active course with the given number of steps; the last
// one is an end step.
func (h *harness) course(title string, steps int) domain.Course {
	h.t.Helper()
	ctx := context.Background()

	c, err := h.catalog.CreateCourse(ctx, CourseInput{Title: title, Description: "about " + title})
	require.NoError(h.t, err)

	for i := 1; i <= steps; i++ {
		_, err := h.catalog.CreateStep(ctx, c.ID, StepInput{
			Title: title + " step",
			Order: i,
			IsEnd: i == steps,
		})
		require.NoError(h.t, err)
	}
	return c
}

type recordingMetrics struct {
	mu       sync.Mutex
	failures []string
	issued   []string
}

func (m *recordingMetrics) RecordFailure(_ context.Context, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, kind)
}

func (m *recordingMetrics) RecordIssued(_ context.Context, tokenType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.issued = append(m.issued, tokenType)
}

func (m *recordingMetrics) lastFailure() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.failures) == 0 {
		return ""
	}
	return m.failures[len(m.failures)-1]
}

func (m *recordingMetrics) issuedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.issued)
}
