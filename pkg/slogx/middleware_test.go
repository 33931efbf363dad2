package slogx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gtrskylin3/CourseWebsite/pkg/idx"
	"github.com/gtrskylin3/CourseWebsite/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slogx.FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses", nil))

		id := rec.Header().Get(slogx.RequestIDHeader)
		_, err := idx.Parse(id)
		require.NoError(t, err)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		var access map[string]any
		require.NoError(t, json.Unmarshal(lines[1], &access))
		require.Equal(t, "http_request", access["msg"])
		require.Equal(t, id, access["req_id"])
		require.EqualValues(t, http.StatusTeapot, access["status"])
		require.Equal(t, "/courses", access["path"])
	})

	t.Run("keeps valid client id", func(t *testing.T) {
		want := idx.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, want)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, want, rec.Header().Get(slogx.RequestIDHeader))
	})

	t.Run("replaces junk client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(slogx.RequestIDHeader, "evil\nlevel=ERROR")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.NotEqual(t, "evil\nlevel=ERROR", rec.Header().Get(slogx.RequestIDHeader))
	})
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("chatty"))
}

func TestFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, slog.Default(), slogx.FromContext(req.Context()))
}
