package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/shm/pkg/idx"
	"github.com/aussiebroadwan/shm/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("bogus"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddlewareLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{Service: "shm", Env: "test", Format: "json", Output: &buf})
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))) })

	var sawLogger bool
	h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = slogx.FromContext(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", nil)
	req.Header.Set(slogx.RequestIDHeader, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, sawLogger)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", rec.Header().Get(slogx.RequestIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "http_request", entry["msg"])
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", entry["req_id"])
	require.Equal(t, "/v1/meetings", entry["path"])
	require.EqualValues(t, http.StatusCreated, entry["status"])
	require.EqualValues(t, 2, entry["bytes"])
	require.Equal(t, "shm", entry["service"])
}

func TestHTTPMiddlewareReplacesUntrustedRequestID(t *testing.T) {
	cases := map[string]string{
		"missing":   "",
		"garbage":   "req-123\r\nX-Injected: yes",
		"oversized": strings.Repeat("A", 8192),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			var handlerLine bytes.Buffer
			h := slogx.HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				slogx.FromContext(r.Context()).Info("inside")
				handlerLine.Write(buf.Bytes())
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/stakeholders", nil)
			if header != "" {
				req.Header.Set(slogx.RequestIDHeader, header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(slogx.RequestIDHeader)
			require.NotEqual(t, header, got)
			_, err := idx.Parse(got)
			require.NoError(t, err)

			var inside map[string]any
			require.NoError(t, json.Unmarshal(handlerLine.Bytes(), &inside))
			require.Equal(t, got, inside["req_id"])
		})
	}
}
