package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id"},
		{name: "no trace ID in request, UUID generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			var ctxLogger *logger.Logger

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogger = logger.FromRequest(r)
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
			assert.Equal(t, http.StatusTeapot, rr.Code)
			require.NotNil(t, ctxLogger)
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(fullServices(), config.Server{}, &logger.Logger{Logger: zerolog.New(&buf)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestWithTraceID_ConcurrentRequestsGetUniqueIDs(t *testing.T) {
	h := newTestHandler()
	middleware := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const n = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
			mu.Lock()
			seen[rr.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

// ---- access log ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "info"},
		{name: "client error", status: http.StatusNotFound, wantLevel: "warn"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(fullServices(), config.Server{}, &logger.Logger{Logger: zerolog.New(&buf)})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("hello"))
			})
			handler := h.withTraceID(h.withLogging(next))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/path?x=1", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/path?x=1", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, float64(5), entry["size"])
			assert.NotEmpty(t, entry["trace_id"])
		})
	}
}

// ---- response writer ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("abc"))
	_, _ = rw.Write([]byte("de"))

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = rw.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, rw.status)
}

// ---- auth ----

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantIdentity string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantIdentity: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			var identity string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, _ = utils.GetIdentityFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/user/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantIdentity, identity)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, float64(http.StatusUnauthorized), decodeJSONMap(t, rr)["status_code"])
			}
		})
	}
}

func decodeJSONMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	return m
}

// ---- CORS ----

func TestWithCORS(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	t.Run("wildcard", func(t *testing.T) {
		h := NewHandler(fullServices(), config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop())
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/product", nil)
		req.Header.Set("Origin", "http://shop.example")
		h.withCORS(next).ServeHTTP(rr, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
		assert.True(t, nextCalled)
	})

	t.Run("listed origin", func(t *testing.T) {
		h := NewHandler(fullServices(), config.Server{CORSAllowedOrigins: []string{"http://a.example"}}, logger.Nop())

		allowed := httptest.NewRequest(http.MethodGet, "/", nil)
		allowed.Header.Set("Origin", "http://a.example")
		rr := httptest.NewRecorder()
		h.withCORS(next).ServeHTTP(rr, allowed)
		assert.Equal(t, "http://a.example", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rr.Header().Get("Vary"))

		other := httptest.NewRequest(http.MethodGet, "/", nil)
		other.Header.Set("Origin", "http://b.example")
		rr = httptest.NewRecorder()
		h.withCORS(next).ServeHTTP(rr, other)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		nextCalled = false
		h := newTestHandler()
		req := httptest.NewRequest(http.MethodOptions, "/product", nil)
		req.Header.Set("Origin", "http://shop.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		h.withCORS(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.False(t, nextCalled)
	})
}

// ---- metrics ----

func TestWithMetrics_ExposedOnMetricsRoute(t *testing.T) {
	services := fullServices()
	router := newTestRouter(t, services)

	do(t, router, http.MethodGet, "/product/abc", "")
	rr := do(t, router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
	assert.True(t, strings.Contains(body, `status="404"`), "404 sample expected, got:\n%s", body)
}
