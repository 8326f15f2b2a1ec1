package core

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = orig })
	return &buf
}

func TestWithRequestID_GeneratesID(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestWithRequestID_KeepsIncomingID(t *testing.T) {
	h := WithRequestID(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestWithLogging_DisabledIsPassthrough(t *testing.T) {
	buf := captureLog(t)
	h := WithLogging(Config{}, NewRouter(Config{}, RuntimeContext{Env: "prod"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestWrap_LogsStatusAndRequestID(t *testing.T) {
	buf := captureLog(t)
	cfg := Config{DebugLogs: true}
	h := Wrap(cfg, NewRouter(cfg, RuntimeContext{Env: "dev"}))

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "📥 GET /nonexistent → 404"), line)
	assert.Contains(t, line, "id=req-1")
}

func TestStatusRecorder_DefaultsTo200(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rec.Status())

	_, _ = rec.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, rec.Status())
}

func TestStatusRecorder_KeepsFirstStatus(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	rec.WriteHeader(http.StatusNotModified)
	rec.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotModified, rec.Status())
}
