package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jankohoener/asknow/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "incoming-trace-id")
	rec := httptest.NewRecorder()
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace-id", rec.Header().Get(traceIDHeader))
}
