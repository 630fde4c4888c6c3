package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes_UnsupportedMethodIsHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/user/register", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)

	// 404 instead of 405 so an unsupported method does not leak the route.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeaderIsEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/unknown", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_TraceIDIsGeneratedWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newHandlerTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
