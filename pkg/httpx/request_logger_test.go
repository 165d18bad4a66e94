package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dayplan/internal/testutil"
	"github.com/Gunvolt24/dayplan/pkg/httpx"
)

func newLoggedRouter(log *testutil.RecordingLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/locations/suggest", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRequestLogger_LogsMethodPathAndQuery(t *testing.T) {
	log := &testutil.RecordingLogger{}
	r := newLoggedRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/locations/suggest?q=홍대&limit=2", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if len(log.Messages) != 1 {
		t.Fatalf("want exactly one log line, got %d: %v", len(log.Messages), log.Messages)
	}
	line := log.Messages[0]
	for _, part := range []string{"method=GET", "/locations/suggest", "q=홍대", "status=200"} {
		if !strings.Contains(line, part) {
			t.Fatalf("log line missing %q: %q", part, line)
		}
	}
}

func TestRequestLogger_SkipsServiceRoutes(t *testing.T) {
	log := &testutil.RecordingLogger{}
	r := newLoggedRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if len(log.Messages) != 0 {
		t.Fatalf("service routes must not be logged: %v", log.Messages)
	}
}
