package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
)

func TestAttachTraceContextPropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var got *ctxutil.TraceData
	r.GET("/x", func(c *gin.Context) {
		got = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got == nil || got.RequestID != "req-123" || got.TraceID == "" {
		t.Fatalf("trace data: %+v", got)
	}
	if rec.Header().Get(headerRequestID) != "req-123" {
		t.Fatalf("response request id: got=%q", rec.Header().Get(headerRequestID))
	}
	if rec.Header().Get(headerTraceID) != got.TraceID {
		t.Fatalf("response trace id: want=%q got=%q", got.TraceID, rec.Header().Get(headerTraceID))
	}
}

func TestAttachTraceContextHonorsCallerTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerTraceID, "trace-abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(headerTraceID); got != "trace-abc" {
		t.Fatalf("trace id: want=trace-abc got=%q", got)
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Fatalf("request id: expected a generated id")
	}
}
