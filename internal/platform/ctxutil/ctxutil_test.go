package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestViewerIDAnonymous(t *testing.T) {
	if got := ViewerID(context.Background()); got != nil {
		t.Fatalf("ViewerID: want=nil got=%v", *got)
	}
	ctx := WithRequestData(context.Background(), &RequestData{})
	if got := ViewerID(ctx); got != nil {
		t.Fatalf("ViewerID(nil uuid): want=nil got=%v", *got)
	}
}

func TestViewerIDAuthenticated(t *testing.T) {
	id := uuid.New()
	ctx := WithRequestData(context.Background(), &RequestData{UserID: id, Username: "jake"})
	got := ViewerID(ctx)
	if got == nil || *got != id {
		t.Fatalf("ViewerID: want=%s got=%v", id, got)
	}
}

func TestTraceDataRoundTripAndNilContext(t *testing.T) {
	var none context.Context
	if GetTraceData(none) != nil {
		t.Fatalf("GetTraceData(nil): want=nil")
	}
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	if td := GetTraceData(ctx); td == nil || td.TraceID != "t" || td.RequestID != "r" {
		t.Fatalf("GetTraceData: got=%+v", td)
	}
	if GetRequestData(ctx) != nil {
		t.Fatalf("GetRequestData: want=nil on trace-only ctx")
	}
}
