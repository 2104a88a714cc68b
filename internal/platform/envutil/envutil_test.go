package envutil

import (
	"testing"
	"time"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "nope")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("Int: want=7 got=%d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", " 12 ")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 12 {
		t.Fatalf("Int: want=12 got=%d", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BOOL", "off")
	if Bool("ENVUTIL_TEST_BOOL", true) {
		t.Fatalf("Bool(off): want=false")
	}
	t.Setenv("ENVUTIL_TEST_BOOL", "maybe")
	if !Bool("ENVUTIL_TEST_BOOL", true) {
		t.Fatalf("Bool(maybe): want default true")
	}
}

func TestSeconds(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_TTL", "90")
	if got := Seconds("ENVUTIL_TEST_TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("Seconds: want=90s got=%s", got)
	}
	t.Setenv("ENVUTIL_TEST_TTL", "-1")
	if got := Seconds("ENVUTIL_TEST_TTL", time.Minute); got != time.Minute {
		t.Fatalf("Seconds(-1): want=1m got=%s", got)
	}
}

func TestList(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_LIST", "a, ,b,")
	got := List("ENVUTIL_TEST_LIST", nil)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("List: got=%v", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_FLOAT", "0.25")
	if got := Float("ENVUTIL_TEST_FLOAT", 1); got != 0.25 {
		t.Fatalf("Float: want=0.25 got=%v", got)
	}
	t.Setenv("ENVUTIL_TEST_FLOAT", "x")
	if got := Float("ENVUTIL_TEST_FLOAT", 1); got != 1 {
		t.Fatalf("Float(garbage): want=1 got=%v", got)
	}
}
