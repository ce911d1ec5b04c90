package exchange

import (
	"strings"
	"testing"
)

func TestStore_AppendCreatesPendingImmediately(t *testing.T) {
	s := NewStore()
	id := s.Append("hello")

	if !strings.HasPrefix(id, "exec_") {
		t.Errorf("unexpected id format: %q", id)
	}
	e, ok := s.Get(id)
	if !ok {
		t.Fatal("exchange not found after Append")
	}
	if !e.Pending {
		t.Error("new exchange must be pending")
	}
	if e.UserText != "hello" {
		t.Errorf("want user text %q, got %q", "hello", e.UserText)
	}
	if e.Response != nil {
		t.Error("new exchange must have no response")
	}
	if s.Pending() != 1 {
		t.Errorf("want 1 pending, got %d", s.Pending())
	}
}

func TestStore_ResolveClearsPendingOnce(t *testing.T) {
	s := NewStore()
	id := s.Append("hi")

	first := Response{Status: "success", Data: Data{Decision: &Decision{Response: "hey"}}}
	if !s.Resolve(id, first) {
		t.Fatal("first Resolve must succeed")
	}
	e, _ := s.Get(id)
	if e.Pending {
		t.Error("resolved exchange still pending")
	}
	if e.Response == nil || e.Response.Data.Decision.Response != "hey" {
		t.Error("response not attached")
	}

	// A second resolution is ignored, not applied.
	if s.Resolve(id, ErrorResponse("late")) {
		t.Error("second Resolve must report false")
	}
	e, _ = s.Get(id)
	if e.Response.Status == "error" {
		t.Error("second Resolve overwrote the first")
	}
}

func TestStore_ResolveUnknownID(t *testing.T) {
	s := NewStore()
	if s.Resolve("exec_0_none", Response{}) {
		t.Error("Resolve of unknown id must report false")
	}
}

func TestStore_FailAttachesErrorResponse(t *testing.T) {
	s := NewStore()
	id := s.Append("hi")
	if !s.Fail(id, "Request timed out. Please try again.") {
		t.Fatal("Fail must succeed on a pending exchange")
	}
	e, _ := s.Get(id)
	if e.Pending {
		t.Error("failed exchange still pending")
	}
	if e.Response == nil || e.Response.Status != "error" {
		t.Fatal("failed exchange must carry an error response")
	}
	if e.Err != "Request timed out. Please try again." {
		t.Errorf("unexpected error text: %q", e.Err)
	}
}

func TestStore_ConcurrentExchangesResolveIndependently(t *testing.T) {
	s := NewStore()
	a := s.Append("first")
	b := s.Append("second")
	c := s.Append("third")
	if s.Pending() != 3 {
		t.Fatalf("want 3 pending, got %d", s.Pending())
	}

	// Resolve out of order; each touches only its own exchange.
	s.Fail(b, "boom")
	s.Resolve(c, Response{Status: "success"})

	ea, _ := s.Get(a)
	eb, _ := s.Get(b)
	ec, _ := s.Get(c)
	if !ea.Pending {
		t.Error("first exchange must stay pending")
	}
	if eb.Pending || eb.Err == "" {
		t.Error("second exchange must be failed")
	}
	if ec.Pending || ec.Response == nil {
		t.Error("third exchange must be resolved")
	}
	if s.Pending() != 1 {
		t.Errorf("want 1 pending, got %d", s.Pending())
	}
}

func TestStore_OrderIsSubmissionOrder(t *testing.T) {
	s := NewStore()
	s.Append("one")
	s.Append("two")
	s.Append("three")
	got := s.Exchanges()
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if got[i].UserText != w {
			t.Errorf("position %d: want %q, got %q", i, w, got[i].UserText)
		}
	}
}

func TestStore_LoadRebuildsIndex(t *testing.T) {
	s := NewStore()
	a := s.Append("alpha")
	s.Resolve(a, Response{Status: "success"})
	snapshot := s.Exchanges()

	restored := NewStore()
	restored.Load(snapshot)
	if restored.Len() != 1 {
		t.Fatalf("want 1 exchange, got %d", restored.Len())
	}
	e, ok := restored.Get(a)
	if !ok {
		t.Fatal("id lookup broken after Load")
	}
	if e.UserText != "alpha" {
		t.Errorf("want %q, got %q", "alpha", e.UserText)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	id := s.Append("bye")
	s.Reset()
	if s.Len() != 0 || s.Pending() != 0 {
		t.Error("Reset must drop all exchanges")
	}
	if _, ok := s.Get(id); ok {
		t.Error("old id still resolvable after Reset")
	}
}
