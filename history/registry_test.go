package history

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aibeing/being-tui/exchange"
)

func testExchanges(texts ...string) []exchange.Exchange {
	s := exchange.NewStore()
	for _, t := range texts {
		id := s.Append(t)
		s.Resolve(id, exchange.Response{Status: "success"})
	}
	return s.Exchanges()
}

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"short title", "short title"},
		{strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{strings.Repeat("a", 45), strings.Repeat("a", 30) + "..."},
		{strings.Repeat("ü", 45), strings.Repeat("ü", 30) + "..."},
		{"", ""},
	}
	for _, c := range cases {
		if got := DeriveTitle(c.in); got != c.want {
			t.Errorf("DeriveTitle(%d runes): want %q, got %q", len([]rune(c.in)), c.want, got)
		}
	}
}

func TestSync_NoopWithoutActivity(t *testing.T) {
	r := NewRegistry(nil)
	if id := r.Sync("", nil); id != "" {
		t.Errorf("empty sync must not create a conversation, got id %q", id)
	}
	if r.Len() != 0 {
		t.Errorf("want 0 conversations, got %d", r.Len())
	}
}

func TestSync_CreatesAndTitlesConversation(t *testing.T) {
	r := NewRegistry(nil)
	exchanges := testExchanges("What's the weather like in Pune today, and tomorrow?")

	id := r.Sync("", exchanges)
	if id == "" {
		t.Fatal("sync must return the new conversation id")
	}
	conv, ok := r.Get(id)
	if !ok {
		t.Fatal("conversation not retrievable after sync")
	}
	want := "What's the weather like in Pun..."
	if conv.Title != want {
		t.Errorf("want title %q, got %q", want, conv.Title)
	}
	if len(conv.Exchanges) != 1 {
		t.Errorf("want 1 exchange, got %d", len(conv.Exchanges))
	}
	if conv.Timestamp.IsZero() {
		t.Error("sync must set the timestamp")
	}

	// Re-syncing the same conversation keeps its id and title.
	again := r.Sync(id, testExchanges("first", "second"))
	if again != id {
		t.Errorf("sync changed the conversation id: %q -> %q", id, again)
	}
	conv, _ = r.Get(id)
	if conv.Title != want {
		t.Errorf("title must be derived once, got %q", conv.Title)
	}
	if len(conv.Exchanges) != 2 {
		t.Errorf("want 2 exchanges after re-sync, got %d", len(conv.Exchanges))
	}
}

func TestConversations_MostRecentFirst(t *testing.T) {
	r := NewRegistry(nil)
	first := r.Sync("", testExchanges("first"))
	second := r.Sync("", testExchanges("second"))

	all := r.Conversations()
	if len(all) != 2 {
		t.Fatalf("want 2 conversations, got %d", len(all))
	}
	if all[0].ID != second || all[1].ID != first {
		t.Error("conversations must list most recently created first")
	}
}

func TestDelete(t *testing.T) {
	r := NewRegistry(nil)
	id := r.Sync("", testExchanges("hello"))

	if !r.Delete(id) {
		t.Error("delete of existing conversation must report true")
	}
	if r.Delete(id) {
		t.Error("second delete must report false")
	}
	if r.Len() != 0 {
		t.Errorf("want 0 conversations, got %d", r.Len())
	}
}

func TestRegistry_BoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	r := NewRegistry(store)
	id := r.Sync("", testExchanges("persist me"))

	// A fresh registry over the same file sees the conversation.
	store2, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore reopen: %v", err)
	}
	r2 := NewRegistry(store2)
	conv, ok := r2.Get(id)
	if !ok {
		t.Fatal("conversation lost across restart")
	}
	if conv.Title != "persist me" {
		t.Errorf("want title %q, got %q", "persist me", conv.Title)
	}
	if len(conv.Exchanges) != 1 || conv.Exchanges[0].UserText != "persist me" {
		t.Error("exchange content lost across restart")
	}
}

func TestNewRegistry_MissingFileYieldsEmpty(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "absent.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	r := NewRegistry(store)
	if r.Len() != 0 {
		t.Errorf("want empty registry, got %d conversations", r.Len())
	}
}

func TestNewRegistry_CorruptBlobYieldsEmpty(t *testing.T) {
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "corrupt.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	if err := store.Save([]byte("not json at all")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	r := NewRegistry(store)
	if r.Len() != 0 {
		t.Errorf("corrupt blob must degrade to empty, got %d conversations", r.Len())
	}
}
