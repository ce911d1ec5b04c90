// Package history owns the set of stored conversations and their durable
// persistence. The registry is mutated by explicit Sync calls from the
// submission and resolution paths; there is no reactive watcher, so the
// ordering of title derivation and persistence is deterministic.
package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/aibeing/being-tui/exchange"
)

// PlaceholderTitle is the title a conversation carries until a real one
// is derived from its first exchange.
const PlaceholderTitle = "New Conversation"

// titleLimit is the maximum title length in runes before truncation.
const titleLimit = 30

// Conversation groups the exchanges of one chat session.
type Conversation struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Exchanges []exchange.Exchange `json:"exchanges"`
	Timestamp time.Time           `json:"timestamp"`
}

// Registry holds all conversations and persists them wholesale after
// every mutation. Persistence failures are swallowed: losing history is
// preferred over crashing the client.
type Registry struct {
	conversations []Conversation
	store         Store
}

// NewRegistry loads the persisted registry from store. A missing or
// corrupted blob yields an empty registry, never an error. A nil store
// disables persistence (used by ephemeral sessions).
func NewRegistry(store Store) *Registry {
	r := &Registry{store: store}
	if store == nil {
		return r
	}
	blob, err := store.Load()
	if err != nil || len(blob) == 0 {
		return r
	}
	var conversations []Conversation
	if err := json.Unmarshal(blob, &conversations); err != nil {
		return r
	}
	r.conversations = conversations
	return r
}

// Sync records the active conversation's current exchange list. When
// activeID is empty a new conversation is created; its id is returned so
// the caller can carry it as session state. Sync derives the title from
// the first exchange once, refreshes the timestamp, and persists.
//
// Syncing an empty exchange list with no active conversation is a no-op:
// a conversation only exists once something was submitted.
func (r *Registry) Sync(activeID string, exchanges []exchange.Exchange) string {
	if activeID == "" && len(exchanges) == 0 {
		return ""
	}

	conv := r.find(activeID)
	if conv == nil {
		activeID = uuid.NewString()
		r.conversations = append(r.conversations, Conversation{
			ID:    activeID,
			Title: PlaceholderTitle,
		})
		conv = &r.conversations[len(r.conversations)-1]
	}

	conv.Exchanges = make([]exchange.Exchange, len(exchanges))
	copy(conv.Exchanges, exchanges)
	if conv.Title == PlaceholderTitle && len(conv.Exchanges) > 0 {
		conv.Title = DeriveTitle(conv.Exchanges[0].UserText)
	}
	conv.Timestamp = time.Now()

	r.persist()
	return activeID
}

// Get returns the conversation with the given id.
func (r *Registry) Get(id string) (Conversation, bool) {
	if c := r.find(id); c != nil {
		return *c, true
	}
	return Conversation{}, false
}

// Conversations returns all conversations, most recently touched first.
func (r *Registry) Conversations() []Conversation {
	out := make([]Conversation, len(r.conversations))
	copy(out, r.conversations)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Len returns the number of stored conversations.
func (r *Registry) Len() int { return len(r.conversations) }

// Delete removes the conversation with the given id and persists. It
// reports whether something was removed; the caller decides whether the
// active conversation pointer must be cleared.
func (r *Registry) Delete(id string) bool {
	for i := range r.conversations {
		if r.conversations[i].ID == id {
			r.conversations = append(r.conversations[:i], r.conversations[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

func (r *Registry) find(id string) *Conversation {
	if id == "" {
		return nil
	}
	for i := range r.conversations {
		if r.conversations[i].ID == id {
			return &r.conversations[i]
		}
	}
	return nil
}

// persist writes the whole registry as one blob. Errors are dropped.
func (r *Registry) persist() {
	if r.store == nil {
		return
	}
	blob, err := json.Marshal(r.conversations)
	if err != nil {
		return
	}
	r.store.Save(blob) //nolint:errcheck
}

// DeriveTitle builds a display title from the first user text: the text
// unchanged when it fits, otherwise the first 30 runes plus an ellipsis.
func DeriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleLimit {
		return text
	}
	return string(runes[:titleLimit]) + "..."
}
