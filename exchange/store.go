package exchange

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Exchange is one user submission paired with its assistant outcome.
// It is created the instant the user submits (so it renders immediately)
// and mutated exactly once, when the request completes or fails.
type Exchange struct {
	ID        string    `json:"id"`
	UserText  string    `json:"user_text"`
	Timestamp time.Time `json:"timestamp"`
	Response  *Response `json:"response,omitempty"`
	Pending   bool      `json:"pending"`
	Err       string    `json:"error,omitempty"`
}

// Store holds the ordered exchanges of the active conversation and owns
// each exchange's submitted→resolved lifecycle. Exchanges resolve by id,
// so several may be in flight at once without affecting one another.
//
// Store is not safe for concurrent use; the bubbletea update loop is the
// single caller.
type Store struct {
	exchanges []Exchange
	index     map[string]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Append creates a pending exchange for userText and returns its id
// synchronously, before any network activity happens.
func (s *Store) Append(userText string) string {
	id := newExchangeID()
	s.index[id] = len(s.exchanges)
	s.exchanges = append(s.exchanges, Exchange{
		ID:        id,
		UserText:  userText,
		Timestamp: time.Now(),
		Pending:   true,
	})
	return id
}

// Resolve attaches a successful (or remote-error) response to the
// exchange with the given id and clears its pending flag. It reports
// false when the id is unknown or the exchange was already resolved;
// a second resolution is a programming error and is ignored rather than
// applied.
func (s *Store) Resolve(id string, r Response) bool {
	i, ok := s.index[id]
	if !ok || !s.exchanges[i].Pending {
		return false
	}
	resp := r
	s.exchanges[i].Response = &resp
	s.exchanges[i].Pending = false
	if r.Status == "error" {
		s.exchanges[i].Err = r.Error
	}
	return true
}

// Fail resolves the exchange with a terminal error message. The attached
// response has status "error" and empty data, so every failure renders
// the same way regardless of its origin.
func (s *Store) Fail(id, message string) bool {
	return s.Resolve(id, ErrorResponse(message))
}

// Get returns the exchange with the given id.
func (s *Store) Get(id string) (Exchange, bool) {
	i, ok := s.index[id]
	if !ok {
		return Exchange{}, false
	}
	return s.exchanges[i], true
}

// Exchanges returns a copy of the ordered exchange list.
func (s *Store) Exchanges() []Exchange {
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// Len returns the number of exchanges.
func (s *Store) Len() int { return len(s.exchanges) }

// Pending returns the number of exchanges still in flight.
func (s *Store) Pending() int {
	n := 0
	for _, e := range s.exchanges {
		if e.Pending {
			n++
		}
	}
	return n
}

// Reset drops all exchanges, equivalent to starting a fresh conversation.
func (s *Store) Reset() {
	s.exchanges = nil
	s.index = make(map[string]int)
}

// Load replaces the store contents with a previously persisted exchange
// list, used when switching to a stored conversation.
func (s *Store) Load(exchanges []Exchange) {
	s.exchanges = make([]Exchange, len(exchanges))
	copy(s.exchanges, exchanges)
	s.index = make(map[string]int, len(exchanges))
	for i, e := range s.exchanges {
		s.index[e.ID] = i
	}
}

// newExchangeID builds a time-and-random id, unique within a session.
func newExchangeID() string {
	b := make([]byte, 4)
	io.ReadFull(rand.Reader, b) //nolint:errcheck
	return fmt.Sprintf("exec_%d_%x", time.Now().UnixNano(), b)
}
