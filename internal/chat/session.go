package chat

import (
	"sync"
	"time"

	"shackchat/internal/cart"
	"shackchat/internal/llm"
)

// ChatMessage is one entry in a session's conversation history
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the explicit per-conversation context: one cart, one history,
// and an optional user-supplied API key that takes precedence over the
// process-wide one. Sessions never share state with each other; the router
// mutates a session only through the reference passed into it.
type Session struct {
	ID        string
	Cart      *cart.Cart
	CreatedAt time.Time

	mu       sync.Mutex
	history  []ChatMessage
	apiKey   string
	provider llm.Provider
}

// NewSession creates a new session with an empty cart
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Cart:      cart.New(),
		CreatedAt: time.Now(),
	}
}

// Acquire serializes message processing for the session: one request is
// fully handled before the next is accepted.
func (s *Session) Acquire() {
	s.mu.Lock()
}

// Release ends the current turn
func (s *Session) Release() {
	s.mu.Unlock()
}

// SetAPIKey stores a user-supplied API key, dropping any provider built for
// the previous key.
func (s *Session) SetAPIKey(key string) {
	s.apiKey = key
	s.provider = nil
}

// APIKey returns the user-supplied API key, if any
func (s *Session) APIKey() string {
	return s.apiKey
}

// AddMessage appends one message to the conversation history
func (s *Session) AddMessage(role, content string) {
	s.history = append(s.history, ChatMessage{Role: role, Content: content})
}

// History returns a copy of the conversation history
func (s *Session) History() []ChatMessage {
	out := make([]ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}
