package types

import "time"

// ChatMessage is a single transcript entry.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is a locally owned chat thread. BackendID is attached
// asynchronously once the remote side confirms persistence.
type ChatSession struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	CreatedAt  time.Time     `json:"created_at"`
	LastActive time.Time     `json:"last_active"`
	Messages   []ChatMessage `json:"messages"`
	BackendID  *string       `json:"backend_id,omitempty"`
	Persisted  bool          `json:"persisted"`
}

// RemoteSession is a session as reported by the session backend.
type RemoteSession struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
