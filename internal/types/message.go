package types

import "encoding/json"

// WSMessage is the envelope exchanged with rendering clients over the
// websocket stream.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
