// Package ws streams workspace state changes to rendering clients.
//
// Message Types (Client → Server):
//   - ping: Keep-alive ping
//   - state: Request the full read model
//   - swipe: Mobile drag gesture (axis, distance)
//   - double_tap: Mobile secondary-zone toggle
//   - terminal_output: Terminal activity for unread tracking
//
// Message Types (Server → Client):
//   - welcome: Connection established, carries the full state
//   - update: A slice of state changed (kind names which)
//   - state: Full read model on request
//   - pong, error
package ws
