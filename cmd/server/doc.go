// Package main is the entry point for the workspace engine server.
//
// The engine is the state and layout backbone of a browser development
// workspace: pane visibility and ordering, portal-routed pane content, the
// mobile single-surface state machine, chat/terminal/port lifecycles, and
// the project-scoped persistence boundary.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000 -storage /var/lib/workspace/state.json
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown with a final snapshot write
package main
