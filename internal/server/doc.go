// Package server wires the workspace engine together and serves it.
//
// Lifecycle:
//  1. Load configuration from environment
//  2. Initialize logger and metrics
//  3. Build the workspace manager over its sub-state machines
//  4. Start background work: hydration, port scanning, integration status,
//     session reconciliation, autosave
//  5. Serve HTTP and WebSocket until a shutdown signal
//  6. Write a final snapshot and drain connections
//
// Hydration runs asynchronously: the engine serves its default empty state
// until the persisted snapshot loads, then applies it all at once.
package server
