// Package workspace owns the shared state tree behind the development
// workspace: pane layout, portal bindings, the mobile surface, chat
// sessions, terminal tabs, the port registry, and the project-scoped
// collections around them.
//
// All mutation goes through named transition methods on Manager. Each
// transition applies atomically and notifies subscribers with the kind of
// state it touched; subscribers re-read the relevant view. Conflicting
// asynchronous completions resolve last-write-wins per field.
//
// The manager also implements the project boundary (a change of observed
// owner/repo wipes ephemeral state, keeping durable preferences) and the
// persisted snapshot (bounded tails, schema-drift tolerant hydration).
package workspace
