// Package client implements the engine's remote collaborators: the session
// backend and the integration status source. Both degrade on failure rather
// than surface fatal errors.
package client
