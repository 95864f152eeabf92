// Package http exposes the workspace engine's state and transitions over
// REST. Handlers are thin: each binds a request, calls one transition on the
// workspace manager and returns the relevant read model. Cap rejections are
// reported in the response body, not as HTTP errors.
package http
