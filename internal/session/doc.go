// Package session manages chat session and terminal tab lifecycle: ordered
// lists with stable identifiers, an always-resolving active pointer, and
// asynchronous reconciliation with the remote session backend.
package session
