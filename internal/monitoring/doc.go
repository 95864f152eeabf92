// Package monitoring exposes Prometheus metrics for engine state and HTTP
// traffic.
package monitoring
