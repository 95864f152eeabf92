// Package config provides 12-factor configuration for the workspace engine.
//
// Configuration is loaded from environment variables with sensible defaults;
// CLI flags can override individual values for development.
//
// Environment Variables:
//   - PORT, HOST
//   - SESSION_BACKEND_ADDR, SESSION_BACKEND_ENABLED, INTEGRATIONS_ADDR
//   - SCAN_HOST, SCAN_PORTS, SCAN_TIMEOUT, SCAN_SCHEDULE, SCAN_ENABLED
//   - STORAGE_PATH
//   - HOME_PORT, MESSAGE_TAIL, QUERY_TAIL, AUTOSAVE_INTERVAL
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
