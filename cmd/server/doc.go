// Package main is the entry point for the umath HTTP server.
//
// The server exposes the formula catalog as service tools over a REST API:
//   - GET  /, /health
//   - GET  /services[?category=math]
//   - POST /services/discover, /services/execute
//   - GET  /stream (WebSocket)
//   - GET  /metrics (Prometheus)
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev -log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
