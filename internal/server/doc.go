// Package server wires the formula catalog into an HTTP server.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (request id, access log, tracing, metrics, CORS, rate limiting, recovery)
//   - WebSocket streaming of tool calls on /stream
//   - Service provider registration
//   - Prometheus exposition on /metrics
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Register service providers
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, nil)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
