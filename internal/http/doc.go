// Package http provides the HTTP handlers for the formula catalog REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//
// Tool failures (bad arguments, division by zero) come back as a
// types.Result with success=false and HTTP 200. Malformed requests get 400,
// unknown services 404.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
