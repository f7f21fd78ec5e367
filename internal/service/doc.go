// Package service provides the service registry that fronts tool providers.
//
// The registry maintains a catalog of providers and handles discovery, tool
// execution and relevance scoring for free-text queries.
//
// Features:
//   - Thread-safe service registration
//   - Category-based filtering
//   - Query-based discovery with scoring
//   - Tool execution with metrics, tracing and debug logging
//   - Service statistics and health
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability and tool name matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry().WithMetrics(metrics).WithLogger(logger)
//	registry.Register(mathProvider)
//	services := registry.Discover("area of a circle", 5)
//	result, err := registry.Execute(ctx, "umath.areaOfCircle", params, appCtx)
package service
