// Package client talks to a running umath server over its REST API.
//
// Client satisfies service.Executor, so batch scripts can run against a
// remote server exactly as they run against an in-process registry.
//
// Built on go-resty/resty:
//   - Retries with backoff on transport errors, 429 and 5xx responses
//   - Pooled keep-alive transport (hashicorp/go-retryablehttp)
//   - Client-side rate limiting (golang.org/x/time/rate)
//   - A circuit breaker that opens after repeated server failures; 4xx
//     responses never trip it
//
// Example Usage:
//
//	c := client.New(client.DefaultConfig("http://localhost:8000"), logger)
//	result, err := c.Execute(ctx, "umath.divide", map[string]interface{}{"a": 1, "b": 2}, nil)
package client
