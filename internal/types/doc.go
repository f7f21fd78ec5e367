// Package types provides shared data structures for the umath services.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool descriptor
//   - Parameter: Tool parameter description
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Intent based service lookup
//
// Example Usage:
//
//	result, err := registry.Execute(ctx, "umath.divide", map[string]interface{}{
//	    "a": 10.0,
//	    "b": 4.0,
//	}, &types.Context{Source: "cli"})
package types
