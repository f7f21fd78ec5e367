// Package ws provides the WebSocket endpoint for streaming tool execution.
//
// A client keeps one connection open and sends tool calls; every call is
// answered with a result message carrying the client's id, so calls can be
// pipelined.
//
// Message Types (Client → Server):
//   - execute: Run one tool ({"type":"execute","id":"1","tool_id":"umath.add","params":{...}})
//   - batch: Run several tools in order, one result per call, then complete
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - system: Connected banner
//   - result: A types.Result for one call
//   - complete: Batch finished
//   - pong: Ping reply
//   - error: Malformed message or routing failure
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, logger)
//	router.GET("/stream", handler.HandleConnection)
package ws
