/*
Package monitoring provides Prometheus metrics for the HTTP API and tool
executions.

Metrics are registered against an explicit *prometheus.Registry so tests and
multiple servers in one process do not collide on the default registerer.

# Usage

	metrics := monitoring.NewMetrics(nil)
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "umath", "umath.divide")
	// ... execute tool ...
	timer.Stop("success")
*/
package monitoring
