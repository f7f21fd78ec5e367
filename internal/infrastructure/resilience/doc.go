/*
Package resilience provides a circuit breaker for calls to remote umath servers.

# Usage

	breaker := resilience.New("umath-api", resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
	})

	result, err := resilience.Do(breaker, func() (*types.Result, error) {
		return call(ctx)
	})

# States

- Closed: Normal operation, requests pass through
- Open: Remote unavailable, requests fail immediately with ErrCircuitOpen
- Half-Open: Probing, at most MaxRequests calls allowed

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                    [failure]
	                                           |
	                                           v
	                                         Open
*/
package resilience
