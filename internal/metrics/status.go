// Package metrics holds the Prometheus collectors behind every component's Metrics interface.
package metrics

const (
	statusSuccess = "success"
	statusError   = "error"
)

func statusOf(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}
