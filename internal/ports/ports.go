package ports

import "context"

// HealthChecker probes the document store for the readiness endpoint.
type HealthChecker interface {
	Health(ctx context.Context) error
}
