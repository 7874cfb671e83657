package lastseen

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fieldtrack/fieldtrack/internal/repositories/lastseen Repository

import (
	"context"
)

// Repository records when each worker's last accepted location update arrived
type Repository interface {
	// Touch records a location update for a worker
	Touch(ctx context.Context, input *TouchInput) error

	// Forget stops tracking a worker's recency, optionally only if not touched since a given time
	Forget(ctx context.Context, input *ForgetInput) error

	// ListStale retrieves every worker last seen before a cutoff
	ListStale(ctx context.Context, input *ListStaleInput) (*ListStaleOutput, error)
}
