package monitor

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fieldtrack/fieldtrack/internal/services/monitor Service

import (
	"context"
)

// Service watches live sharing workers and pauses sessions that went silent
type Service interface {
	// Start runs sweeps on a ticker until ctx is cancelled or Stop is called
	Start(ctx context.Context) error

	// Stop ends the sweep loop and waits for the running sweep to finish
	Stop()

	// Sweep runs a single pass over the stale workers
	Sweep(ctx context.Context) (*SweepOutput, error)
}
