package location

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fieldtrack/fieldtrack/internal/services/location Service

import (
	"context"
)

// Service turns inbound location updates into session changes and replies
type Service interface {
	// HandleLocation processes one location message or live location edit
	HandleLocation(ctx context.Context, input *HandleLocationInput) (*HandleLocationOutput, error)
}
