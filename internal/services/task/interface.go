package task

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fieldtrack/fieldtrack/internal/services/task Service

import (
	"context"
)

// Service moves a worker's tasks through their lifecycle and keeps tracking in step
type Service interface {
	// StartTask puts an assigned task in progress and binds it to the worker's open session
	StartTask(ctx context.Context, input *StartTaskInput) (*StartTaskOutput, error)

	// CompleteTask marks a task completed and closes its sessions in one transaction
	CompleteTask(ctx context.Context, input *FinishTaskInput) (*FinishTaskOutput, error)

	// CancelTask marks a task cancelled and closes its sessions in one transaction
	CancelTask(ctx context.Context, input *FinishTaskInput) (*FinishTaskOutput, error)
}
