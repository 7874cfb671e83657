package tracking

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fieldtrack/fieldtrack/internal/services/tracking Service

import (
	"context"
)

// Service owns the lifecycle of tracking sessions and the positions recorded in them
type Service interface {
	// GetActiveSession returns the user's open session, paused or not
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// CreateSession starts a new active session for a user
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// ReactivateSession resumes a paused session
	ReactivateSession(ctx context.Context, input *ReactivateSessionInput) (*ReactivateSessionOutput, error)

	// DeactivateSession pauses a session without closing it
	DeactivateSession(ctx context.Context, input *DeactivateSessionInput) (*DeactivateSessionOutput, error)

	// EndSession closes a session for good
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// UpdateSessionTask binds a task to a session
	UpdateSessionTask(ctx context.Context, input *UpdateSessionTaskInput) (*UpdateSessionTaskOutput, error)

	// AttachTaskToSession checks the task exists and binds it to a session
	AttachTaskToSession(ctx context.Context, input *AttachTaskToSessionInput) (*AttachTaskToSessionOutput, error)

	// SavePosition appends a position to a session
	SavePosition(ctx context.Context, input *SavePositionInput) (*SavePositionOutput, error)

	// GetUserActiveTask returns the task the user is working on, if any
	GetUserActiveTask(ctx context.Context, input *GetUserActiveTaskInput) (*GetUserActiveTaskOutput, error)

	// EndSessionsForTask closes every open session bound to a task
	EndSessionsForTask(ctx context.Context, input *EndSessionsForTaskInput) (*EndSessionsForTaskOutput, error)

	// IsWorkingHours reports whether it is currently within the user's company working hours
	IsWorkingHours(ctx context.Context, input *IsWorkingHoursInput) (*IsWorkingHoursOutput, error)

	// GetSessionStats summarises the track recorded for a session
	GetSessionStats(ctx context.Context, input *GetSessionStatsInput) (*GetSessionStatsOutput, error)

	// GetUserRecentPositions returns the user's latest positions, newest first
	GetUserRecentPositions(ctx context.Context, input *GetUserRecentPositionsInput) (*GetUserRecentPositionsOutput, error)

	// ResolveUser looks a worker up by Telegram ID
	ResolveUser(ctx context.Context, input *ResolveUserInput) (*ResolveUserOutput, error)

	// TouchLastSeen records that a location update from the worker was just accepted
	TouchLastSeen(ctx context.Context, input *TouchLastSeenInput) error

	// ForgetLastSeen stops watching the worker for missed updates
	ForgetLastSeen(ctx context.Context, input *ForgetLastSeenInput) error

	// ListStaleUsers returns the workers whose last update is older than the timeout
	ListStaleUsers(ctx context.Context, input *ListStaleUsersInput) (*ListStaleUsersOutput, error)
}
