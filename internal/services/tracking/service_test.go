package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/common/clock/mocks"
	uuidMocks "github.com/fieldtrack/fieldtrack/internal/common/uuid/mocks"
	"github.com/fieldtrack/fieldtrack/internal/models"
	lastSeenRepo "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	lastSeenMocks "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen/mocks"
	sessionRepo "github.com/fieldtrack/fieldtrack/internal/repositories/session"
	sessionMocks "github.com/fieldtrack/fieldtrack/internal/repositories/session/mocks"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	taskMocks "github.com/fieldtrack/fieldtrack/internal/repositories/task/mocks"
	userRepo "github.com/fieldtrack/fieldtrack/internal/repositories/user"
	userMocks "github.com/fieldtrack/fieldtrack/internal/repositories/user/mocks"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackingServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockTaskRepo    *taskMocks.MockRepository
	mockUserRepo    *userMocks.MockRepository
	mockLastSeen    *lastSeenMocks.MockRepository
	mockClock       *mocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	trackingService Service
	ctx             context.Context

	// Test data
	testTime       time.Time
	testUserID     string
	testSessionID  string
	testTaskID     string
	testTelegramID int64

	// Reusable test fixtures
	activeSession *models.Session
	pausedSession *models.Session
	endedSession  *models.Session
	inProgress    *models.Task
}

func (s *TrackingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockTaskRepo = taskMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockLastSeen = lastSeenMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testSessionID = "test-session-id"
	s.testTaskID = "test-task-id"
	s.testTelegramID = 424242

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.activeSession = &models.Session{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		StartTime: s.testTime.Add(-time.Hour),
		IsActive:  true,
		UpdatedAt: s.testTime.Add(-time.Hour),
	}

	s.pausedSession = &models.Session{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		TaskID:    &s.testTaskID,
		StartTime: s.testTime.Add(-time.Hour),
		IsActive:  false,
		UpdatedAt: s.testTime.Add(-time.Minute),
	}

	ended := s.testTime.Add(-time.Minute)
	s.endedSession = &models.Session{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		TaskID:    &s.testTaskID,
		StartTime: s.testTime.Add(-time.Hour),
		EndTime:   &ended,
		IsActive:  false,
	}

	s.inProgress = &models.Task{
		ID:         s.testTaskID,
		Title:      "Fix the pump",
		Status:     models.TaskStatusInProgress,
		AssignedTo: &s.testUserID,
	}

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		TaskRepo:      s.mockTaskRepo,
		UserRepo:      s.mockUserRepo,
		LastSeenRepo:  s.mockLastSeen,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.trackingService = svc
}

func (s *TrackingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}

func (s *TrackingServiceTestSuite) TestNew_RequiresDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo})
	s.Equal(ErrNilTaskRepo, err)

	_, err = New(&Config{
		SessionRepo:  s.mockSessionRepo,
		TaskRepo:     s.mockTaskRepo,
		UserRepo:     s.mockUserRepo,
		LastSeenRepo: s.mockLastSeen,
		Clock:        s.mockClock,
	})
	s.Equal(ErrNilUUIDGenerator, err)
}

func (s *TrackingServiceTestSuite) TestGetActiveSession_None() {
	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	output, err := s.trackingService.GetActiveSession(s.ctx, &GetActiveSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Nil(output.Session)
}

func (s *TrackingServiceTestSuite) TestGetActiveSession_ReturnsPaused() {
	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, gomock.Any()).
		Return(s.pausedSession, nil)

	output, err := s.trackingService.GetActiveSession(s.ctx, &GetActiveSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(s.pausedSession, output.Session)
}

func (s *TrackingServiceTestSuite) TestCreateSession() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	expected := &models.Session{
		ID:        s.testSessionID,
		UserID:    s.testUserID,
		StartTime: s.testTime,
		IsActive:  true,
		UpdatedAt: s.testTime,
	}

	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, &sessionRepo.CreateSessionInput{Session: expected}).
		Return(expected, nil)

	output, err := s.trackingService.CreateSession(s.ctx, &CreateSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.False(output.Existing)
	s.True(output.Session.IsActive)
	s.Nil(output.Session.EndTime)
	s.Nil(output.Session.TaskID)
}

func (s *TrackingServiceTestSuite) TestCreateSession_ResumesExistingOnConflict() {
	s.mockUUID.EXPECT().NewUUID().Return("another-session-id")

	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrOpenSessionExists)

	s.mockSessionRepo.EXPECT().
		GetOpenSession(s.ctx, &sessionRepo.GetOpenSessionInput{UserID: s.testUserID}).
		Return(s.pausedSession, nil)

	resumed := *s.pausedSession
	resumed.IsActive = true
	s.mockSessionRepo.EXPECT().
		SetSessionActive(s.ctx, &sessionRepo.SetSessionActiveInput{
			SessionID: s.testSessionID,
			IsActive:  true,
			UpdatedAt: s.testTime,
		}).
		Return(&resumed, nil)

	output, err := s.trackingService.CreateSession(s.ctx, &CreateSessionInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(output.Existing)
	s.Equal(s.testSessionID, output.Session.ID)
	s.True(output.Session.IsActive)
}

func (s *TrackingServiceTestSuite) TestCreateSession_StoreError() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.trackingService.CreateSession(s.ctx, &CreateSessionInput{UserID: s.testUserID})
	s.Require().Error(err)
	s.Contains(err.Error(), "connection refused")
}

func (s *TrackingServiceTestSuite) TestReactivateSession_KeepsTaskAndStart() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.pausedSession, nil)

	resumed := *s.pausedSession
	resumed.IsActive = true
	s.mockSessionRepo.EXPECT().
		SetSessionActive(s.ctx, &sessionRepo.SetSessionActiveInput{
			SessionID: s.testSessionID,
			IsActive:  true,
			UpdatedAt: s.testTime,
		}).
		Return(&resumed, nil)

	output, err := s.trackingService.ReactivateSession(s.ctx, &ReactivateSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(output.Session.IsActive)
	s.Equal(s.pausedSession.StartTime, output.Session.StartTime)
	s.Equal(s.testTaskID, *output.Session.TaskID)
}

func (s *TrackingServiceTestSuite) TestReactivateSession_Ended() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.endedSession, nil)

	_, err := s.trackingService.ReactivateSession(s.ctx, &ReactivateSessionInput{SessionID: s.testSessionID})
	s.Equal(ErrSessionEnded, err)
}

func (s *TrackingServiceTestSuite) TestDeactivateSession_DoesNotEnd() {
	paused := *s.activeSession
	paused.IsActive = false
	s.mockSessionRepo.EXPECT().
		SetSessionActive(s.ctx, &sessionRepo.SetSessionActiveInput{
			SessionID: s.testSessionID,
			IsActive:  false,
			UpdatedAt: s.testTime,
		}).
		Return(&paused, nil)

	output, err := s.trackingService.DeactivateSession(s.ctx, &DeactivateSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(output.Session.IsActive)
	s.Nil(output.Session.EndTime)
}

func (s *TrackingServiceTestSuite) TestDeactivateSession_NotFound() {
	s.mockSessionRepo.EXPECT().
		SetSessionActive(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.trackingService.DeactivateSession(s.ctx, &DeactivateSessionInput{SessionID: s.testSessionID})
	s.Equal(ErrSessionNotFound, err)
}

func (s *TrackingServiceTestSuite) TestEndSession() {
	s.mockSessionRepo.EXPECT().
		EndSession(s.ctx, &sessionRepo.EndSessionInput{
			SessionID: s.testSessionID,
			EndTime:   s.testTime,
		}).
		Return(s.endedSession, nil)

	output, err := s.trackingService.EndSession(s.ctx, &EndSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(output.Session.IsActive)
	s.NotNil(output.Session.EndTime)
}

func (s *TrackingServiceTestSuite) TestUpdateSessionTask_Binds() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.activeSession, nil)

	bound := *s.activeSession
	bound.TaskID = &s.testTaskID
	s.mockSessionRepo.EXPECT().
		SetSessionTask(s.ctx, &sessionRepo.SetSessionTaskInput{
			SessionID: s.testSessionID,
			TaskID:    s.testTaskID,
			UpdatedAt: s.testTime,
		}).
		Return(&bound, nil)

	output, err := s.trackingService.UpdateSessionTask(s.ctx, &UpdateSessionTaskInput{
		SessionID: s.testSessionID,
		TaskID:    s.testTaskID,
	})
	s.Require().NoError(err)
	s.True(output.Changed)
	s.True(output.Session.BoundTo(s.testTaskID))
}

func (s *TrackingServiceTestSuite) TestAttachTaskToSession_Idempotent() {
	bound := *s.activeSession
	bound.TaskID = &s.testTaskID

	s.mockTaskRepo.EXPECT().
		GetTask(s.ctx, &taskRepo.GetTaskInput{TaskID: s.testTaskID}).
		Return(s.inProgress, nil).
		Times(2)

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(&bound, nil).
		Times(2)

	// SetSessionTask must never be called for a session already bound to the task
	for i := 0; i < 2; i++ {
		output, err := s.trackingService.AttachTaskToSession(s.ctx, &AttachTaskToSessionInput{
			SessionID: s.testSessionID,
			TaskID:    s.testTaskID,
		})
		s.Require().NoError(err)
		s.False(output.Changed)
		s.Equal(s.testTaskID, *output.Session.TaskID)
		s.Equal(s.inProgress, output.Task)
	}
}

func (s *TrackingServiceTestSuite) TestAttachTaskToSession_UnknownTask() {
	s.mockTaskRepo.EXPECT().
		GetTask(s.ctx, gomock.Any()).
		Return(nil, taskRepo.ErrTaskNotFound)

	_, err := s.trackingService.AttachTaskToSession(s.ctx, &AttachTaskToSessionInput{
		SessionID: s.testSessionID,
		TaskID:    "missing",
	})
	s.Equal(ErrTaskNotFound, err)
}

func (s *TrackingServiceTestSuite) TestUpdateSessionTask_EndedSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(s.endedSession, nil)

	_, err := s.trackingService.UpdateSessionTask(s.ctx, &UpdateSessionTaskInput{
		SessionID: s.testSessionID,
		TaskID:    "other-task",
	})
	s.Equal(ErrSessionEnded, err)
}

func (s *TrackingServiceTestSuite) TestSavePosition_DefaultsToNow() {
	s.mockUUID.EXPECT().NewUUID().Return("test-position-id")

	expected := &models.Position{
		ID:        "test-position-id",
		UserID:    s.testUserID,
		SessionID: s.testSessionID,
		Latitude:  55.7558,
		Longitude: 37.6173,
		Timestamp: s.testTime,
	}

	s.mockSessionRepo.EXPECT().
		SavePosition(s.ctx, &sessionRepo.SavePositionInput{Position: expected}).
		Return(nil)

	output, err := s.trackingService.SavePosition(s.ctx, &SavePositionInput{
		UserID:    s.testUserID,
		SessionID: s.testSessionID,
		Latitude:  55.7558,
		Longitude: 37.6173,
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Position)
}

func (s *TrackingServiceTestSuite) TestSavePosition_StoresOutOfRangeAsIs() {
	s.mockUUID.EXPECT().NewUUID().Return("test-position-id")

	s.mockSessionRepo.EXPECT().
		SavePosition(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SavePositionInput) error {
			s.Equal(123.0, input.Position.Latitude)
			s.Equal(-500.0, input.Position.Longitude)
			return nil
		})

	_, err := s.trackingService.SavePosition(s.ctx, &SavePositionInput{
		UserID:    s.testUserID,
		SessionID: s.testSessionID,
		Latitude:  123,
		Longitude: -500,
	})
	s.Require().NoError(err)
}

func (s *TrackingServiceTestSuite) TestGetUserActiveTask() {
	s.mockTaskRepo.EXPECT().
		GetUserActiveTask(s.ctx, &taskRepo.GetUserActiveTaskInput{UserID: s.testUserID}).
		Return(s.inProgress, nil)

	output, err := s.trackingService.GetUserActiveTask(s.ctx, &GetUserActiveTaskInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal(s.inProgress, output.Task)
}

func (s *TrackingServiceTestSuite) TestGetUserActiveTask_None() {
	s.mockTaskRepo.EXPECT().
		GetUserActiveTask(s.ctx, gomock.Any()).
		Return(nil, taskRepo.ErrTaskNotFound)

	output, err := s.trackingService.GetUserActiveTask(s.ctx, &GetUserActiveTaskInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Nil(output.Task)
}

func (s *TrackingServiceTestSuite) TestEndSessionsForTask_InTransaction() {
	tx := &sqlx.Tx{}
	txRepo := sessionMocks.NewMockRepository(s.mockCtrl)

	s.mockSessionRepo.EXPECT().WithTx(tx).Return(txRepo)
	txRepo.EXPECT().
		EndSessionsForTask(s.ctx, &sessionRepo.EndSessionsForTaskInput{
			TaskID:  s.testTaskID,
			EndTime: s.testTime,
		}).
		Return(&sessionRepo.EndSessionsForTaskOutput{
			Sessions: []*models.Session{s.endedSession},
		}, nil)

	output, err := s.trackingService.EndSessionsForTask(s.ctx, &EndSessionsForTaskInput{
		TaskID: s.testTaskID,
		Tx:     tx,
	})
	s.Require().NoError(err)
	s.Len(output.Sessions, 1)
	s.NotNil(output.Sessions[0].EndTime)
}

func (s *TrackingServiceTestSuite) TestGetUserRecentPositions_DefaultLimit() {
	s.mockSessionRepo.EXPECT().
		ListUserPositions(s.ctx, &sessionRepo.ListUserPositionsInput{
			UserID: s.testUserID,
			Limit:  DefaultRecentPositionsLimit,
		}).
		Return(&sessionRepo.ListPositionsOutput{
			Positions: []*models.Position{{ID: "p2"}, {ID: "p1"}},
		}, nil)

	output, err := s.trackingService.GetUserRecentPositions(s.ctx, &GetUserRecentPositionsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Len(output.Positions, 2)
	s.Equal("p2", output.Positions[0].ID)
}

func (s *TrackingServiceTestSuite) TestResolveUser_Unknown() {
	s.mockUserRepo.EXPECT().
		GetUserByTelegramID(s.ctx, &userRepo.GetUserByTelegramIDInput{TelegramID: s.testTelegramID}).
		Return(nil, userRepo.ErrUserNotFound)

	output, err := s.trackingService.ResolveUser(s.ctx, &ResolveUserInput{TelegramID: s.testTelegramID})
	s.Require().NoError(err)
	s.Nil(output.User)
}

func (s *TrackingServiceTestSuite) TestLastSeenBookkeeping() {
	s.mockLastSeen.EXPECT().
		Touch(s.ctx, &lastSeenRepo.TouchInput{TelegramID: s.testTelegramID, SeenAt: s.testTime}).
		Return(nil)
	s.mockLastSeen.EXPECT().
		ListStale(s.ctx, &lastSeenRepo.ListStaleInput{Before: s.testTime.Add(-3 * time.Minute)}).
		Return(&lastSeenRepo.ListStaleOutput{
			Entries: []*lastSeenRepo.Entry{{TelegramID: s.testTelegramID, SeenAt: s.testTime.Add(-4 * time.Minute)}},
		}, nil)
	s.mockLastSeen.EXPECT().
		Forget(s.ctx, &lastSeenRepo.ForgetInput{TelegramID: s.testTelegramID}).
		Return(nil)

	s.Require().NoError(s.trackingService.TouchLastSeen(s.ctx, &TouchLastSeenInput{TelegramID: s.testTelegramID}))

	output, err := s.trackingService.ListStaleUsers(s.ctx, &ListStaleUsersInput{Timeout: 3 * time.Minute})
	s.Require().NoError(err)
	s.Len(output.Entries, 1)

	s.Require().NoError(s.trackingService.ForgetLastSeen(s.ctx, &ForgetLastSeenInput{TelegramID: s.testTelegramID}))
}

func (s *TrackingServiceTestSuite) TestForgetLastSeen_PassesSeenAt() {
	seenAt := s.testTime.Add(-4 * time.Minute)
	s.mockLastSeen.EXPECT().
		Forget(s.ctx, &lastSeenRepo.ForgetInput{TelegramID: s.testTelegramID, SeenAt: seenAt}).
		Return(nil)

	s.Require().NoError(s.trackingService.ForgetLastSeen(s.ctx, &ForgetLastSeenInput{
		TelegramID: s.testTelegramID,
		SeenAt:     seenAt,
	}))
}

func (s *TrackingServiceTestSuite) TestListStaleUsers_InvalidTimeout() {
	_, err := s.trackingService.ListStaleUsers(s.ctx, &ListStaleUsersInput{})
	s.Equal(ErrInvalidInput, err)
}
