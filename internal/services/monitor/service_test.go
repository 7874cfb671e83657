package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/models"
	lastSeenRepo "github.com/fieldtrack/fieldtrack/internal/repositories/lastseen"
	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	"github.com/fieldtrack/fieldtrack/internal/services/notification"
	notificationMocks "github.com/fieldtrack/fieldtrack/internal/services/notification/mocks"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	trackingMocks "github.com/fieldtrack/fieldtrack/internal/services/tracking/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MonitorServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockTracker    *trackingMocks.MockService
	mockNotifier   *notificationMocks.MockNotifier
	mockDispatcher *notificationMocks.MockDispatcher
	monitor        *service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testUser      *models.User
	testTask      *models.Task
	activeSession *models.Session
	staleEntry    *lastSeenRepo.Entry
}

func (s *MonitorServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackingMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notificationMocks.NewMockNotifier(s.mockCtrl)
	s.mockDispatcher = notificationMocks.NewMockDispatcher(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUser = &models.User{
		ID:         "test-user-id",
		TelegramID: 424242,
		ChatID:     424242,
		Name:       "Ivan",
	}
	s.testTask = &models.Task{
		ID:     "test-task-id",
		Title:  "Fix the pump",
		Status: models.TaskStatusInProgress,
	}
	s.activeSession = &models.Session{
		ID:       "test-session-id",
		UserID:   s.testUser.ID,
		IsActive: true,
	}
	s.staleEntry = &lastSeenRepo.Entry{
		TelegramID: s.testUser.TelegramID,
		SeenAt:     s.testTime.Add(-4 * time.Minute),
	}

	monitor, err := New(&Config{
		Interval:   10 * time.Millisecond,
		Timeout:    3 * time.Minute,
		Tracker:    s.mockTracker,
		Messaging:  messaging.New(),
		Notifier:   s.mockNotifier,
		Dispatcher: s.mockDispatcher,
	})
	s.Require().NoError(err)
	s.monitor = monitor
}

func (s *MonitorServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMonitorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorServiceTestSuite))
}

func (s *MonitorServiceTestSuite) expectStale(entries ...*lastSeenRepo.Entry) {
	s.mockTracker.EXPECT().
		ListStaleUsers(s.ctx, &tracking.ListStaleUsersInput{Timeout: 3 * time.Minute}).
		Return(&tracking.ListStaleUsersOutput{Entries: entries}, nil)
}

func (s *MonitorServiceTestSuite) TestSweep_PausesSilentSessionWithoutTask() {
	s.expectStale(s.staleEntry)

	resolve := s.mockTracker.EXPECT().
		ResolveUser(s.ctx, &tracking.ResolveUserInput{TelegramID: s.staleEntry.TelegramID}).
		Return(&tracking.ResolveUserOutput{User: s.testUser}, nil)
	active := s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, &tracking.GetActiveSessionInput{UserID: s.testUser.ID}).
		Return(&tracking.GetActiveSessionOutput{Session: s.activeSession}, nil)
	task := s.mockTracker.EXPECT().
		GetUserActiveTask(s.ctx, gomock.Any()).
		Return(&tracking.GetUserActiveTaskOutput{}, nil)
	deactivate := s.mockTracker.EXPECT().
		DeactivateSession(s.ctx, &tracking.DeactivateSessionInput{SessionID: s.activeSession.ID}).
		Return(&tracking.DeactivateSessionOutput{}, nil)
	notify := s.mockNotifier.EXPECT().
		Notify(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *notification.NotifyInput) error {
			s.Equal(s.testUser.ChatID, input.ChatID)
			s.Contains(input.Text, "Отслеживание местоположения деактивировано")
			return nil
		})
	forget := s.mockTracker.EXPECT().
		ForgetLastSeen(s.ctx, &tracking.ForgetLastSeenInput{TelegramID: s.staleEntry.TelegramID, SeenAt: s.staleEntry.SeenAt}).
		Return(nil)

	gomock.InOrder(resolve, active, task, deactivate, notify, forget)

	output, err := s.monitor.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Deactivated)
	s.Zero(output.Skipped)
	s.Zero(output.Failed)
}

func (s *MonitorServiceTestSuite) TestSweep_TaskInProgressAlertsDispatch() {
	s.expectStale(s.staleEntry)

	s.mockTracker.EXPECT().
		ResolveUser(s.ctx, gomock.Any()).
		Return(&tracking.ResolveUserOutput{User: s.testUser}, nil)
	s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(&tracking.GetActiveSessionOutput{Session: s.activeSession}, nil)
	s.mockTracker.EXPECT().
		GetUserActiveTask(s.ctx, gomock.Any()).
		Return(&tracking.GetUserActiveTaskOutput{Task: s.testTask}, nil)
	s.mockTracker.EXPECT().
		DeactivateSession(s.ctx, gomock.Any()).
		Return(&tracking.DeactivateSessionOutput{}, nil)
	s.mockNotifier.EXPECT().
		Notify(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *notification.NotifyInput) error {
			s.Contains(input.Text, "задача «Fix the pump» в работе")
			return nil
		})
	s.mockDispatcher.EXPECT().
		Dispatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *notification.DispatchInput) error {
			s.Contains(input.Text, "Ivan")
			s.Contains(input.Text, "Fix the pump")
			return nil
		})
	s.mockTracker.EXPECT().ForgetLastSeen(s.ctx, gomock.Any()).Return(nil)

	output, err := s.monitor.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Deactivated)
}

func (s *MonitorServiceTestSuite) TestSweep_SkipsAndForgetsWithoutSession() {
	unknown := &lastSeenRepo.Entry{TelegramID: 777, SeenAt: s.staleEntry.SeenAt}
	s.expectStale(unknown, s.staleEntry)

	s.mockTracker.EXPECT().
		ResolveUser(s.ctx, &tracking.ResolveUserInput{TelegramID: 777}).
		Return(&tracking.ResolveUserOutput{}, nil)
	s.mockTracker.EXPECT().
		ForgetLastSeen(s.ctx, &tracking.ForgetLastSeenInput{TelegramID: 777, SeenAt: unknown.SeenAt}).
		Return(nil)

	s.mockTracker.EXPECT().
		ResolveUser(s.ctx, &tracking.ResolveUserInput{TelegramID: s.staleEntry.TelegramID}).
		Return(&tracking.ResolveUserOutput{User: s.testUser}, nil)
	s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(&tracking.GetActiveSessionOutput{Session: &models.Session{ID: "paused", IsActive: false}}, nil)
	s.mockTracker.EXPECT().
		ForgetLastSeen(s.ctx, &tracking.ForgetLastSeenInput{TelegramID: s.staleEntry.TelegramID, SeenAt: s.staleEntry.SeenAt}).
		Return(nil)

	output, err := s.monitor.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Zero(output.Deactivated)
	s.Equal(2, output.Skipped)
}

func (s *MonitorServiceTestSuite) TestSweep_FailureKeepsEntry() {
	s.expectStale(s.staleEntry)

	s.mockTracker.EXPECT().
		ResolveUser(s.ctx, gomock.Any()).
		Return(&tracking.ResolveUserOutput{User: s.testUser}, nil)
	s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(&tracking.GetActiveSessionOutput{Session: s.activeSession}, nil)
	s.mockTracker.EXPECT().
		GetUserActiveTask(s.ctx, gomock.Any()).
		Return(&tracking.GetUserActiveTaskOutput{}, nil)
	s.mockTracker.EXPECT().
		DeactivateSession(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection refused"))
	// ForgetLastSeen is not expected, so the next sweep retries

	output, err := s.monitor.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, output.Failed)
}

func (s *MonitorServiceTestSuite) TestSweep_ListError() {
	s.mockTracker.EXPECT().
		ListStaleUsers(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.monitor.Sweep(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "redis down")
}

func (s *MonitorServiceTestSuite) TestStartStop() {
	swept := make(chan struct{})
	var once sync.Once

	s.mockTracker.EXPECT().
		ListStaleUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *tracking.ListStaleUsersInput) (*tracking.ListStaleUsersOutput, error) {
			once.Do(func() { close(swept) })
			return &tracking.ListStaleUsersOutput{}, nil
		}).
		MinTimes(1)

	s.Require().NoError(s.monitor.Start(s.ctx))
	s.Equal(ErrAlreadyStarted, s.monitor.Start(s.ctx))

	select {
	case <-swept:
	case <-time.After(time.Second):
		s.Fail("monitor never swept")
	}

	s.monitor.Stop()
	s.monitor.Stop()
}

func (s *MonitorServiceTestSuite) TestNew_Defaults() {
	monitor, err := New(&Config{
		Tracker:   s.mockTracker,
		Messaging: messaging.New(),
		Notifier:  s.mockNotifier,
	})
	s.Require().NoError(err)
	s.Equal(DefaultInterval, monitor.interval)
	s.Equal(DefaultTimeout, monitor.timeout)
	s.NotNil(monitor.dispatcher)
}

func (s *MonitorServiceTestSuite) TestNew_RequiresDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Messaging: messaging.New(), Notifier: s.mockNotifier})
	s.Equal(ErrNilTracker, err)

	_, err = New(&Config{Tracker: s.mockTracker, Notifier: s.mockNotifier})
	s.Equal(ErrNilMessaging, err)

	_, err = New(&Config{Tracker: s.mockTracker, Messaging: messaging.New()})
	s.Equal(ErrNilNotifier, err)
}
