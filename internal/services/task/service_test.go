package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldtrack/fieldtrack/internal/common/clock/mocks"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	taskRepo "github.com/fieldtrack/fieldtrack/internal/repositories/task"
	taskMocks "github.com/fieldtrack/fieldtrack/internal/repositories/task/mocks"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	trackingMocks "github.com/fieldtrack/fieldtrack/internal/services/tracking/mocks"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TaskServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockTaskRepo *taskMocks.MockRepository
	mockTxRepo   *taskMocks.MockRepository
	mockTracker  *trackingMocks.MockService
	mockClock    *mocks.MockClock
	sqlMock      sqlmock.Sqlmock
	db           *database.DB
	taskService  Service
	ctx          context.Context

	// Test data
	testTime       time.Time
	testUserID     string
	testTelegramID int64
	testTask       *models.Task
	boundSession   *models.Session
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTaskRepo = taskMocks.NewMockRepository(s.mockCtrl)
	s.mockTxRepo = taskMocks.NewMockRepository(s.mockCtrl)
	s.mockTracker = trackingMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	sqlDB, sqlMock, err := sqlmock.New()
	s.Require().NoError(err)
	s.sqlMock = sqlMock
	s.db = database.Wrap(sqlx.NewDb(sqlDB, "pgx"))

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.testTelegramID = 424242
	s.testTask = &models.Task{
		ID:         "test-task-id",
		Title:      "Fix the pump",
		Status:     models.TaskStatusInProgress,
		AssignedTo: &s.testUserID,
	}

	ended := s.testTime
	s.boundSession = &models.Session{
		ID:       "test-session-id",
		UserID:   s.testUserID,
		TaskID:   &s.testTask.ID,
		EndTime:  &ended,
		IsActive: false,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Transactor: s.db,
		TaskRepo:   s.mockTaskRepo,
		Tracker:    s.mockTracker,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.taskService = svc
}

func (s *TaskServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.sqlMock.ExpectationsWereMet())
	s.db.Close()
	s.mockCtrl.Finish()
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) expectTask(task *models.Task) {
	s.mockTaskRepo.EXPECT().
		GetTask(s.ctx, &taskRepo.GetTaskInput{TaskID: task.ID}).
		Return(task, nil)
}

func (s *TaskServiceTestSuite) TestCompleteTask_ClosesSessionsInSameTransaction() {
	s.expectTask(s.testTask)
	s.sqlMock.ExpectBegin()
	s.sqlMock.ExpectCommit()

	var statusTx *sqlx.Tx
	completed := *s.testTask
	completed.Status = models.TaskStatusCompleted

	s.mockTaskRepo.EXPECT().
		WithTx(gomock.Any()).
		DoAndReturn(func(tx *sqlx.Tx) taskRepo.Repository {
			statusTx = tx
			return s.mockTxRepo
		})
	s.mockTxRepo.EXPECT().
		UpdateTaskStatus(s.ctx, &taskRepo.UpdateTaskStatusInput{
			TaskID:    s.testTask.ID,
			Status:    models.TaskStatusCompleted,
			UpdatedAt: s.testTime,
		}).
		Return(&completed, nil)
	s.mockTracker.EXPECT().
		EndSessionsForTask(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tracking.EndSessionsForTaskInput) (*tracking.EndSessionsForTaskOutput, error) {
			s.Equal(s.testTask.ID, input.TaskID)
			s.Require().NotNil(input.Tx)
			s.Same(statusTx, input.Tx)
			return &tracking.EndSessionsForTaskOutput{Sessions: []*models.Session{s.boundSession}}, nil
		})
	s.mockTracker.EXPECT().
		ForgetLastSeen(s.ctx, &tracking.ForgetLastSeenInput{TelegramID: s.testTelegramID}).
		Return(nil)

	output, err := s.taskService.CompleteTask(s.ctx, &FinishTaskInput{
		UserID:     s.testUserID,
		TaskID:     s.testTask.ID,
		TelegramID: s.testTelegramID,
	})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusCompleted, output.Task.Status)
	s.Require().Len(output.ClosedSessions, 1)
	s.NotNil(output.ClosedSessions[0].EndTime)
	s.False(output.ClosedSessions[0].IsActive)
}

func (s *TaskServiceTestSuite) TestCompleteTask_RollsBackWhenSessionsFailToClose() {
	s.expectTask(s.testTask)
	s.sqlMock.ExpectBegin()
	s.sqlMock.ExpectRollback()

	s.mockTaskRepo.EXPECT().WithTx(gomock.Any()).Return(s.mockTxRepo)
	s.mockTxRepo.EXPECT().
		UpdateTaskStatus(s.ctx, gomock.Any()).
		Return(&models.Task{ID: s.testTask.ID, Status: models.TaskStatusCompleted}, nil)
	s.mockTracker.EXPECT().
		EndSessionsForTask(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection reset"))
	// last seen is kept when nothing was committed

	output, err := s.taskService.CompleteTask(s.ctx, &FinishTaskInput{
		UserID:     s.testUserID,
		TaskID:     s.testTask.ID,
		TelegramID: s.testTelegramID,
	})
	s.Require().Error(err)
	s.Nil(output)
	s.Contains(err.Error(), "connection reset")
}

func (s *TaskServiceTestSuite) TestCancelTask_RollsBackWhenStatusFails() {
	accepted := *s.testTask
	accepted.Status = models.TaskStatusAccepted
	s.expectTask(&accepted)
	s.sqlMock.ExpectBegin()
	s.sqlMock.ExpectRollback()

	s.mockTaskRepo.EXPECT().WithTx(gomock.Any()).Return(s.mockTxRepo)
	s.mockTxRepo.EXPECT().
		UpdateTaskStatus(s.ctx, gomock.Any()).
		Return(nil, errors.New("deadlock detected"))

	_, err := s.taskService.CancelTask(s.ctx, &FinishTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Require().Error(err)
}

func (s *TaskServiceTestSuite) TestCompleteTask_RequiresInProgress() {
	assigned := *s.testTask
	assigned.Status = models.TaskStatusAssigned
	s.expectTask(&assigned)

	_, err := s.taskService.CompleteTask(s.ctx, &FinishTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Equal(ErrInvalidStatus, err)
}

func (s *TaskServiceTestSuite) TestCancelTask_AlreadyFinished() {
	done := *s.testTask
	done.Status = models.TaskStatusCompleted
	s.expectTask(&done)

	_, err := s.taskService.CancelTask(s.ctx, &FinishTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Equal(ErrInvalidStatus, err)
}

func (s *TaskServiceTestSuite) TestFinish_NotAssigned() {
	other := "someone-else"
	foreign := *s.testTask
	foreign.AssignedTo = &other
	s.expectTask(&foreign)

	_, err := s.taskService.CompleteTask(s.ctx, &FinishTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Equal(ErrTaskNotAssigned, err)
}

func (s *TaskServiceTestSuite) TestStartTask_BindsOpenSession() {
	assigned := *s.testTask
	assigned.Status = models.TaskStatusAssigned
	s.expectTask(&assigned)

	s.mockTracker.EXPECT().
		GetUserActiveTask(s.ctx, &tracking.GetUserActiveTaskInput{UserID: s.testUserID}).
		Return(&tracking.GetUserActiveTaskOutput{}, nil)
	s.mockTaskRepo.EXPECT().
		UpdateTaskStatus(s.ctx, &taskRepo.UpdateTaskStatusInput{
			TaskID:    s.testTask.ID,
			Status:    models.TaskStatusInProgress,
			UpdatedAt: s.testTime,
		}).
		Return(s.testTask, nil)

	open := &models.Session{ID: "open-session-id", UserID: s.testUserID, IsActive: true}
	s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(&tracking.GetActiveSessionOutput{Session: open}, nil)
	s.mockTracker.EXPECT().
		AttachTaskToSession(s.ctx, &tracking.AttachTaskToSessionInput{
			SessionID: open.ID,
			TaskID:    s.testTask.ID,
		}).
		Return(&tracking.AttachTaskToSessionOutput{Changed: true}, nil)

	output, err := s.taskService.StartTask(s.ctx, &StartTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusInProgress, output.Task.Status)
	s.Equal(open.ID, output.SessionID)
}

func (s *TaskServiceTestSuite) TestStartTask_AnotherInProgress() {
	assigned := *s.testTask
	assigned.Status = models.TaskStatusAssigned
	s.expectTask(&assigned)

	s.mockTracker.EXPECT().
		GetUserActiveTask(s.ctx, gomock.Any()).
		Return(&tracking.GetUserActiveTaskOutput{Task: &models.Task{ID: "other-task"}}, nil)

	_, err := s.taskService.StartTask(s.ctx, &StartTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Equal(ErrTaskAlreadyInProgress, err)
}

func (s *TaskServiceTestSuite) TestStartTask_NotSharing() {
	s.expectTask(s.testTask)

	s.mockTracker.EXPECT().
		GetActiveSession(s.ctx, gomock.Any()).
		Return(&tracking.GetActiveSessionOutput{}, nil)

	output, err := s.taskService.StartTask(s.ctx, &StartTaskInput{
		UserID: s.testUserID,
		TaskID: s.testTask.ID,
	})
	s.Require().NoError(err)
	s.Empty(output.SessionID)
}

func (s *TaskServiceTestSuite) TestStartTask_NotFound() {
	s.mockTaskRepo.EXPECT().
		GetTask(s.ctx, gomock.Any()).
		Return(nil, taskRepo.ErrTaskNotFound)

	_, err := s.taskService.StartTask(s.ctx, &StartTaskInput{
		UserID: s.testUserID,
		TaskID: "missing",
	})
	s.Equal(ErrTaskNotFound, err)
}
