package task

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/fieldtrack/fieldtrack/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type PostgresRepositoryTestSuite struct {
	suite.Suite
	mock    sqlmock.Sqlmock
	db      *database.DB
	repo    Repository
	testNow time.Time
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.mock = mock
	s.db = database.Wrap(sqlx.NewDb(sqlDB, "pgx"))

	repo, err := NewPostgres(&Config{
		DB: s.db,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.db.Close()
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) TestGetUserActiveTask() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE assigned_to = $1 AND status = $2 ORDER BY updated_at DESC LIMIT 1")).
		WithArgs("user-1", "in-progress").
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("task-1", "Fix the pump", "", "in-progress", "user-1", nil, s.testNow, s.testNow))

	task, err := s.repo.GetUserActiveTask(context.Background(), &GetUserActiveTaskInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal("task-1", task.ID)
	s.Equal(models.TaskStatusInProgress, task.Status)
	s.True(task.IsAssignedTo("user-1"))
}

func (s *PostgresRepositoryTestSuite) TestGetUserActiveTask_None() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM tasks")).
		WithArgs("user-1", "in-progress").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := s.repo.GetUserActiveTask(context.Background(), &GetUserActiveTaskInput{
		UserID: "user-1",
	})
	s.Equal(ErrTaskNotFound, err)
}

func (s *PostgresRepositoryTestSuite) TestUpdateTaskStatus() {
	s.mock.ExpectQuery(regexp.QuoteMeta("UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3 RETURNING")).
		WithArgs("completed", s.testNow, "task-1").
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow("task-1", "Fix the pump", "", "completed", "user-1", nil, s.testNow, s.testNow))

	task, err := s.repo.UpdateTaskStatus(context.Background(), &UpdateTaskStatusInput{
		TaskID:    "task-1",
		Status:    models.TaskStatusCompleted,
		UpdatedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.True(task.Status.IsTerminal())
}

func (s *PostgresRepositoryTestSuite) TestGetTask_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := s.repo.GetTask(context.Background(), &GetTaskInput{
		TaskID: "missing",
	})
	s.Equal(ErrTaskNotFound, err)
}
