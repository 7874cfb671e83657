package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fieldtrack/fieldtrack/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

type PostgresRepositoryTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	db   *database.DB
	repo Repository
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
}

func (s *PostgresRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.db.Close()
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) TestGetUserByTelegramID() {
	companyID := "company-1"

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE telegram_id = $1 LIMIT 1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("user-1", int64(42), int64(42), "Ivan", companyID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	user, err := s.repo.GetUserByTelegramID(context.Background(), &GetUserByTelegramIDInput{
		TelegramID: 42,
	})
	s.Require().NoError(err)
	s.Equal("user-1", user.ID)
	s.Equal(int64(42), user.ChatID)
	s.Require().NotNil(user.CompanyID)
	s.Equal(companyID, *user.CompanyID)
}

func (s *PostgresRepositoryTestSuite) TestGetUserByTelegramID_NotRegistered() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := s.repo.GetUserByTelegramID(context.Background(), &GetUserByTelegramIDInput{
		TelegramID: 7,
	})
	s.Equal(ErrUserNotFound, err)
}

func (s *PostgresRepositoryTestSuite) TestGetCompany() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM companies WHERE id = $1")).
		WithArgs("company-1").
		WillReturnRows(sqlmock.NewRows(companyColumns).
			AddRow("company-1", "Acme", "09:00", "18:00", "Europe/Moscow"))

	company, err := s.repo.GetCompany(context.Background(), &GetCompanyInput{
		CompanyID: "company-1",
	})
	s.Require().NoError(err)
	s.Equal("09:00", company.WorkStart)
	s.Equal("Europe/Moscow", company.Timezone)
}
