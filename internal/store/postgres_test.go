package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"financial-backend/internal/models"
)

// StoreTestSuite runs against a real PostgreSQL instance. Set
// TEST_DATABASE_URL to enable it; without one the suite is skipped.
type StoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *PostgresStore
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupSuite() {
	s.ctx = context.Background()
	pool, err := pgxpool.New(s.ctx, os.Getenv("TEST_DATABASE_URL"))
	require.NoError(s.T(), err)
	s.pool = pool
	s.store = NewPostgresStore(pool)
	require.NoError(s.T(), s.store.Migrate(s.ctx))
}

func (s *StoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *StoreTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE transactions, users RESTART IDENTITY`)
	require.NoError(s.T(), err)
}

func (s *StoreTestSuite) createUser(name, email string) int64 {
	id, err := s.store.CreateUser(s.ctx, name, email, "$2a$10$fakehash")
	require.NoError(s.T(), err)
	return id
}

func (s *StoreTestSuite) TestCreateAndLookupUser() {
	id := s.createUser("Alice", "alice@example.com")

	exists, err := s.store.EmailExists(s.ctx, "alice@example.com")
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.store.EmailExists(s.ctx, "bob@example.com")
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)

	u, err := s.store.GetUserByEmail(s.ctx, "alice@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), id, u.UserID)
	assert.Equal(s.T(), "$2a$10$fakehash", u.PasswordHash)

	_, err = s.store.GetUserByEmail(s.ctx, "bob@example.com")
	assert.ErrorIs(s.T(), err, ErrUserNotFound)
}

func (s *StoreTestSuite) TestUserExists() {
	id := s.createUser("Alice", "alice@example.com")

	exists, err := s.store.UserExists(s.ctx, id)
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.store.UserExists(s.ctx, id+100)
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *StoreTestSuite) TestTransactionRoundTrip() {
	userID := s.createUser("Alice", "alice@example.com")

	id, err := s.store.InsertTransaction(s.ctx, &models.Transaction{
		UserID:          userID,
		Amount:          1250.50,
		TransactionType: models.TypeIncome,
		Category:        "salary",
		TransactionDate: models.NewDate(2025, time.March, 14),
		Description:     "march payroll",
	})
	require.NoError(s.T(), err)
	require.NotZero(s.T(), id)

	rows, err := s.store.ListTransactions(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 1)
	assert.Equal(s.T(), id, rows[0].TransactionID)
	assert.Equal(s.T(), userID, rows[0].UserID)
	assert.Equal(s.T(), 1250.50, rows[0].Amount)
	assert.Equal(s.T(), "2025-03-14", rows[0].TransactionDate.Format("2006-01-02"))

	err = s.store.UpdateTransaction(s.ctx, id, &models.UpdateTransactionRequest{
		Amount:          75.25,
		Category:        "groceries",
		TransactionType: models.TypeExpense,
		TransactionDate: models.NewDate(2025, time.March, 20),
		Description:     "weekly shop",
	})
	require.NoError(s.T(), err)

	rows, err = s.store.ListTransactions(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), rows, 1)
	assert.Equal(s.T(), id, rows[0].TransactionID)
	assert.Equal(s.T(), 75.25, rows[0].Amount)
	assert.Equal(s.T(), models.TypeExpense, rows[0].TransactionType)

	require.NoError(s.T(), s.store.DeleteTransaction(s.ctx, id))

	rows, err = s.store.ListTransactions(s.ctx)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), rows)
}

func (s *StoreTestSuite) TestUpdateMissingTransaction() {
	err := s.store.UpdateTransaction(s.ctx, 9999, &models.UpdateTransactionRequest{
		Amount:          1,
		Category:        "misc",
		TransactionType: models.TypeExpense,
		TransactionDate: models.NewDate(2025, time.January, 1),
	})
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestDeleteMissingTransaction() {
	assert.ErrorIs(s.T(), s.store.DeleteTransaction(s.ctx, 9999), ErrNotFound)
}
