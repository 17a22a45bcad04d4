package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	alerterrors "github.com/Conte777/tweetfeed/internal/domain/alert/errors"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestSeenRepository_Seen(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSeenRepository(db)

	mock.ExpectQuery(`SELECT "tweet_id" FROM "seen_tweets" WHERE tweet_id IN`).
		WithArgs("1", "2").
		WillReturnRows(sqlmock.NewRows([]string{"tweet_id"}).AddRow("2"))

	seen, err := repo.Seen(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"2": true}, seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeenRepository_Seen_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	seen, err := NewSeenRepository(db).Seen(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeenRepository_Seen_Error(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT "tweet_id" FROM "seen_tweets"`).
		WillReturnError(errors.New("connection reset"))

	_, err := NewSeenRepository(db).Seen(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, alerterrors.ErrSeenStoreUnavailable)
}

func TestSeenRepository_MarkSeen(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "seen_tweets" .* ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := NewSeenRepository(db).MarkSeen(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeenRepository_MarkSeen_Error(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "seen_tweets"`).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	err := NewSeenRepository(db).MarkSeen(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, alerterrors.ErrSeenStoreUnavailable)
}
