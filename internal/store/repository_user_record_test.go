package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

func TestUserRecordRepository_SQLite_SaltLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRecordRepository(newSQLiteDB(t), logger.Nop())

	salt, err := repo.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, salt)

	stored, err := repo.CreateEncryptionSalt(ctx, "u1", "salt-a")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", stored)

	// second writer loses
	stored, err = repo.CreateEncryptionSalt(ctx, "u1", "salt-b")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", stored)

	salt, err = repo.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "salt-a", salt)

	other, err := repo.GetEncryptionSalt(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUserRecordRepository_SQLite_ConcurrentFirstWriters(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRecordRepository(newSQLiteDB(t), logger.Nop())

	const writers = 8
	results := make([]string, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := repo.CreateEncryptionSalt(ctx, "u1", string(rune('a'+i)))
			assert.NoError(t, err)
			results[i] = s
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}

func TestUserRecordRepository_SQLite_PinLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRecordRepository(newSQLiteDB(t), logger.Nop())

	state, err := repo.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.PinState{}, state)

	err = repo.SavePinHash(ctx, "u1", "hash")
	assert.ErrorIs(t, err, ErrUserRecordNotFound)

	_, err = repo.CreateEncryptionSalt(ctx, "u1", "salt")
	require.NoError(t, err)

	state, err = repo.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, state.Configured)

	require.NoError(t, repo.SavePinHash(ctx, "u1", "hash"))
	state, err = repo.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.PinState{Hash: "hash", Configured: true}, state)

	require.NoError(t, repo.ClearPinHash(ctx, "u1"))
	state, err = repo.GetPinState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.PinState{}, state)

	// salt survives clearing the pin
	salt, err := repo.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "salt", salt)

	require.NoError(t, repo.DeleteEncryptionState(ctx, "u1"))
	salt, err = repo.GetEncryptionSalt(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, salt)
}

func TestUserRecordRepository_GetEncryptionSalt_QueryError(t *testing.T) {
	db, mock := newMockDB(t, config.DriverPostgres)
	repo := NewUserRecordRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT encryption_salt FROM user_encryption WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.GetEncryptionSalt(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrTransient)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRecordRepository_TransientErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("pin state on a locked database file", func(t *testing.T) {
		db, mock := newMockDB(t, config.DriverSQLite)
		repo := NewUserRecordRepository(db, logger.Nop())
		mock.ExpectQuery(`SELECT pin_hash, pin_configured FROM user_encryption`).
			WithArgs("u1").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

		_, err := repo.GetPinState(ctx, "u1")
		assert.ErrorIs(t, err, ErrTransient)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("pin hash update during a deadlock", func(t *testing.T) {
		db, mock := newMockDB(t, config.DriverPostgres)
		repo := NewUserRecordRepository(db, logger.Nop())
		mock.ExpectExec(`UPDATE user_encryption`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})

		err := repo.SavePinHash(ctx, "u1", "hash")
		assert.ErrorIs(t, err, ErrTransient)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})

	t.Run("constraint violations are final", func(t *testing.T) {
		db, mock := newMockDB(t, config.DriverPostgres)
		repo := NewUserRecordRepository(db, logger.Nop())
		mock.ExpectExec(`UPDATE user_encryption`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

		err := repo.SavePinHash(ctx, "u1", "hash")
		assert.NotErrorIs(t, err, ErrTransient)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestUserRecordRepository_CreateEncryptionSalt(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_encryption .* ON CONFLICT \(user_id\) DO NOTHING`).
					WithArgs("u1", "salt", false, sqlmock.AnyArg()).
					WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "read back missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_encryption`).
					WithArgs("u1", "salt", false, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT encryption_salt FROM user_encryption`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"encryption_salt"}))
			},
			wantErr: ErrSaltNotPersisted,
		},
		{
			name: "other writer won",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_encryption`).
					WithArgs("u1", "salt", false, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT encryption_salt FROM user_encryption`).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows([]string{"encryption_salt"}).AddRow("winner"))
			},
			want: "winner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, config.DriverSQLite)
			repo := NewUserRecordRepository(db, logger.Nop())
			tt.setup(mock)

			got, err := repo.CreateEncryptionSalt(context.Background(), "u1", "salt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRecordRepository_SavePinHash_ExecError(t *testing.T) {
	db, mock := newMockDB(t, config.DriverSQLite)
	repo := NewUserRecordRepository(db, logger.Nop())

	mock.ExpectExec(`UPDATE user_encryption SET pin_hash = \?, pin_configured = \?, updated_at = \? WHERE user_id = \?`).
		WithArgs("hash", true, sqlmock.AnyArg(), "u1").
		WillReturnError(errors.New("locked"))

	err := repo.SavePinHash(context.Background(), "u1", "hash")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRecordRepository_GetPinState_HashWithoutFlag(t *testing.T) {
	db, mock := newMockDB(t, config.DriverSQLite)
	repo := NewUserRecordRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT pin_hash, pin_configured FROM user_encryption`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"pin_hash", "pin_configured"}).AddRow(nil, true))

	state, err := repo.GetPinState(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, state.Configured)
}
