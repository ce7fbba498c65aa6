package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

func TestProfileRepository_SQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(newSQLiteDB(t), logger.Nop())

	_, err := repo.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	birth := time.Date(2015, 3, 14, 0, 0, 0, 0, time.UTC)
	plain := models.Profile{
		UserID:    "u1",
		School:    "Grundschule Nord",
		ClassName: "4b",
		Locale:    "de",
		Sensitive: models.SensitiveProfile{
			FullName:     "Alice Example",
			BirthDate:    &birth,
			ContactEmail: "parent@x.test",
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, repo.SaveProfile(ctx, plain))

	got, err := repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Grundschule Nord", got.School)
	assert.Equal(t, "Alice Example", got.Sensitive.FullName)
	require.NotNil(t, got.Sensitive.BirthDate)
	assert.True(t, birth.Equal(*got.Sensitive.BirthDate))
	assert.False(t, got.IsEncrypted)

	// replace with the encrypted form
	encrypted := models.Profile{
		UserID:         "u1",
		School:         "Grundschule Nord",
		ClassName:      "4c",
		EncryptedData:  "Y2lwaGVy",
		EncryptionSalt: "salt",
		IsEncrypted:    true,
		CreatedAt:      created.Add(time.Hour),
		UpdatedAt:      created.Add(time.Hour),
	}
	require.NoError(t, repo.SaveProfile(ctx, encrypted))

	got, err = repo.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "4c", got.ClassName)
	assert.True(t, got.IsEncrypted)
	assert.Equal(t, "Y2lwaGVy", got.EncryptedData)
	assert.Equal(t, "salt", got.EncryptionSalt)
	assert.True(t, got.Sensitive.IsZero())
	assert.True(t, created.Equal(got.CreatedAt), "created_at must survive upsert")
	assert.True(t, created.Add(time.Hour).Equal(got.UpdatedAt))

	require.NoError(t, repo.DeleteProfile(ctx, "u1"))
	_, err = repo.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_SaveProfile_ExecError(t *testing.T) {
	db, mock := newMockDB(t, config.DriverPostgres)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO profiles .* ON CONFLICT \(user_id\) DO UPDATE SET`).
		WillReturnError(errors.New("boom"))

	err := repo.SaveProfile(context.Background(), models.Profile{UserID: "u1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetProfile_ScanError(t *testing.T) {
	db, mock := newMockDB(t, config.DriverSQLite)
	repo := NewProfileRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .* FROM profiles WHERE user_id = \?`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("u1"))

	_, err := repo.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrScanningRow)
}
