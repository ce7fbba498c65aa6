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

func TestDocumentRepository_SQLite_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentRepository(newSQLiteDB(t), logger.Nop())

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	older := models.Document{
		ID: "d1", UserID: "u1", FileName: "absence-1.pdf",
		StoragePath: "documents/u1/d1.pdf", Size: 10, IsEncrypted: true, CreatedAt: base,
	}
	newer := models.Document{
		ID: "d2", UserID: "u1", FileName: "absence-2.pdf",
		StoragePath: "documents/u1/d2.pdf", Size: 20, CreatedAt: base.Add(time.Hour),
	}
	foreign := models.Document{
		ID: "d3", UserID: "u2", FileName: "x.pdf",
		StoragePath: "documents/u2/d3.pdf", Size: 1, CreatedAt: base,
	}
	for _, d := range []models.Document{older, newer, foreign} {
		require.NoError(t, repo.SaveDocument(ctx, d))
	}

	got, err := repo.GetDocument(ctx, "u1", "d1")
	require.NoError(t, err)
	assert.Equal(t, older.StoragePath, got.StoragePath)
	assert.True(t, got.IsEncrypted)
	assert.Equal(t, int64(10), got.Size)

	_, err = repo.GetDocument(ctx, "u1", "d3")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	list, err := repo.ListDocuments(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "d2", list[0].ID)
	assert.Equal(t, "d1", list[1].ID)

	require.NoError(t, repo.DeleteDocument(ctx, "u1", "d1"))
	assert.ErrorIs(t, repo.DeleteDocument(ctx, "u1", "d1"), ErrDocumentNotFound)

	list, err = repo.ListDocuments(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDocumentRepository_ListDocuments_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		db, mock := newMockDB(t, config.DriverPostgres)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT .* FROM documents WHERE user_id = \$1 ORDER BY created_at DESC, id`).
			WithArgs("u1").
			WillReturnError(errors.New("down"))

		_, err := repo.ListDocuments(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan", func(t *testing.T) {
		db, mock := newMockDB(t, config.DriverPostgres)
		repo := NewDocumentRepository(db, logger.Nop())

		mock.ExpectQuery(`SELECT .* FROM documents`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("d1"))

		_, err := repo.ListDocuments(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestDocumentRepository_GetDocument_ArgsOrder(t *testing.T) {
	db, mock := newMockDB(t, config.DriverPostgres)
	repo := NewDocumentRepository(db, logger.Nop())

	// squirrel sorts sq.Eq keys: id before user_id
	mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2`).
		WithArgs("d1", "u1").
		WillReturnRows(sqlmock.NewRows(documentColumns))

	_, err := repo.GetDocument(context.Background(), "u1", "d1")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
