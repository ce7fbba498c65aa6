package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDocument inserts the metadata row of doc.
func (d *documentRepository) SaveDocument(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	query, args, err := d.buildInsertDocumentQuery(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.SaveDocument").
			Str("user_id", doc.UserID).
			Str("document_id", doc.ID).
			Bool("retryable", d.retryable(err)).
			Msg("failed to save document")
		return d.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// GetDocument returns the document id of userID or [ErrDocumentNotFound].
func (d *documentRepository) GetDocument(ctx context.Context, userID, id string) (models.Document, error) {
	query, args, err := d.buildGetDocumentQuery(userID, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	err = scanDocument(d.DB.QueryRowContext(ctx, query, args...), &doc)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrDocumentNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.GetDocument").
			Str("user_id", userID).
			Str("document_id", id).
			Msg("failed to read document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// ListDocuments returns all documents of userID, newest first.
func (d *documentRepository) ListDocuments(ctx context.Context, userID string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := d.buildListDocumentsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.ListDocuments").
			Str("user_id", userID).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 8)
	for rows.Next() {
		var doc models.Document
		if err = scanDocument(rows, &doc); err != nil {
			log.Err(err).
				Str("func", "documentRepository.ListDocuments").
				Str("user_id", userID).
				Int("scanned", len(docs)).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

// DeleteDocument removes the metadata row. Returns [ErrDocumentNotFound] if
// nothing matched.
func (d *documentRepository) DeleteDocument(ctx context.Context, userID, id string) error {
	query, args, err := d.buildDeleteDocumentQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.DeleteDocument").
			Str("user_id", userID).
			Str("document_id", id).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, doc *models.Document) error {
	return row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&doc.StoragePath,
		&doc.Size,
		&doc.IsEncrypted,
		&doc.CreatedAt,
	)
}
