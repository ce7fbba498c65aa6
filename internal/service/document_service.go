package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/utils"
	"github.com/MKhiriev/go-absence-keeper/models"
)

type documentService struct {
	documents  store.DocumentRepository
	blobs      store.BlobStorage
	encryption EncryptionService
	ids        *utils.DocumentIDs
	now        func() time.Time

	logger *logger.Logger
}

// NewDocumentService returns a [DocumentService] keeping bytes in blobs and
// metadata in documents.
func NewDocumentService(documents store.DocumentRepository, blobs store.BlobStorage, encryption EncryptionService, logger *logger.Logger) DocumentService {
	return &documentService{
		documents:  documents,
		blobs:      blobs,
		encryption: encryption,
		ids:        utils.NewDocumentIDs(documentsPrefix),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

const documentsPrefix = "documents"

// Store encrypts pdf when a key is resident and writes it under
// documents/<userID>/<id>.pdf. If the metadata cannot be saved the blob is
// removed again.
func (s *documentService) Store(ctx context.Context, userID, fileName string, pdf []byte) (models.Document, error) {
	if userID == "" {
		return models.Document{}, ErrNoUserID
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return models.Document{}, fmt.Errorf("%w: empty file name", ErrInvalidDataProvided)
	}

	log := logger.FromContext(ctx)

	data, encrypted := pdf, false
	if s.encryption.IsInitialized() {
		var err error
		if data, err = s.encryption.EncryptBlob(ctx, pdf, userID); err != nil {
			return models.Document{}, fmt.Errorf("encrypt document: %w", err)
		}
		encrypted = true
	} else {
		log.Warn().Str("user_id", userID).Msg("no key resident, storing document unencrypted")
	}

	id, blobPath := s.ids.Next(userID)
	doc := models.Document{
		ID:          id,
		UserID:      userID,
		FileName:    fileName,
		StoragePath: blobPath,
		Size:        int64(len(pdf)),
		IsEncrypted: encrypted,
		CreatedAt:   s.now(),
	}

	if err := s.blobs.Put(ctx, doc.StoragePath, data); err != nil {
		return models.Document{}, fmt.Errorf("write document blob: %w", err)
	}

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		if delErr := s.blobs.Delete(ctx, doc.StoragePath); delErr != nil {
			log.Err(delErr).Str("path", doc.StoragePath).Msg("failed to remove orphaned blob")
		}
		return models.Document{}, fmt.Errorf("save document metadata: %w", err)
	}

	return doc, nil
}

// Load returns the metadata and the plaintext bytes of a document. Loading
// an encrypted document requires a resident key.
func (s *documentService) Load(ctx context.Context, userID, id string) (models.Document, []byte, error) {
	doc, err := s.documents.GetDocument(ctx, userID, id)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("get document: %w", err)
	}

	data, err := s.blobs.Get(ctx, doc.StoragePath)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("read document blob: %w", err)
	}

	if doc.IsEncrypted {
		if data, err = s.encryption.DecryptBlob(ctx, data, userID); err != nil {
			return models.Document{}, nil, fmt.Errorf("decrypt document: %w", err)
		}
	}

	return doc, data, nil
}

// List returns the metadata of every document of userID, newest first.
func (s *documentService) List(ctx context.Context, userID string) ([]models.Document, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	docs, err := s.documents.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete removes the blob and the metadata of a document. A blob that is
// already gone is not an error.
func (s *documentService) Delete(ctx context.Context, userID, id string) error {
	doc, err := s.documents.GetDocument(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	if err = s.blobs.Delete(ctx, doc.StoragePath); err != nil && !errors.Is(err, store.ErrBlobNotFound) {
		return fmt.Errorf("delete document blob: %w", err)
	}

	if err = s.documents.DeleteDocument(ctx, userID, id); err != nil {
		return fmt.Errorf("delete document metadata: %w", err)
	}
	return nil
}
