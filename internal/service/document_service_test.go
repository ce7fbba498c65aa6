package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/mock"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/models"
)

type documentFixture struct {
	svc        *documentService
	documents  *mock.MockDocumentRepository
	blobs      *mock.MockBlobStorage
	encryption *mock.MockEncryptionService
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &documentFixture{
		documents:  mock.NewMockDocumentRepository(ctrl),
		blobs:      mock.NewMockBlobStorage(ctrl),
		encryption: mock.NewMockEncryptionService(ctrl),
	}
	f.svc = NewDocumentService(f.documents, f.blobs, f.encryption, logger.Nop()).(*documentService)
	f.svc.now = func() time.Time { return time.Date(2026, 10, 2, 7, 30, 0, 0, time.UTC) }
	return f
}

func TestDocumentService_Store_Encrypted(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)
	pdf := []byte("%PDF-1.7 absence form")

	var blobPath string
	f.encryption.EXPECT().IsInitialized().Return(true)
	f.encryption.EXPECT().EncryptBlob(ctx, pdf, "u1").Return([]byte("sealed"), nil)
	f.blobs.EXPECT().Put(ctx, gomock.Any(), []byte("sealed")).DoAndReturn(func(_ context.Context, p string, _ []byte) error {
		blobPath = p
		return nil
	})
	f.documents.EXPECT().SaveDocument(ctx, gomock.Any()).Return(nil)

	doc, err := f.svc.Store(ctx, "u1", " Entschuldigung.pdf ", pdf)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "u1", doc.UserID)
	assert.Equal(t, "Entschuldigung.pdf", doc.FileName)
	assert.Equal(t, "documents/u1/"+doc.ID+".pdf", doc.StoragePath)
	assert.Equal(t, blobPath, doc.StoragePath)
	assert.Equal(t, int64(len(pdf)), doc.Size)
	assert.True(t, doc.IsEncrypted)
	assert.Equal(t, f.svc.now(), doc.CreatedAt)
}

func TestDocumentService_Store_NoKeyStoresPlain(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)
	pdf := []byte("%PDF")

	f.encryption.EXPECT().IsInitialized().Return(false)
	f.blobs.EXPECT().Put(ctx, gomock.Any(), pdf).Return(nil)
	f.documents.EXPECT().SaveDocument(ctx, gomock.Any()).Return(nil)

	doc, err := f.svc.Store(ctx, "u1", "form.pdf", pdf)
	require.NoError(t, err)
	assert.False(t, doc.IsEncrypted)
}

func TestDocumentService_Store_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		f := newDocumentFixture(t)
		_, err := f.svc.Store(ctx, "", "form.pdf", nil)
		assert.ErrorIs(t, err, ErrNoUserID)
		_, err = f.svc.Store(ctx, "u1", "  ", nil)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("encryption failure writes nothing", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.encryption.EXPECT().IsInitialized().Return(true)
		f.encryption.EXPECT().EncryptBlob(ctx, gomock.Any(), "u1").Return(nil, ErrKeyOwnerMismatch)

		_, err := f.svc.Store(ctx, "u1", "form.pdf", []byte("%PDF"))
		assert.ErrorIs(t, err, ErrKeyOwnerMismatch)
	})

	t.Run("blob failure", func(t *testing.T) {
		f := newDocumentFixture(t)
		putErr := errors.New("bucket unavailable")
		f.encryption.EXPECT().IsInitialized().Return(false)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any()).Return(putErr)

		_, err := f.svc.Store(ctx, "u1", "form.pdf", []byte("%PDF"))
		assert.ErrorIs(t, err, putErr)
	})

	t.Run("metadata failure removes blob", func(t *testing.T) {
		f := newDocumentFixture(t)
		dbErr := errors.New("constraint")
		var blobPath string
		f.encryption.EXPECT().IsInitialized().Return(false)
		f.blobs.EXPECT().Put(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p string, _ []byte) error {
			blobPath = p
			return nil
		})
		f.documents.EXPECT().SaveDocument(ctx, gomock.Any()).Return(dbErr)
		f.blobs.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p string) error {
			assert.Equal(t, blobPath, p)
			return nil
		})

		_, err := f.svc.Store(ctx, "u1", "form.pdf", []byte("%PDF"))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestDocumentService_Load(t *testing.T) {
	ctx := context.Background()
	encrypted := models.Document{ID: "d1", UserID: "u1", StoragePath: "documents/u1/d1.pdf", IsEncrypted: true}

	t.Run("decrypts", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(encrypted, nil)
		f.blobs.EXPECT().Get(ctx, "documents/u1/d1.pdf").Return([]byte("sealed"), nil)
		f.encryption.EXPECT().DecryptBlob(ctx, []byte("sealed"), "u1").Return([]byte("%PDF"), nil)

		doc, data, err := f.svc.Load(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.Equal(t, encrypted, doc)
		assert.Equal(t, []byte("%PDF"), data)
	})

	t.Run("plain document", func(t *testing.T) {
		f := newDocumentFixture(t)
		plain := encrypted
		plain.IsEncrypted = false
		f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(plain, nil)
		f.blobs.EXPECT().Get(ctx, "documents/u1/d1.pdf").Return([]byte("%PDF"), nil)

		_, data, err := f.svc.Load(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), data)
	})

	t.Run("no key", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(encrypted, nil)
		f.blobs.EXPECT().Get(ctx, gomock.Any()).Return([]byte("sealed"), nil)
		f.encryption.EXPECT().DecryptBlob(ctx, gomock.Any(), "u1").Return(nil, ErrKeyNotResident)

		_, _, err := f.svc.Load(ctx, "u1", "d1")
		assert.ErrorIs(t, err, ErrKeyNotResident)
	})

	t.Run("missing", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(models.Document{}, store.ErrDocumentNotFound)

		_, _, err := f.svc.Load(ctx, "u1", "d1")
		assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	})
}

func TestDocumentService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newDocumentFixture(t)
	doc := models.Document{ID: "d1", UserID: "u1", StoragePath: "documents/u1/d1.pdf"}

	f.documents.EXPECT().ListDocuments(ctx, "u1").Return([]models.Document{doc}, nil)
	docs, err := f.svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	_, err = f.svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrNoUserID)

	// an already missing blob does not block metadata removal
	f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(doc, nil)
	f.blobs.EXPECT().Delete(ctx, doc.StoragePath).Return(store.ErrBlobNotFound)
	f.documents.EXPECT().DeleteDocument(ctx, "u1", "d1").Return(nil)
	require.NoError(t, f.svc.Delete(ctx, "u1", "d1"))

	blobErr := errors.New("permission denied")
	f.documents.EXPECT().GetDocument(ctx, "u1", "d1").Return(doc, nil)
	f.blobs.EXPECT().Delete(ctx, doc.StoragePath).Return(blobErr)
	assert.ErrorIs(t, f.svc.Delete(ctx, "u1", "d1"), blobErr)
}
