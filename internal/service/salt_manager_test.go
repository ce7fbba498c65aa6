package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/mock"
)

func newTestSaltManager(t *testing.T, ctrl *gomock.Controller) (SaltManager, *mock.MockUserRecordRepository, *mock.MockKeyChain) {
	t.Helper()
	records := mock.NewMockUserRecordRepository(ctrl)
	keyChain := mock.NewMockKeyChain(ctrl)
	return NewSaltManager(records, keyChain, logger.Nop()), records, keyChain
}

func TestSaltManager_ExistingDurableSaltIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, _ := newTestSaltManager(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("stored-salt", nil).Times(1)

	s1, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	s2, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "stored-salt", s1)
	assert.Equal(t, s1, s2)
}

func TestSaltManager_GeneratesAndPersistsOnFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, keyChain := newTestSaltManager(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("", nil),
		keyChain.EXPECT().GenerateSalt().Return("fresh-salt", nil),
		records.EXPECT().CreateEncryptionSalt(ctx, "u1", "fresh-salt").Return("fresh-salt", nil),
	)

	salt, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-salt", salt)

	// served from the local cache now
	salt, err = svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "fresh-salt", salt)
}

func TestSaltManager_FirstWriterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, keyChain := newTestSaltManager(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("", nil)
	keyChain.EXPECT().GenerateSalt().Return("mine", nil)
	records.EXPECT().CreateEncryptionSalt(ctx, "u1", "mine").Return("theirs", nil)

	salt, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "theirs", salt)
}

func TestSaltManager_PersistFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, keyChain := newTestSaltManager(t, ctrl)
	ctx := context.Background()
	storeErr := errors.New("backend unreachable")

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("", nil).Times(2)
	keyChain.EXPECT().GenerateSalt().Return("s1", nil)
	keyChain.EXPECT().GenerateSalt().Return("s2", nil)
	records.EXPECT().CreateEncryptionSalt(ctx, "u1", "s1").Return("", storeErr)
	records.EXPECT().CreateEncryptionSalt(ctx, "u1", "s2").Return("s2", nil)

	_, err := svc.GetSaltForUser(ctx, "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	// nothing was cached, the next call goes to the store again
	salt, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s2", salt)
}

func TestSaltManager_ReadFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, _ := newTestSaltManager(t, ctrl)
	ctx := context.Background()
	readErr := errors.New("timeout")

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("", readErr)

	_, err := svc.GetSaltForUser(ctx, "u1")
	assert.ErrorIs(t, err, readErr)
}

func TestSaltManager_GenerateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, keyChain := newTestSaltManager(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("", nil)
	keyChain.EXPECT().GenerateSalt().Return("", errors.New("entropy"))

	_, err := svc.GetSaltForUser(ctx, "u1")
	assert.Error(t, err)
}

func TestSaltManager_ClearOnlyDropsLocalCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, _ := newTestSaltManager(t, ctrl)
	ctx := context.Background()

	records.EXPECT().GetEncryptionSalt(ctx, "u1").Return("stored-salt", nil).Times(2)

	s1, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)

	svc.ClearSaltForUser("u1")
	svc.ClearSaltForUser("unknown")

	s2, err := svc.GetSaltForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestSaltManager_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSaltManager(t, ctrl)

	_, err := svc.GetSaltForUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoUserID)
}
