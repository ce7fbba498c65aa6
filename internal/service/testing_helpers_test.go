package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/models"
)

var alice = models.Identity{UserID: "u1", Email: "a@x.test"}

// memoryUserRecords is an in-memory [store.UserRecordRepository] with error
// injection.
type memoryUserRecords struct {
	mu      sync.Mutex
	records map[string]models.UserRecord

	saveErr  error
	clearErr error
	getErr   error

	saves int
}

func newMemoryUserRecords() *memoryUserRecords {
	return &memoryUserRecords{records: map[string]models.UserRecord{}}
}

func (m *memoryUserRecords) GetEncryptionSalt(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[userID].EncryptionSalt, nil
}

func (m *memoryUserRecords) CreateEncryptionSalt(_ context.Context, userID, salt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[userID]
	if !ok || rec.EncryptionSalt == "" {
		rec.UserID = userID
		rec.EncryptionSalt = salt
		m.records[userID] = rec
	}
	return m.records[userID].EncryptionSalt, nil
}

func (m *memoryUserRecords) GetPinState(_ context.Context, userID string) (models.PinState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return models.PinState{}, m.getErr
	}
	rec := m.records[userID]
	return models.PinState{Hash: rec.PinHash, Configured: rec.PinConfigured}, nil
}

func (m *memoryUserRecords) SavePinHash(_ context.Context, userID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	rec, ok := m.records[userID]
	if !ok {
		return store.ErrUserRecordNotFound
	}
	rec.PinHash = hash
	rec.PinConfigured = true
	m.records[userID] = rec
	return nil
}

func (m *memoryUserRecords) ClearPinHash(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	rec := m.records[userID]
	rec.PinHash = ""
	rec.PinConfigured = false
	if rec.UserID != "" {
		m.records[userID] = rec
	}
	return nil
}

func (m *memoryUserRecords) DeleteEncryptionState(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, userID)
	return nil
}

func (m *memoryUserRecords) record(userID string) models.UserRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[userID]
}

// encryptionFixture wires a real encryption service on in-memory backends.
type encryptionFixture struct {
	svc      *encryptionService
	records  *memoryUserRecords
	salts    SaltManager
	keyChain crypto.KeyChain
	session  *store.SessionKeyCache
	device   *store.SessionKeyCache
	clock    *fakeClock
}

func newEncryptionFixture(t *testing.T) *encryptionFixture {
	t.Helper()

	keyChain, err := crypto.NewKeyChain(crypto.MinIterations)
	require.NoError(t, err)

	records := newMemoryUserRecords()
	salts := NewSaltManager(records, keyChain, logger.Nop())
	session := store.NewSessionKeyCache()
	device := store.NewSessionKeyCache()
	clock := newFakeClock()
	clock.t = time.Now()

	svc := NewEncryptionService(EncryptionDeps{
		KeyChain:     keyChain,
		Salts:        salts,
		Records:      records,
		SessionCache: session,
		DeviceCache:  device,
	}, EncryptionConfig{}, logger.Nop()).(*encryptionService)
	svc.now = clock.Now

	return &encryptionFixture{
		svc:      svc,
		records:  records,
		salts:    salts,
		keyChain: keyChain,
		session:  session,
		device:   device,
		clock:    clock,
	}
}
