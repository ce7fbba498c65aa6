package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

func TestDeviceKeyCache_InMemory(t *testing.T) {
	ctx := context.Background()
	c, err := NewDeviceKeyCache("", nil, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"userId":"u1"}`), time.Hour))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1"}`, string(got))

	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, c.RunGC())
}

func TestDeviceKeyCache_TTLExpires(t *testing.T) {
	ctx := context.Background()
	c, err := NewDeviceKeyCache("", nil, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	// badger TTL has second granularity
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.Eventually(t, func() bool {
		_, err := c.Get(ctx, "k")
		return err == ErrCacheMiss
	}, 5*time.Second, 100*time.Millisecond)
}

func TestDeviceKeyCache_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := NewDeviceKeyCache(dir, nil, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, c.Close())

	c, err = NewDeviceKeyCache(dir, nil, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestDeviceKeyCache_WrappedWithTextCipher(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tc, err := crypto.NewTextCipher("device-master", crypto.MinIterations)
	require.NoError(t, err)

	c, err := NewDeviceKeyCache(dir, tc, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k", []byte("secret-key"), time.Hour))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret-key"), got)
	require.NoError(t, c.Close())

	// raw value at rest is not the plaintext
	raw, err := NewDeviceKeyCache(dir, nil, logger.Nop())
	require.NoError(t, err)
	stored, err := raw.Get(ctx, "k")
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "secret-key")
	require.NoError(t, raw.Close())

	// a different master key cannot unwrap: treated as a miss
	other, err := crypto.NewTextCipher("other-master", crypto.MinIterations)
	require.NoError(t, err)
	c, err = NewDeviceKeyCache(dir, other, logger.Nop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
