// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count accepted. It throttles
	// offline brute force of short PINs and must not be lowered without
	// revisiting the threat model.
	MinIterations = 10000

	// KeyLength is the derived key length in bytes (256 bits).
	KeyLength = 32

	// SaltLength is the per-user salt length in bytes before hex encoding.
	SaltLength = 32
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	iterations int
}

// NewKeyChain constructs a [KeyChain] running PBKDF2-HMAC-SHA512 with the
// given iteration count. Values below [MinIterations] are rejected.
func NewKeyChain(iterations int) (KeyChain, error) {
	if iterations == 0 {
		iterations = MinIterations
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrIterationsTooLow, iterations, MinIterations)
	}

	return &keyChain{iterations: iterations}, nil
}

// GenerateSalt implements [KeyChain]. It reads [SaltLength] bytes from the OS
// CSPRNG and hex-encodes them.
func (k *keyChain) GenerateSalt() (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read random salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// DeriveKey implements [KeyChain]. The salt is used as its textual (hex)
// representation, so a salt read back from storage derives the same key.
func (k *keyChain) DeriveKey(secret, salt string) string {
	key := pbkdf2.Key([]byte(secret), []byte(salt), k.iterations, KeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// HashKey implements [KeyChain]. It returns the hex SHA-512 digest of key.
func (k *keyChain) HashKey(key string) string {
	sum := sha512.Sum512([]byte(key))
	return hex.EncodeToString(sum[:])
}

// HashesEqual implements [KeyChain].
func (k *keyChain) HashesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// EncryptWithKey implements [KeyChain]. Output: base64(nonce ‖ ciphertext).
func (k *keyChain) EncryptWithKey(plaintext []byte, key string) (string, error) {
	blob, err := k.EncryptBytes(plaintext, key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptWithKey implements [KeyChain].
func (k *keyChain) DecryptWithKey(ciphertext string, key string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return k.DecryptBytes(blob, key)
}

// EncryptBytes implements [KeyChain]. A fresh random nonce is prepended to
// the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChain) EncryptBytes(blob []byte, key string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(nonce)+len(blob)+gcm.Overhead())
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, blob, nil), nil
}

// DecryptBytes implements [KeyChain].
func (k *keyChain) DecryptBytes(blob []byte, key string) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	// gcm.Open returns nil for an empty plaintext, callers expect a non-nil slice
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// newGCM decodes a hex key and builds an AES-256-GCM AEAD from it.
func newGCM(key string) (cipher.AEAD, error) {
	raw, err := hex.DecodeString(key)
	if err != nil || len(raw) != KeyLength {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
