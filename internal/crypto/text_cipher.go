package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const textSaltLength = 16

// textCipher is the private implementation of [TextEncrypter].
type textCipher struct {
	masterKey  []byte
	iterations int
}

// NewTextCipher constructs a [TextEncrypter] keyed by masterKey. Every message
// gets its own random salt; the AES key is PBKDF2(masterKey, salt).
//
// Returns [ErrNoMasterKey] when masterKey is empty.
func NewTextCipher(masterKey string, iterations int) (TextEncrypter, error) {
	if masterKey == "" {
		return nil, ErrNoMasterKey
	}
	if iterations == 0 {
		iterations = MinIterations
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrIterationsTooLow, iterations, MinIterations)
	}

	return &textCipher{masterKey: []byte(masterKey), iterations: iterations}, nil
}

// EncryptText implements [TextEncrypter].
// Output: base64(salt ‖ nonce ‖ ciphertext).
func (t *textCipher) EncryptText(plaintext string) (string, error) {
	salt := make([]byte, textSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := t.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptText implements [TextEncrypter]. Malformed input and wrong master
// keys both produce "" with a nil error.
func (t *textCipher) DecryptText(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil || len(blob) < textSaltLength {
		return "", nil
	}

	salt, rest := blob[:textSaltLength], blob[textSaltLength:]
	gcm, err := t.gcm(salt)
	if err != nil {
		return "", err
	}

	if len(rest) < gcm.NonceSize() {
		return "", nil
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", nil
	}
	return string(plaintext), nil
}

func (t *textCipher) gcm(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(t.masterKey, salt, t.iterations, KeyLength, sha512.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
