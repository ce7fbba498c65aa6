package crypto

import "errors"

var (
	// ErrNoMasterKey is returned when the text helper is used without a
	// configured master key.
	ErrNoMasterKey = errors.New("no master key configured")

	// ErrInvalidKey is returned when a hex key cannot be decoded into a
	// 256-bit AES key.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrCiphertextTooShort is returned when a ciphertext cannot even hold a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed wraps authentication failures of AES-GCM, which
	// almost always mean a wrong key or a corrupted ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrIterationsTooLow is returned when the configured KDF iteration count
	// is below the enforced minimum.
	ErrIterationsTooLow = errors.New("kdf iteration count is below the minimum")
)
