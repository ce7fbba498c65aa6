package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain holds every cryptographic primitive the E2EE core relies on. It
// knows nothing about users, storage or sessions; it turns secrets into keys
// and keys into ciphertexts.
//
// Key hierarchy:
//
//	identityKey = DeriveKey(userID ‖ email ‖ pin, salt)     (PIN setup / unlock)
//	pinHash     = HashKey(identityKey)                       (stored server-side)
//	recordKey   = DeriveKey(identityKey, salt)               (fields and blobs)
type KeyChain interface {
	// GenerateSalt returns 32 bytes from the OS CSPRNG, hex-encoded.
	GenerateSalt() (string, error)

	// DeriveKey runs PBKDF2-HMAC-SHA512 over secret and salt and returns the
	// 256-bit result hex-encoded. The same inputs always yield the same key.
	DeriveKey(secret, salt string) string

	// HashKey returns the one-way verification hash of a derived key.
	HashKey(key string) string

	// HashesEqual compares two verification hashes in constant time.
	HashesEqual(a, b string) bool

	// EncryptWithKey encrypts plaintext with a hex key using AES-256-GCM and
	// returns base64(nonce ‖ ciphertext).
	EncryptWithKey(plaintext []byte, key string) (string, error)

	// DecryptWithKey reverses EncryptWithKey. It fails on a wrong key or on a
	// corrupted ciphertext (authentication tag mismatch).
	DecryptWithKey(ciphertext string, key string) ([]byte, error)

	// EncryptBytes encrypts an arbitrary blob and returns nonce ‖ ciphertext.
	EncryptBytes(blob []byte, key string) ([]byte, error)

	// DecryptBytes reverses EncryptBytes.
	DecryptBytes(blob []byte, key string) ([]byte, error)
}

// TextEncrypter is the general-purpose password-based text helper keyed by the
// application master key. It lives in its own key space, separate from the
// per-user keys produced by [KeyChain].
type TextEncrypter interface {
	// EncryptText returns an opaque base64 string.
	EncryptText(plaintext string) (string, error)

	// DecryptText returns the plaintext. A key/ciphertext mismatch yields an
	// empty string and no error, callers must treat "" as a possible failure.
	DecryptText(ciphertext string) (string, error)
}
