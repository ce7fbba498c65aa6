// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
)

// EncryptedPayload is the result of encrypting a structured record. It is only
// decryptable with the exact key and salt pair that produced it.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext"`
	Salt       string `json:"salt"`
}

// DecryptResult is the outcome of a record decryption. Wrong keys and corrupted
// ciphertexts are expected states, so they are reported here instead of
// through an error.
type DecryptResult struct {
	// Success is true when Plaintext holds the decrypted canonical record.
	Success bool

	// Plaintext is the canonical (JSON) serialization of the record.
	Plaintext []byte

	// Reason is a human-readable explanation when Success is false.
	Reason string
}

// ErrDecryptResultFailed is returned by [DecryptResult.Decode] for failed results.
var ErrDecryptResultFailed = errors.New("decryption did not succeed")

// DecryptSuccess builds a successful result.
func DecryptSuccess(plaintext []byte) DecryptResult {
	return DecryptResult{Success: true, Plaintext: plaintext}
}

// DecryptFailure builds a failed result with the given reason.
func DecryptFailure(reason string) DecryptResult {
	return DecryptResult{Reason: reason}
}

// Decode unmarshals the plaintext into target (same contract as
// [json.Unmarshal]).
func (r DecryptResult) Decode(target any) error {
	if !r.Success {
		return ErrDecryptResultFailed
	}
	return json.Unmarshal(r.Plaintext, target)
}
