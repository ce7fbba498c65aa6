// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the encryption
// core: PIN format on setup and unlock ([PinValidator]) and the absence-form
// profile before it is encrypted and stored ([ProfileValidator]).
//
// Failures wrap the sentinel errors of errors.go, so callers branch with
// [errors.Is] and show the wrapped text to the user.
package validators

import "context"

// Validator checks a value. When fields are given only those named fields
// are checked; an empty list checks everything the implementation knows.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
