package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoUserID            = errors.New("no user ID given")

	ErrKeyNotResident             = errors.New("no encryption key resident")
	ErrKeyEstablishmentInProgress = errors.New("key establishment already in progress")
	ErrKeyOwnerMismatch           = errors.New("resident key belongs to another user")
	ErrPinNotConfigured           = errors.New("PIN is not configured")
	ErrPinAlreadyConfigured       = errors.New("PIN is already configured")
	ErrProfileUndecryptable       = errors.New("profile cannot be decrypted")

	ErrWrongPin        = errors.New("wrong PIN")
	ErrLockedOut       = errors.New("too many failed attempts")
	ErrBusy            = errors.New("another PIN submission is in progress")
	ErrSetupRolledBack = errors.New("PIN setup was rolled back")
)

// WrongPinError is returned by [AuthGate.Unlock] for a rejected PIN. It
// matches [ErrWrongPin] with errors.Is.
type WrongPinError struct {
	Remaining int
}

func (e *WrongPinError) Error() string {
	return fmt.Sprintf("wrong PIN, %d attempts left", e.Remaining)
}

func (e *WrongPinError) Is(target error) bool {
	return target == ErrWrongPin
}

// LockoutError is returned while unlocking is blocked. It matches
// [ErrLockedOut] with errors.Is.
type LockoutError struct {
	Until time.Time
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("too many failed attempts, locked until %s", e.Until.Format(time.RFC3339))
}

func (e *LockoutError) Is(target error) bool {
	return target == ErrLockedOut
}
