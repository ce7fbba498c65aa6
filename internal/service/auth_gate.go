package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/validators"
	"github.com/MKhiriev/go-absence-keeper/models"
)

type authGate struct {
	encryption EncryptionService
	attempts   AttemptManager
	pins       validators.Validator

	busy atomic.Bool

	logger *logger.Logger
}

// NewAuthGate returns an [AuthGate] driving encryption and attempts. pins
// validates PIN input before any derivation is started.
func NewAuthGate(encryption EncryptionService, attempts AttemptManager, pins validators.Validator, logger *logger.Logger) AuthGate {
	return &authGate{encryption: encryption, attempts: attempts, pins: pins, logger: logger}
}

// Begin implements [AuthGate].
func (g *authGate) Begin(ctx context.Context, identity models.Identity) (models.AuthStep, error) {
	if identity.UserID == "" {
		return models.StepSetup, ErrNoUserID
	}

	if g.encryption.RestoreKeyForUser(ctx, identity.UserID) {
		return models.StepReady, nil
	}

	configured, err := g.encryption.IsPinConfigured(ctx, identity.UserID)
	if err != nil {
		return models.StepSetup, err
	}
	if configured {
		return models.StepUnlock, nil
	}
	return models.StepSetup, nil
}

// Setup implements [AuthGate]. When storing the new key fails, the setup is
// reverted and the returned error matches [ErrSetupRolledBack].
func (g *authGate) Setup(ctx context.Context, identity models.Identity, pin string, rememberDevice bool) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer g.busy.Store(false)

	if err := g.pins.Validate(ctx, pin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	configured, err := g.encryption.IsPinConfigured(ctx, identity.UserID)
	if err != nil {
		return err
	}
	if configured {
		return ErrPinAlreadyConfigured
	}

	if err = g.encryption.InitializeKeyForFirstTimeSetup(ctx, identity, pin); err != nil {
		return err
	}

	if err = g.encryption.StoreCurrentKey(ctx, identity.UserID, rememberDevice); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", identity.UserID).Msg("storing key after setup failed, rolling back")
		if revertErr := g.encryption.RevertKeySetup(ctx, identity.UserID); revertErr != nil {
			return errors.Join(fmt.Errorf("%w: %w", ErrSetupRolledBack, err), revertErr)
		}
		return fmt.Errorf("%w: %w", ErrSetupRolledBack, err)
	}

	g.attempts.ClearAttempts()
	return nil
}

// Unlock implements [AuthGate]. The lockout is checked before any key
// derivation takes place.
func (g *authGate) Unlock(ctx context.Context, identity models.Identity, pin string, rememberDevice bool) error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer g.busy.Store(false)

	if status := g.attempts.IsLockedOut(); status.Locked {
		return &LockoutError{Until: status.Until}
	}

	if err := g.pins.Validate(ctx, pin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ok, err := g.encryption.VerifyPin(ctx, identity, pin)
	if err != nil {
		return err
	}
	if !ok {
		status := g.attempts.RecordFailedAttempt()
		if status.Locked {
			logger.FromContext(ctx).Warn().Str("user_id", identity.UserID).Time("until", status.Until).Msg("unlock locked out")
			return &LockoutError{Until: status.Until}
		}
		return &WrongPinError{Remaining: status.Remaining}
	}

	g.attempts.ClearAttempts()

	if err = g.encryption.StoreCurrentKey(ctx, identity.UserID, rememberDevice); err != nil {
		return fmt.Errorf("store unlocked key: %w", err)
	}
	return nil
}

// Logout implements [AuthGate].
func (g *authGate) Logout(ctx context.Context, identity models.Identity) error {
	if identity.UserID == "" {
		return ErrNoUserID
	}

	err := g.encryption.ClearKeyForUser(ctx, identity.UserID)
	// a running lockout outlives the session
	if !g.attempts.IsLockedOut().Locked {
		g.attempts.ClearAttempts()
	}
	return err
}
