package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/app"
	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/service"
	"github.com/MKhiriev/go-absence-keeper/internal/validators"
	"github.com/MKhiriev/go-absence-keeper/internal/workers"
	"github.com/MKhiriev/go-absence-keeper/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrPinMismatch    = errors.New("PINs do not match")
)

const usage = `usage: absence-keeper [flags] <command>

commands:
  status                    show whether the key is unlocked
  setup                     set up a PIN for this account
  unlock                    unlock with the PIN
  logout                    forget the key on this device
  reset                     delete the encryption salt and PIN of this account
  profile show              print the decrypted profile
  profile set <file.json>   save the profile from a JSON file
  pdf store <file.pdf>      store an absence form PDF
  pdf load <id> <out.pdf>   write a stored PDF to out.pdf
  pdf list                  list stored PDFs
  pdf delete <id>           delete a stored PDF
`

type App struct {
	services *service.Services
	identity models.Identity
	session  config.Session
	prompt   PinPrompter
	workers  *workers.Workers
	out      io.Writer

	logger *logger.Logger
}

// NewApp wires the command runtime for identity. workers may be nil.
func NewApp(services *service.Services, identity models.Identity, session config.Session, prompt PinPrompter,
	workers *workers.Workers, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if identity.UserID == "" {
		return nil, service.ErrNoUserID
	}

	return &App{
		services: services,
		identity: identity,
		session:  session,
		prompt:   prompt,
		workers:  workers,
		out:      out,
		logger:   logger,
	}, nil
}

// Run implements [Client]. Errors of the encryption core are reported to the
// user as a message and returned unchanged.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrMissingArgs
	}

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	ctx = a.logger.WithOperation(ctx, args[0])

	err := a.dispatch(ctx, args)
	if err != nil && !errors.Is(err, ErrUnknownCommand) && !errors.Is(err, ErrMissingArgs) {
		fmt.Fprintln(a.out, app.UserMessage(err, a.session.Locale, time.Local))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "status":
		return a.status(ctx)
	case "setup":
		return a.setup(ctx)
	case "unlock":
		return a.unlock(ctx)
	case "logout":
		return a.logout(ctx)
	case "reset":
		return a.reset(ctx)
	case "profile":
		return a.profile(ctx, args[1:])
	case "pdf":
		return a.pdf(ctx, args[1:])
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) status(ctx context.Context) error {
	step, err := a.services.AuthGate.Begin(ctx, a.identity)
	if err != nil {
		return err
	}

	switch step {
	case models.StepReady:
		fmt.Fprintln(a.out, "unlocked")
	case models.StepUnlock:
		fmt.Fprintln(a.out, "locked")
	default:
		fmt.Fprintln(a.out, "no PIN set up")
	}
	return nil
}

func (a *App) setup(ctx context.Context) error {
	pin, err := a.prompt.ReadPin("New PIN: ")
	if err != nil {
		return err
	}
	confirm, err := a.prompt.ReadPin("Repeat PIN: ")
	if err != nil {
		return err
	}
	if pin != confirm {
		fmt.Fprintln(a.out, "The PINs do not match.")
		return ErrPinMismatch
	}

	if err = a.services.AuthGate.Setup(ctx, a.identity, pin, a.session.RememberDevice); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "PIN set up, data is now encrypted")
	return nil
}

func (a *App) unlock(ctx context.Context) error {
	step, err := a.services.AuthGate.Begin(ctx, a.identity)
	if err != nil {
		return err
	}

	switch step {
	case models.StepReady:
		fmt.Fprintln(a.out, "already unlocked")
		return nil
	case models.StepSetup:
		return service.ErrPinNotConfigured
	}

	// a wrong PIN asks again until the PIN is accepted, the account locks
	// or the input ends
	var rejected error
	for {
		prompt := "PIN: "
		if rejected != nil {
			prompt = app.UserMessage(rejected, a.session.Locale, time.Local) + "\nPIN: "
		}

		pin, err := a.prompt.ReadPin(prompt)
		if err != nil {
			if rejected != nil {
				return rejected
			}
			return err
		}

		err = a.services.AuthGate.Unlock(ctx, a.identity, pin, a.session.RememberDevice)
		switch {
		case err == nil:
			fmt.Fprintln(a.out, "unlocked")
			return nil
		case errors.Is(err, service.ErrWrongPin), isInvalidPin(err):
			rejected = err
		default:
			return err
		}
	}
}

func isInvalidPin(err error) bool {
	return errors.Is(err, validators.ErrPinTooShort) ||
		errors.Is(err, validators.ErrPinTooLong) ||
		errors.Is(err, validators.ErrPinNotNumeric)
}

func (a *App) logout(ctx context.Context) error {
	if err := a.services.AuthGate.Logout(ctx, a.identity); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out, the PIN is needed to unlock again")
	return nil
}

// ensureUnlocked makes the key resident, asking for the PIN when no cache
// holds it. Accounts without a PIN run without encryption.
func (a *App) ensureUnlocked(ctx context.Context) error {
	step, err := a.services.AuthGate.Begin(ctx, a.identity)
	if err != nil {
		return err
	}
	if step != models.StepUnlock {
		return nil
	}
	return a.unlock(ctx)
}

func (a *App) reset(ctx context.Context) error {
	if err := a.services.Encryption.ResetEncryptionState(ctx, a.identity.UserID); err != nil {
		return err
	}
	a.services.Attempts.ClearAttempts()
	fmt.Fprintln(a.out, "encryption state reset")
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrMissingArgs
	}
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		profile, err := a.services.Profiles.Load(ctx, a.identity.UserID)
		if err != nil {
			return err
		}
		return a.printJSON(profile)
	case "set":
		if len(args) < 2 {
			return ErrMissingArgs
		}
		profile, err := readProfile(args[1])
		if err != nil {
			return err
		}
		profile.UserID = a.identity.UserID
		if _, err = a.services.Profiles.Save(ctx, profile); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "profile saved")
		return nil
	case "delete":
		return a.services.Profiles.Delete(ctx, a.identity.UserID)
	default:
		return fmt.Errorf("%w: profile %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) pdf(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrMissingArgs
	}
	if err := a.ensureUnlocked(ctx); err != nil {
		return err
	}

	userID := a.identity.UserID
	switch args[0] {
	case "store":
		if len(args) < 2 {
			return ErrMissingArgs
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[1], err)
		}
		doc, err := a.services.Documents.Store(ctx, userID, filepath.Base(args[1]), data)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, doc.ID)
		return nil
	case "load":
		if len(args) < 3 {
			return ErrMissingArgs
		}
		_, data, err := a.services.Documents.Load(ctx, userID, args[1])
		if err != nil {
			return err
		}
		if err = os.WriteFile(args[2], data, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", args[2], err)
		}
		return nil
	case "list":
		docs, err := a.services.Documents.List(ctx, userID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(docs))
		for _, d := range docs {
			rows = append(rows, []string{
				d.ID, d.FileName, strconv.FormatInt(d.Size, 10), strconv.FormatBool(d.IsEncrypted), d.CreatedAt.Format(time.DateTime),
			})
		}
		return writeTable(a.out, []string{"ID", "FILE", "SIZE", "ENCRYPTED", "CREATED"}, rows)
	case "delete":
		if len(args) < 2 {
			return ErrMissingArgs
		}
		return a.services.Documents.Delete(ctx, userID, args[1])
	default:
		return fmt.Errorf("%w: pdf %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readProfile(path string) (models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read %s: %w", path, err)
	}
	var profile models.Profile
	if err = json.Unmarshal(data, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}
