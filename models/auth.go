package models

// AuthStep is the next action the caller has to take for an identity.
type AuthStep int

const (
	// StepReady means a key is resident and no PIN entry is needed.
	StepReady AuthStep = iota
	// StepSetup means the user has no PIN yet and must choose one.
	StepSetup
	// StepUnlock means the user must enter the existing PIN.
	StepUnlock
)

// String implements [fmt.Stringer].
func (s AuthStep) String() string {
	switch s {
	case StepReady:
		return "ready"
	case StepSetup:
		return "setup"
	case StepUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}
