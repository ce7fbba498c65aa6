package models

import "time"

// LockoutStatus is a snapshot of the failed-unlock counter.
type LockoutStatus struct {
	Locked    bool
	Until     time.Time
	Attempts  int
	Remaining int
}
