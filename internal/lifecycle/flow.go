// Package lifecycle implements the status state machine shared by orders
// and workshop registrations: an ordered main flow of statuses, the
// timestamp column owned by each status, and a resolver that turns a
// requested transition into a field patch.
package lifecycle

// Status is an uppercase status value as stored in the database.
type Status string

// Flow declares the status sequence of one lifecycle domain. It is pure
// data; Resolve consumes it.
type Flow struct {
	// Main is the ordered sequence of normal forward progress.
	Main []Status

	// Terminal holds the side statuses outside the main flow
	// (cancelled, refunded, rejected...).
	Terminal []Status

	// Stamps maps every status to the timestamp column it owns. A status
	// with no entry owns no timestamp (registration REJECTED).
	Stamps map[Status]string

	// ResetOnReentry lists terminal timestamp columns cleared whenever a
	// transition re-enters the main flow other than by a purely forward
	// move inside it.
	ResetOnReentry []string

	// ClearOnLeave lists extra columns cleared when leaving the given
	// terminal status back into the main flow. Used by registrations to
	// void approved/paid/confirmed when un-rejecting, since a rejection
	// may have happened before those steps ever completed.
	ClearOnLeave map[Status][]string
}

// MainIndex returns the position of s in the main flow, or -1 when s is
// outside it (terminal or unknown).
func (f Flow) MainIndex(s Status) int {
	for i, m := range f.Main {
		if m == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s is a status of this flow at all, main or
// terminal.
func (f Flow) Contains(s Status) bool {
	if f.MainIndex(s) >= 0 {
		return true
	}
	for _, t := range f.Terminal {
		if t == s {
			return true
		}
	}
	return false
}
