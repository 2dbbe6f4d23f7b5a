package registration

import "github.com/clayhaus/backoffice/internal/lifecycle"

// HoldsReservation reports whether a status counts against event seat
// capacity.
func HoldsReservation(s lifecycle.Status) bool {
	return s == StatusPaid || s == StatusConfirmed
}

func releasedBy(s lifecycle.Status) bool {
	return s == StatusCancelled || s == StatusRejected
}

// SeatDelta returns the available_seats adjustment for a status change,
// evaluated once per transition:
//
//   - a holding registration cancelled or rejected returns its seats to
//     the pool;
//   - a cancelled or rejected registration revived straight into a
//     holding status takes them back, with no capacity check; that is an
//     admin override and the user-facing request path does the checking;
//   - every other transition leaves the pool alone.
func SeatDelta(prev, next lifecycle.Status, seatsReserved int) int {
	if HoldsReservation(prev) && releasedBy(next) {
		return seatsReserved
	}
	if releasedBy(prev) && HoldsReservation(next) {
		return -seatsReserved
	}
	return 0
}
