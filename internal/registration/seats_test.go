package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clayhaus/backoffice/internal/lifecycle"
)

func TestSeatDelta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		prev, next lifecycle.Status
		want       int
	}{
		{"confirmed cancelled releases", StatusConfirmed, StatusCancelled, 2},
		{"paid rejected releases", StatusPaid, StatusRejected, 2},
		{"rejected revived to paid takes", StatusRejected, StatusPaid, -2},
		{"cancelled revived to confirmed takes", StatusCancelled, StatusConfirmed, -2},
		{"pending to approved untouched", StatusPending, StatusApproved, 0},
		{"confirmed to paid stays holding", StatusConfirmed, StatusPaid, 0},
		{"paid to confirmed stays holding", StatusPaid, StatusConfirmed, 0},
		{"pending cancelled never held", StatusPending, StatusCancelled, 0},
		{"pending rejected never held", StatusPending, StatusRejected, 0},
		{"cancelled to pending not holding yet", StatusCancelled, StatusPending, 0},
		{"paid back to approved keeps the seats", StatusPaid, StatusApproved, 0},
		{"cancelled to rejected terminal shuffle", StatusCancelled, StatusRejected, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SeatDelta(tc.prev, tc.next, 2))
		})
	}
}

func TestHoldsReservation(t *testing.T) {
	t.Parallel()

	assert.True(t, HoldsReservation(StatusPaid))
	assert.True(t, HoldsReservation(StatusConfirmed))
	assert.False(t, HoldsReservation(StatusPending))
	assert.False(t, HoldsReservation(StatusApproved))
	assert.False(t, HoldsReservation(StatusCancelled))
	assert.False(t, HoldsReservation(StatusRejected))
}
