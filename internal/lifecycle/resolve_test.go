package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test flow shaped like the order lifecycle: five-step main flow plus
// three stamped terminals.
func shipFlow() Flow {
	return Flow{
		Main:     []Status{"PENDING", "PROCESSING", "PAID", "SHIPPED", "DELIVERED"},
		Terminal: []Status{"CANCELLED", "RETURNED", "REFUNDED"},
		Stamps: map[Status]string{
			"PENDING":    "request_at",
			"PROCESSING": "approved_at",
			"PAID":       "paid_at",
			"SHIPPED":    "shipped_at",
			"DELIVERED":  "delivered_at",
			"CANCELLED":  "cancelled_at",
			"RETURNED":   "returned_at",
			"REFUNDED":   "refunded_at",
		},
		ResetOnReentry: []string{"cancelled_at", "returned_at", "refunded_at"},
	}
}

// Test flow shaped like the registration lifecycle: stampless terminal
// REJECTED with its own leave-clears.
func seatFlow() Flow {
	return Flow{
		Main:     []Status{"PENDING", "APPROVED", "PAID", "CONFIRMED"},
		Terminal: []Status{"REJECTED", "CANCELLED"},
		Stamps: map[Status]string{
			"PENDING":   "request_at",
			"APPROVED":  "approved_at",
			"PAID":      "paid_at",
			"CONFIRMED": "confirmed_at",
			"CANCELLED": "cancelled_at",
		},
		ClearOnLeave: map[Status][]string{
			"REJECTED": {"approved_at", "paid_at", "confirmed_at"},
		},
	}
}

func TestResolveNoOp(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	for _, s := range []Status{"PENDING", "DELIVERED", "CANCELLED"} {
		p := f.Resolve(s, s)
		assert.True(t, p.Empty(), "setting %s to itself must not touch anything", s)
	}
}

func TestResolveForwardStampsIntermediates(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	p := f.Resolve("PENDING", "DELIVERED")
	require.Equal(t, Status("DELIVERED"), p.Status)
	assert.Equal(t, []string{"approved_at", "paid_at", "shipped_at", "delivered_at"}, p.Stamp)
	assert.Empty(t, p.Clear, "terminal timestamps stay untouched on a pure forward move")
}

func TestResolveForwardSingleStep(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	p := f.Resolve("PAID", "SHIPPED")
	assert.Equal(t, []string{"shipped_at"}, p.Stamp)
	assert.Empty(t, p.Clear)
}

func TestResolveBackwardClearsLaterAndTerminals(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	p := f.Resolve("DELIVERED", "PROCESSING")
	require.Equal(t, Status("PROCESSING"), p.Status)
	assert.Empty(t, p.Stamp)
	assert.Equal(t,
		[]string{"paid_at", "shipped_at", "delivered_at", "cancelled_at", "returned_at", "refunded_at"},
		p.Clear)
}

func TestResolveTerminalStampsOwnFieldOnly(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	p := f.Resolve("DELIVERED", "CANCELLED")
	assert.Equal(t, []string{"cancelled_at"}, p.Stamp)
	assert.Empty(t, p.Clear, "earlier main-flow stamps survive a cancellation")
}

func TestResolveTerminalToTerminal(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	p := f.Resolve("CANCELLED", "REFUNDED")
	assert.Equal(t, []string{"refunded_at"}, p.Stamp)
	assert.Empty(t, p.Clear)
}

func TestResolveUncancelReentersMainFlow(t *testing.T) {
	t.Parallel()

	// CANCELLED back into PROCESSING exercises both clear paths: later
	// main-flow stamps and all three terminal stamps.
	f := shipFlow()
	p := f.Resolve("CANCELLED", "PROCESSING")
	assert.Equal(t, []string{"approved_at"}, p.Stamp)
	assert.Equal(t,
		[]string{"paid_at", "shipped_at", "delivered_at", "cancelled_at", "returned_at", "refunded_at"},
		p.Clear)
}

func TestResolveUnrejectIntoPaid(t *testing.T) {
	t.Parallel()

	// Un-rejecting into a reservation-holding state stamps the skipped
	// approval step; the rejection-era clears lose to the fresh stamps.
	f := seatFlow()
	p := f.Resolve("REJECTED", "PAID")
	require.Equal(t, Status("PAID"), p.Status)
	assert.Equal(t, []string{"approved_at", "paid_at"}, p.Stamp)
	assert.Equal(t, []string{"confirmed_at"}, p.Clear)
}

func TestResolveReentryPreservesRequestStamp(t *testing.T) {
	t.Parallel()

	// Coming back from any terminal status must not rewrite the initial
	// request timestamp with "now"; it records when the customer asked,
	// not when the admin last touched the record.
	cases := []struct {
		f                  Flow
		current, requested Status
	}{
		{shipFlow(), "CANCELLED", "PROCESSING"},
		{shipFlow(), "REFUNDED", "PAID"},
		{seatFlow(), "REJECTED", "PAID"},
		{seatFlow(), "CANCELLED", "APPROVED"},
		{seatFlow(), "CANCELLED", "PENDING"},
	}
	for _, tc := range cases {
		p := tc.f.Resolve(tc.current, tc.requested)
		assert.NotContains(t, p.Stamp, "request_at", "%s -> %s", tc.current, tc.requested)
		assert.NotContains(t, p.Clear, "request_at", "%s -> %s", tc.current, tc.requested)
	}
}

func TestResolveRejectIsStampless(t *testing.T) {
	t.Parallel()

	f := seatFlow()
	p := f.Resolve("PENDING", "REJECTED")
	require.Equal(t, Status("REJECTED"), p.Status)
	assert.Empty(t, p.Stamp, "REJECTED owns no timestamp column")
	assert.Empty(t, p.Clear)
}

func TestResolveUncancelRegistrationKeepsCancelledAt(t *testing.T) {
	t.Parallel()

	// Registrations do not reset terminal stamps on re-entry; only the
	// order flow does.
	f := seatFlow()
	p := f.Resolve("CANCELLED", "APPROVED")
	assert.Equal(t, []string{"approved_at"}, p.Stamp)
	assert.Equal(t, []string{"paid_at", "confirmed_at"}, p.Clear)
}

func TestMainIndex(t *testing.T) {
	t.Parallel()

	f := shipFlow()
	assert.Equal(t, 0, f.MainIndex("PENDING"))
	assert.Equal(t, 4, f.MainIndex("DELIVERED"))
	assert.Equal(t, -1, f.MainIndex("CANCELLED"))
	assert.Equal(t, -1, f.MainIndex("NOPE"))
}

func TestContains(t *testing.T) {
	t.Parallel()

	f := seatFlow()
	assert.True(t, f.Contains("PENDING"))
	assert.True(t, f.Contains("REJECTED"))
	assert.False(t, f.Contains("SHIPPED"))
}
