package registration

import (
	"time"

	"github.com/clayhaus/backoffice/internal/lifecycle"
)

// Registration is a seat reservation for a workshop event, unique per
// (event, user) pair. PriceCents is the total price for the reserved
// seats, not a per-seat price.
type Registration struct {
	ID            string           `json:"id"`
	EventID       string           `json:"event_id"`
	UserID        string           `json:"user_id"`
	Status        lifecycle.Status `json:"status"`
	SeatsReserved int              `json:"seats_reserved"`
	PriceCents    int64            `json:"price_cents"`
	DiscountCents int64            `json:"discount_cents"`

	RequestAt   *time.Time `json:"request_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event is the workshop a registration points at. AvailableSeats is the
// finite pool this subsystem adjusts as registrations cross the
// reservation-holding boundary.
type Event struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}
