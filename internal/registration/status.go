package registration

import "github.com/clayhaus/backoffice/internal/lifecycle"

const (
	StatusPending   lifecycle.Status = "PENDING"
	StatusApproved  lifecycle.Status = "APPROVED"
	StatusRejected  lifecycle.Status = "REJECTED"
	StatusPaid      lifecycle.Status = "PAID"
	StatusConfirmed lifecycle.Status = "CONFIRMED"
	StatusCancelled lifecycle.Status = "CANCELLED"
)

// Timestamp columns on the registrations table. REJECTED owns none; it
// is terminal with no dedicated timestamp.
const (
	colRequestAt   = "request_at"
	colApprovedAt  = "approved_at"
	colPaidAt      = "paid_at"
	colConfirmedAt = "confirmed_at"
	colCancelledAt = "cancelled_at"
)

// Flow is the registration lifecycle. Unlike orders, re-entering the
// main flow keeps cancelled_at; only un-rejecting voids the
// approval/payment/confirmation stamps, since a rejection may have
// happened before those steps ever ran.
var Flow = lifecycle.Flow{
	Main: []lifecycle.Status{
		StatusPending, StatusApproved, StatusPaid, StatusConfirmed,
	},
	Terminal: []lifecycle.Status{StatusRejected, StatusCancelled},
	Stamps: map[lifecycle.Status]string{
		StatusPending:   colRequestAt,
		StatusApproved:  colApprovedAt,
		StatusPaid:      colPaidAt,
		StatusConfirmed: colConfirmedAt,
		StatusCancelled: colCancelledAt,
	},
	ClearOnLeave: map[lifecycle.Status][]string{
		StatusRejected: {colApprovedAt, colPaidAt, colConfirmedAt},
	},
}
