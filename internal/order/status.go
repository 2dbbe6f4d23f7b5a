package order

import "github.com/clayhaus/backoffice/internal/lifecycle"

const (
	StatusPending    lifecycle.Status = "PENDING"
	StatusProcessing lifecycle.Status = "PROCESSING"
	StatusPaid       lifecycle.Status = "PAID"
	StatusShipped    lifecycle.Status = "SHIPPED"
	StatusDelivered  lifecycle.Status = "DELIVERED"
	StatusCancelled  lifecycle.Status = "CANCELLED"
	StatusReturned   lifecycle.Status = "RETURNED"
	StatusRefunded   lifecycle.Status = "REFUNDED"
)

// Timestamp columns on the orders table, one per status.
const (
	colRequestAt   = "request_at"
	colApprovedAt  = "approved_at"
	colPaidAt      = "paid_at"
	colShippedAt   = "shipped_at"
	colDeliveredAt = "delivered_at"
	colCancelledAt = "cancelled_at"
	colReturnedAt  = "returned_at"
	colRefundedAt  = "refunded_at"
)

// Flow is the order lifecycle. Re-entering the main flow from any
// terminal status voids all three terminal records, not just the one
// that was set.
var Flow = lifecycle.Flow{
	Main: []lifecycle.Status{
		StatusPending, StatusProcessing, StatusPaid, StatusShipped, StatusDelivered,
	},
	Terminal: []lifecycle.Status{StatusCancelled, StatusReturned, StatusRefunded},
	Stamps: map[lifecycle.Status]string{
		StatusPending:    colRequestAt,
		StatusProcessing: colApprovedAt,
		StatusPaid:       colPaidAt,
		StatusShipped:    colShippedAt,
		StatusDelivered:  colDeliveredAt,
		StatusCancelled:  colCancelledAt,
		StatusReturned:   colReturnedAt,
		StatusRefunded:   colRefundedAt,
	},
	ResetOnReentry: []string{colCancelledAt, colReturnedAt, colRefundedAt},
}
