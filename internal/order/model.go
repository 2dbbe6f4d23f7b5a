package order

import (
	"time"

	"github.com/clayhaus/backoffice/internal/lifecycle"
)

// Order is a product purchase. Monetary fields are integer cents.
// DiscountCents is a legacy aggregate kept at zero; the authoritative
// discount total is the sum over line items.
type Order struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Status           lifecycle.Status `json:"status"`
	SubtotalCents    int64            `json:"subtotal_cents"`
	DiscountCents    int64            `json:"discount_cents"`
	ShippingFeeCents int64            `json:"shipping_fee_cents"`
	TotalCents       int64            `json:"total_cents"`

	RequestAt   *time.Time `json:"request_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	ReturnedAt  *time.Time `json:"returned_at,omitempty"`
	RefundedAt  *time.Time `json:"refunded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItem is one order line. PriceCents is the unit price snapshot and
// never changes after checkout; quantity and discount are admin-editable.
type LineItem struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	ImageURL      string `json:"image_url,omitempty"`
	PriceCents    int64  `json:"price_cents"`
	Quantity      int    `json:"quantity"`
	DiscountCents int64  `json:"discount_cents"`
}

// TotalCents is the discount-free line total, price x quantity.
func (li LineItem) TotalCents() int64 {
	return li.PriceCents * int64(li.Quantity)
}
