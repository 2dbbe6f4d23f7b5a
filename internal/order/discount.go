package order

import (
	"github.com/shopspring/decimal"

	"github.com/clayhaus/backoffice/internal/fault"
)

var half = decimal.New(5, -1)

// roundHalfUp rounds to the nearest cent with halves going up
// (floor(x+0.5)), the rounding the storefront has always used for
// discount splits.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// Recompute rewrites the derived monetary fields of o from its line
// items: subtotal, total (floored at zero) and the always-zero legacy
// aggregate discount.
func Recompute(o *Order, items []LineItem) {
	var subtotal, discount int64
	for _, it := range items {
		subtotal += it.TotalCents()
		discount += it.DiscountCents
	}
	o.SubtotalCents = subtotal
	o.DiscountCents = 0
	total := subtotal + o.ShippingFeeCents - discount
	if total < 0 {
		total = 0
	}
	o.TotalCents = total
}

// DistributeDiscount spreads target (the requested aggregate discount,
// in cents) across items in place, proportionally to each line's share
// of the subtotal.
//
// Every line but the last gets round-half-up(delta x share); the last
// line absorbs the exact remainder so the deltas always sum to the
// requested change regardless of per-line rounding. Each new discount
// is clamped to [0, line total]; a clamped shortfall is not
// redistributed to other lines, so the realized total may fall short of
// target when a line is already at its ceiling.
func DistributeDiscount(items []LineItem, target int64) error {
	var subtotal, current int64
	for _, it := range items {
		subtotal += it.TotalCents()
		current += it.DiscountCents
	}
	if target < 0 || target > subtotal {
		return fault.New(fault.Validation, "discount exceeds order subtotal")
	}
	delta := target - current
	if delta == 0 {
		return nil
	}

	deltaDec := decimal.NewFromInt(delta)
	var distributed int64
	for i := range items {
		var itemDelta int64
		if i == len(items)-1 {
			itemDelta = delta - distributed
		} else {
			var share decimal.Decimal
			if subtotal == 0 {
				// All-zero-price order: split uniformly.
				share = deltaDec.Div(decimal.NewFromInt(int64(len(items))))
			} else {
				share = deltaDec.
					Mul(decimal.NewFromInt(items[i].TotalCents())).
					Div(decimal.NewFromInt(subtotal))
			}
			itemDelta = roundHalfUp(share)
			distributed += itemDelta
		}
		items[i].DiscountCents = clampCents(items[i].DiscountCents+itemDelta, 0, items[i].TotalCents())
	}
	return nil
}

// ApplyItemDiscount validates and sets a single line's discount,
// leaving every other line untouched.
func ApplyItemDiscount(item *LineItem, discount int64) error {
	if discount < 0 {
		return fault.New(fault.Validation, "discount cannot be negative")
	}
	if discount > item.TotalCents() {
		return fault.New(fault.Validation, "discount exceeds item total")
	}
	item.DiscountCents = discount
	return nil
}

// ApplyItemQuantity sets a line's quantity and clamps its existing
// discount down when the shrunk line total no longer covers it.
func ApplyItemQuantity(item *LineItem, quantity int) error {
	if quantity < 1 {
		return fault.New(fault.Validation, "quantity must be at least 1")
	}
	item.Quantity = quantity
	if newTotal := item.TotalCents(); item.DiscountCents > newTotal {
		item.DiscountCents = newTotal
	}
	return nil
}

func clampCents(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
