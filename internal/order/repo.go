package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clayhaus/backoffice/internal/lifecycle"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, []LineItem, error)
	ApplyStatusPatch(ctx context.Context, id string, p lifecycle.Patch, now time.Time) error
	UpdateItem(ctx context.Context, item LineItem) error
	UpdateTotals(ctx context.Context, o *Order) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []LineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, subtotal_cents, discount_cents, shipping_fee_cents, total_cents,
		       request_at, approved_at, paid_at, shipped_at, delivered_at,
		       cancelled_at, returned_at, refunded_at,
		       created_at, updated_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.UserID, &o.Status, &o.SubtotalCents, &o.DiscountCents, &o.ShippingFeeCents, &o.TotalCents,
		&o.RequestAt, &o.ApprovedAt, &o.PaidAt, &o.ShippedAt, &o.DeliveredAt,
		&o.CancelledAt, &o.ReturnedAt, &o.RefundedAt,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, product_name, image_url, price_cents, quantity, discount_cents
		FROM order_items WHERE order_id=$1
		ORDER BY created_at, id
	`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ImageURL,
			&it.PriceCents, &it.Quantity, &it.DiscountCents); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}

// ApplyStatusPatch writes the resolver's field set in one UPDATE. Column
// names come from the flow tables, never from callers.
func (r *PGRepo) ApplyStatusPatch(ctx context.Context, id string, p lifecycle.Patch, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := []string{"status = $2", "updated_at = NOW()"}
	args := []any{id, string(p.Status)}
	for _, col := range p.Stamp {
		args = append(args, now)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	for _, col := range p.Clear {
		set = append(set, col+" = NULL")
	}

	tag, err := r.db.Exec(ctx, `UPDATE orders SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) UpdateItem(ctx context.Context, item LineItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE order_items
		SET quantity = $2, discount_cents = $3
		WHERE id = $1
	`, item.ID, item.Quantity, item.DiscountCents)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) UpdateTotals(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET subtotal_cents = $2, discount_cents = $3, total_cents = $4, updated_at = NOW()
		WHERE id = $1
	`, o.ID, o.SubtotalCents, o.DiscountCents, o.TotalCents)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
