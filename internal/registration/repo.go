package registration

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

var (
	ErrNotFound      = errors.New("registration not found")
	ErrEventNotFound = errors.New("event not found")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Registration, *Event, error)
	// ApplyStatusPatch persists the resolver's field set; a non-zero
	// seatDelta adjusts the event's available seats in the same
	// transaction, seats first.
	ApplyStatusPatch(ctx context.Context, id string, p lifecycle.Patch, now time.Time, eventID string, seatDelta int) error
	// UpdateDetails persists the price/discount/seats triple, adjusting
	// the event pool by seatDelta in the same transaction.
	UpdateDetails(ctx context.Context, id string, priceCents, discountCents int64, seatsReserved int, eventID string, seatDelta int) error
	UpdateDiscount(ctx context.Context, id string, discountCents int64) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Registration, *Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reg Registration
	err := r.db.QueryRow(ctx, `
		SELECT id, event_id, user_id, status, seats_reserved, price_cents, discount_cents,
		       request_at, approved_at, paid_at, confirmed_at, cancelled_at,
		       created_at, updated_at
		FROM registrations WHERE id=$1
	`, id).Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.SeatsReserved,
		&reg.PriceCents, &reg.DiscountCents,
		&reg.RequestAt, &reg.ApprovedAt, &reg.PaidAt, &reg.ConfirmedAt, &reg.CancelledAt,
		&reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var ev Event
	err = r.db.QueryRow(ctx, `
		SELECT id, name, total_seats, available_seats
		FROM events WHERE id=$1
	`, reg.EventID).Scan(&ev.ID, &ev.Name, &ev.TotalSeats, &ev.AvailableSeats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, err
	}
	return &reg, &ev, nil
}

func (r *PGRepo) ApplyStatusPatch(ctx context.Context, id string, p lifecycle.Patch, now time.Time, eventID string, seatDelta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := adjustSeats(ctx, tx, eventID, seatDelta); err != nil {
		return err
	}

	set := []string{"status = $2", "updated_at = NOW()"}
	args := []any{id, string(p.Status)}
	for _, col := range p.Stamp {
		args = append(args, now)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	for _, col := range p.Clear {
		set = append(set, col+" = NULL")
	}

	tag, err := tx.Exec(ctx, `UPDATE registrations SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) UpdateDetails(ctx context.Context, id string, priceCents, discountCents int64, seatsReserved int, eventID string, seatDelta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := adjustSeats(ctx, tx, eventID, seatDelta); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE registrations
		SET price_cents = $2, discount_cents = $3, seats_reserved = $4, updated_at = NOW()
		WHERE id = $1
	`, id, priceCents, discountCents, seatsReserved)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) UpdateDiscount(ctx context.Context, id string, discountCents int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE registrations
		SET discount_cents = $2, updated_at = NOW()
		WHERE id = $1
	`, id, discountCents)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// adjustSeats moves the shared available_seats counter inside the
// caller's transaction. The row lock from the UPDATE is what keeps
// concurrent admin edits from losing increments.
func adjustSeats(ctx context.Context, tx pgx.Tx, eventID string, delta int) error {
	if delta == 0 {
		return nil
	}
	tag, err := tx.Exec(ctx, `
		UPDATE events SET available_seats = available_seats + $2 WHERE id = $1
	`, eventID, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}
