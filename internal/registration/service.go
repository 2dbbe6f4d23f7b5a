package registration

import (
	"context"
	"errors"
	"time"

	"github.com/clayhaus/backoffice/internal/fault"
	"github.com/clayhaus/backoffice/internal/lifecycle"
)

// Authorizer gates every mutation before any read or write happens.
type Authorizer interface {
	RequireAdmin(ctx context.Context) error
}

// ViewInvalidator signals which cached views went stale after a
// successful mutation. Implementations must not fail the mutation.
type ViewInvalidator interface {
	InvalidateViews(ctx context.Context, userID string)
}

// Service is the registration lifecycle mutation service: status
// transitions with their seat side effects, plus the price/discount/
// seats edits.
type Service struct {
	repo  Repository
	authz Authorizer
	views ViewInvalidator
	now   func() time.Time
}

func NewService(repo Repository, authz Authorizer, views ViewInvalidator) *Service {
	return &Service{repo: repo, authz: authz, views: views, now: time.Now}
}

// Get loads a registration with its event.
func (s *Service) Get(ctx context.Context, id string) (*Registration, *Event, error) {
	reg, ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, wrapNotFound(err)
	}
	return reg, ev, nil
}

// SetStatus moves the registration to next. Crossing the
// reservation-holding boundary adjusts the event's seat pool in the
// same transaction as the status write.
func (s *Service) SetStatus(ctx context.Context, id string, next lifecycle.Status) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}
	if !Flow.Contains(next) {
		return fault.New(fault.Validation, "unknown registration status: %s", next)
	}

	reg, _, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wrapNotFound(err)
	}
	if reg.Status == next {
		return nil
	}

	patch := Flow.Resolve(reg.Status, next)
	delta := SeatDelta(reg.Status, next, reg.SeatsReserved)
	if err := s.repo.ApplyStatusPatch(ctx, id, patch, s.now().UTC(), reg.EventID, delta); err != nil {
		return wrapNotFound(err)
	}
	s.views.InvalidateViews(ctx, reg.UserID)
	return nil
}

// SetDiscount edits the registration's aggregate discount.
func (s *Service) SetDiscount(ctx context.Context, id string, discountCents int64) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}
	if discountCents < 0 {
		return fault.New(fault.Validation, "discount cannot be negative")
	}

	reg, _, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wrapNotFound(err)
	}
	if discountCents > reg.PriceCents {
		return fault.New(fault.Validation, "discount exceeds registration price")
	}
	if err := s.repo.UpdateDiscount(ctx, id, discountCents); err != nil {
		return wrapNotFound(err)
	}
	s.views.InvalidateViews(ctx, reg.UserID)
	return nil
}

// SetDetails edits the price/discount/seats triple. Growing a holding
// registration's seats is capacity-checked against the event pool;
// shrinking one returns seats. Registrations not currently holding a
// reservation leave the pool alone.
func (s *Service) SetDetails(ctx context.Context, id string, priceCents, discountCents int64, seatsReserved int) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}
	if priceCents < 0 {
		return fault.New(fault.Validation, "price cannot be negative")
	}
	if discountCents < 0 {
		return fault.New(fault.Validation, "discount cannot be negative")
	}
	if discountCents > priceCents {
		return fault.New(fault.Validation, "discount exceeds registration price")
	}
	if seatsReserved < 1 {
		return fault.New(fault.Validation, "seats reserved must be at least 1")
	}

	reg, ev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wrapNotFound(err)
	}

	var delta int
	if diff := seatsReserved - reg.SeatsReserved; diff != 0 && HoldsReservation(reg.Status) {
		if diff > 0 && ev.AvailableSeats < diff {
			return fault.New(fault.Capacity, "only %d seats available", ev.AvailableSeats)
		}
		delta = -diff
	}
	if err := s.repo.UpdateDetails(ctx, id, priceCents, discountCents, seatsReserved, reg.EventID, delta); err != nil {
		return wrapNotFound(err)
	}
	s.views.InvalidateViews(ctx, reg.UserID)
	return nil
}

func wrapNotFound(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fault.New(fault.NotFound, "registration not found")
	case errors.Is(err, ErrEventNotFound):
		return fault.New(fault.NotFound, "event not found")
	}
	return err
}
