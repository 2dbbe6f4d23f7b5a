package order

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

// Service is the order lifecycle mutation service: status transitions
// and the three discount/quantity edit entry points.
type Service struct {
	repo  Repository
	authz Authorizer
	views ViewInvalidator
	now   func() time.Time
}

func NewService(repo Repository, authz Authorizer, views ViewInvalidator) *Service {
	return &Service{repo: repo, authz: authz, views: views, now: time.Now}
}

// Get loads an order with its line items.
func (s *Service) Get(ctx context.Context, id string) (*Order, []LineItem, error) {
	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, wrapNotFound(err)
	}
	return o, items, nil
}

// SetStatus moves the order to next, stamping and clearing lifecycle
// timestamps per the flow rules. Requesting the current status is a
// successful no-op and re-stamps nothing.
func (s *Service) SetStatus(ctx context.Context, id string, next lifecycle.Status) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}
	if !Flow.Contains(next) {
		return fault.New(fault.Validation, "unknown order status: %s", next)
	}

	o, _, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wrapNotFound(err)
	}
	if o.Status == next {
		return nil
	}

	patch := Flow.Resolve(o.Status, next)
	if err := s.repo.ApplyStatusPatch(ctx, id, patch, s.now().UTC()); err != nil {
		return wrapNotFound(err)
	}
	s.views.InvalidateViews(ctx, o.UserID)
	return nil
}

// SetDiscount redistributes the requested aggregate discount across the
// order's line items and recomputes totals. Line items are persisted
// with independent writes followed by the totals write; see
// DistributeDiscount for the split rules.
func (s *Service) SetDiscount(ctx context.Context, id string, targetCents int64) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}
	if targetCents < 0 {
		return fault.New(fault.Validation, "discount cannot be negative")
	}

	o, items, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return wrapNotFound(err)
	}
	if err := DistributeDiscount(items, targetCents); err != nil {
		return err
	}
	for _, it := range items {
		if err := s.repo.UpdateItem(ctx, it); err != nil {
			return wrapNotFound(err)
		}
	}
	return s.finishMonetary(ctx, o, items)
}

// SetItemDiscount edits one line's discount directly, leaving every
// other line unchanged.
func (s *Service) SetItemDiscount(ctx context.Context, orderID, itemID string, discountCents int64) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	o, items, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return wrapNotFound(err)
	}
	it := findItem(items, itemID)
	if it == nil {
		return fault.New(fault.NotFound, "line item not found")
	}
	if err := ApplyItemDiscount(it, discountCents); err != nil {
		return err
	}
	if err := s.repo.UpdateItem(ctx, *it); err != nil {
		return wrapNotFound(err)
	}
	return s.finishMonetary(ctx, o, items)
}

// SetItemQuantity edits one line's quantity, clamping its discount when
// the shrunk line total no longer covers it.
func (s *Service) SetItemQuantity(ctx context.Context, orderID, itemID string, quantity int) error {
	if err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	o, items, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return wrapNotFound(err)
	}
	it := findItem(items, itemID)
	if it == nil {
		return fault.New(fault.NotFound, "line item not found")
	}
	if err := ApplyItemQuantity(it, quantity); err != nil {
		return err
	}
	if err := s.repo.UpdateItem(ctx, *it); err != nil {
		return wrapNotFound(err)
	}
	return s.finishMonetary(ctx, o, items)
}

func (s *Service) finishMonetary(ctx context.Context, o *Order, items []LineItem) error {
	Recompute(o, items)
	if err := s.repo.UpdateTotals(ctx, o); err != nil {
		return wrapNotFound(err)
	}
	s.views.InvalidateViews(ctx, o.UserID)
	return nil
}

func findItem(items []LineItem, id string) *LineItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fault.New(fault.NotFound, "order not found")
	}
	return err
}
