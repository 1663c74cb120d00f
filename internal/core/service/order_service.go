package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// OrderService implements the order lifecycle: creation defaults, the status
// state machine and the dateProcessed stamp.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: time.Now}
}

func (s *OrderService) List(ctx context.Context, page ports.Page) ([]*domain.Order, error) {
	return s.repo.List(ctx, page.Normalize())
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the order payload and inserts it with status pending and
// a creation timestamp. The timestamp is never mutated afterwards.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.UserID == "" || in.Client == "" || len(in.Products) == 0 {
		return nil, domain.ErrInvalidOrder
	}

	items := make([]domain.OrderItem, 0, len(in.Products))
	for _, p := range in.Products {
		if p.Qty <= 0 {
			return nil, domain.ErrInvalidOrder
		}
		items = append(items, domain.OrderItem{Qty: p.Qty, Product: p.Product})
	}

	order := &domain.Order{
		UserID:    in.UserID,
		Client:    in.Client,
		Products:  items,
		Status:    domain.StatusPending,
		DateEntry: s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Msg("order created")
	return created, nil
}

// Update applies a partial update to an order. A supplied status must belong
// to the allowed set; any allowed status may be written from any current
// status. The first transition to delivered stamps dateProcessed, and later
// transitions never clear it.
func (s *OrderService) Update(ctx context.Context, id string, in ports.UpdateOrderInput) (*domain.Order, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := ports.OrderUpdate{
		UserID: in.UserID,
		Client: in.Client,
	}

	if in.Products != nil {
		items := make([]domain.OrderItem, 0, len(in.Products))
		for _, p := range in.Products {
			if p.Qty <= 0 {
				return nil, domain.ErrInvalidOrder
			}
			items = append(items, domain.OrderItem{Qty: p.Qty, Product: p.Product})
		}
		upd.Products = items
	}

	if in.Status != nil {
		next := domain.OrderStatus(*in.Status)
		if !next.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		upd.Status = &next
		if next == domain.StatusDelivered && current.DateProcessed == nil {
			ts := s.now().UTC()
			upd.DateProcessed = &ts
		}
	}

	if upd.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		s.logger.Info().
			Str("order_id", id).
			Str("from", string(current.Status)).
			Str("to", string(*upd.Status)).
			Msg("order status changed")
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
