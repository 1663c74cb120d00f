package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/burgerqueen/burger-queen-api/internal/core/domain"
	"github.com/burgerqueen/burger-queen-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	clone := *o
	clone.Products = append([]domain.OrderItem(nil), o.Products...)
	if o.DateProcessed != nil {
		ts := *o.DateProcessed
		clone.DateProcessed = &ts
	}
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	clone := cloneOrder(o)
	clone.ID = "order-" + strconv.Itoa(r.nextID)
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) List(_ context.Context, _ ports.Page) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if upd.UserID != nil {
		o.UserID = *upd.UserID
	}
	if upd.Client != nil {
		o.Client = *upd.Client
	}
	if upd.Products != nil {
		o.Products = append([]domain.OrderItem(nil), upd.Products...)
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.DateProcessed != nil {
		ts := *upd.DateProcessed
		o.DateProcessed = &ts
	}
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func newTestOrderService(repo *stubOrderRepo, now time.Time) *OrderService {
	svc := NewOrderService(repo, zerolog.Nop())
	svc.now = func() time.Time { return now }
	return svc
}

func testItems() []ports.OrderItemInput {
	return []ports.OrderItemInput{
		{Qty: 5, Product: domain.Product{ID: "p1", Name: "hamburguesa doble", Price: 15}},
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestOrderService_Create_DefaultsToPending(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestOrderService(newStubOrderRepo(), now)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:   "u1",
		Client:   "C",
		Products: testItems(),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %s", order.Status)
	}
	if len(order.Products) != 1 {
		t.Fatalf("expected 1 product line, got %d", len(order.Products))
	}
	if !order.DateEntry.Equal(now) {
		t.Fatalf("expected dateEntry %v, got %v", now, order.DateEntry)
	}
	if order.DateProcessed != nil {
		t.Fatalf("dateProcessed must be absent at creation")
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())

	cases := []struct {
		name string
		in   ports.CreateOrderInput
	}{
		{"missing userId", ports.CreateOrderInput{Client: "C", Products: testItems()}},
		{"missing client", ports.CreateOrderInput{UserID: "u1", Products: testItems()}},
		{"empty products", ports.CreateOrderInput{UserID: "u1", Client: "C"}},
		{"zero qty", ports.CreateOrderInput{UserID: "u1", Client: "C", Products: []ports.OrderItemInput{{Qty: 0}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, domain.ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Update / lifecycle
// ---------------------------------------------------------------------------

func createTestOrder(t *testing.T, svc *OrderService) *domain.Order {
	t.Helper()
	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		UserID:   "u1",
		Client:   "C",
		Products: testItems(),
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestOrderService_Update_InvalidStatus(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())
	order := createTestOrder(t, svc)

	bad := "oh yeah!"
	if _, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOrderService_Update_EmptyBody(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())
	order := createTestOrder(t, svc)

	if _, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{}); !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestOrderService_Update_NotFound(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())

	status := string(domain.StatusPreparing)
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateOrderInput{Status: &status}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Update_DeliveredStampsDateProcessed(t *testing.T) {
	entry := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, entry)
	order := createTestOrder(t, svc)

	delivered := string(domain.StatusDelivered)
	svc.now = func() time.Time { return entry.Add(30 * time.Minute) }

	updated, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{Status: &delivered})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.DateProcessed == nil {
		t.Fatalf("expected dateProcessed to be set")
	}
	if updated.DateProcessed.Before(updated.DateEntry) {
		t.Fatalf("dateProcessed %v before dateEntry %v", updated.DateProcessed, updated.DateEntry)
	}

	// Transitioning away must keep the stamp.
	pending := string(domain.StatusPending)
	reverted, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{Status: &pending})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if reverted.DateProcessed == nil {
		t.Fatalf("dateProcessed cleared after leaving delivered")
	}
	firstStamp := *reverted.DateProcessed

	// A second delivery must not move the stamp.
	svc.now = func() time.Time { return entry.Add(2 * time.Hour) }
	again, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{Status: &delivered})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !again.DateProcessed.Equal(firstStamp) {
		t.Fatalf("dateProcessed moved on second delivery: %v != %v", again.DateProcessed, firstStamp)
	}
}

func TestOrderService_Update_StatusJumpsAreUnconstrained(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())
	order := createTestOrder(t, svc)

	// No adjacency graph: any allowed status is writable from any state.
	for _, target := range []string{"delivered", "pending", "canceled", "preparing", "delivering"} {
		s := target
		if _, err := svc.Update(context.Background(), order.ID, ports.UpdateOrderInput{Status: &s}); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}
}

func TestOrderService_DeleteThenGet(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), time.Now())
	order := createTestOrder(t, svc)

	if err := svc.Delete(context.Background(), order.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after delete, got %v", err)
	}
}
