package domain

import (
	"testing"
	"time"
)

func TestOrderStatus_Valid(t *testing.T) {
	valid := []OrderStatus{StatusPending, StatusPreparing, StatusCanceled, StatusDelivering, StatusDelivered}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []OrderStatus{"", "oh yeah!", "Pending", "done", "cancelled"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestOrder_ApplyStatus_StampsDateProcessedOnce(t *testing.T) {
	entry := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &Order{Status: StatusPending, DateEntry: entry}

	first := entry.Add(time.Hour)
	order.ApplyStatus(StatusDelivered, first)

	if order.DateProcessed == nil {
		t.Fatalf("expected dateProcessed to be set")
	}
	if order.DateProcessed.Before(order.DateEntry) {
		t.Fatalf("dateProcessed %v before dateEntry %v", order.DateProcessed, order.DateEntry)
	}
	if !order.DateProcessed.Equal(first) {
		t.Fatalf("expected stamp %v, got %v", first, order.DateProcessed)
	}

	// Moving away from delivered must not clear the stamp.
	order.ApplyStatus(StatusPending, first.Add(time.Hour))
	if order.DateProcessed == nil || !order.DateProcessed.Equal(first) {
		t.Fatalf("stamp changed after leaving delivered: %v", order.DateProcessed)
	}

	// Re-delivering must not re-stamp.
	order.ApplyStatus(StatusDelivered, first.Add(2*time.Hour))
	if !order.DateProcessed.Equal(first) {
		t.Fatalf("stamp changed on second delivery: %v", order.DateProcessed)
	}
}

func TestUser_Capabilities(t *testing.T) {
	admin := &User{Capabilities: []Capability{CapabilityAdmin}}
	if !admin.IsAdmin() {
		t.Fatalf("expected admin")
	}

	regular := &User{}
	if regular.IsAdmin() {
		t.Fatalf("expected non-admin")
	}

	var nobody *User
	if nobody.IsAdmin() {
		t.Fatalf("nil user must not be admin")
	}
}
