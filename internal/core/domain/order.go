package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusCanceled   OrderStatus = "canceled"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
)

// allowedStatuses is the closed set of writable order states. Any allowed
// status may be written from any current status; there is no adjacency graph.
var allowedStatuses = map[OrderStatus]struct{}{
	StatusPending:    {},
	StatusPreparing:  {},
	StatusCanceled:   {},
	StatusDelivering: {},
	StatusDelivered:  {},
}

// Valid reports whether s is one of the allowed order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := allowedStatuses[s]
	return ok
}

// OrderItem is a single line of an order: a product and how many of it.
type OrderItem struct {
	Qty     int     `json:"qty"`
	Product Product `json:"product"`
}

// Order is a customer transaction record.
type Order struct {
	ID            string      `json:"_id"`
	UserID        string      `json:"userId"`
	Client        string      `json:"client"`
	Products      []OrderItem `json:"products"`
	Status        OrderStatus `json:"status"`
	DateEntry     time.Time   `json:"dateEntry"`
	DateProcessed *time.Time  `json:"dateProcessed,omitempty"`
}

// ApplyStatus moves the order to next and stamps DateProcessed on the first
// transition to delivered. The stamp is never cleared by later transitions.
func (o *Order) ApplyStatus(next OrderStatus, now time.Time) {
	o.Status = next
	if next == StatusDelivered && o.DateProcessed == nil {
		ts := now.UTC()
		o.DateProcessed = &ts
	}
}
