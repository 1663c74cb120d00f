// Package metrics defines and registers all custom Prometheus metrics for
// the Burger Queen API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "burgerqueen"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthDenialsTotal counts requests rejected before reaching a handler.
// Label:
//   - reason: "bad_token", "unknown_identity", "unauthorized" or "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// OrdersCreatedTotal counts newly created orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// OrderTransitionsTotal counts order status writes.
// Label:
//   - status: the target status (e.g. "delivered")
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order status transitions, by target status.",
	},
	[]string{"status"},
)
