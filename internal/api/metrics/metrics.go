// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry via promauto; the
// /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created through the register endpoint.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProductsCreatedTotal counts newly created catalog entries.
// Label:
//   - category: the product category (e.g. "boots")
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ProductsDeletedTotal counts removed catalog entries.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)
