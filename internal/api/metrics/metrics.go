// Package metrics defines and registers all custom Prometheus metrics for
// the dog-walk API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dogwalk"

// AccountsRegisteredTotal counts successful account registrations.
var AccountsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// WalksCreatedTotal counts newly created walks.
var WalksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "walks_created_total",
		Help:      "Total number of walks created.",
	},
)

// WalkJoinsTotal counts accounts joining walks.
var WalkJoinsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "walk_joins_total",
		Help:      "Total number of walk joins.",
	},
)

// NotificationsPublishedTotal counts notification publish attempts.
// Labels:
//   - event: "walk.created" or "walk.joined"
//   - result: "ok" or "error"
var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Total number of notification publish attempts, by event and result.",
	},
	[]string{"event", "result"},
)
