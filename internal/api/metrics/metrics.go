// Package metrics defines and registers all custom Prometheus metrics for the
// promotions API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "promoapi"

// RegistrationsTotal counts registration attempts that reached the store.
// Label:
//   - result: "ok" or "error" (duplicate email counts as error)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "unknown_user" or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PromotionWritesTotal counts admin write operations on promotions.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "ok" or "error"
var PromotionWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promotion_writes_total",
		Help:      "Total number of promotion write operations, by operation and result.",
	},
	[]string{"op", "result"},
)
