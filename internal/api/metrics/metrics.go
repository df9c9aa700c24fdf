// Package metrics defines the custom Prometheus metrics for the security
// service. It is the single source of truth for metric names, labels, and
// help strings; all metrics register with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "security"

// TokenValidationsTotal counts authentication-gate decisions.
// Label:
//   - result: "accepted" or "rejected"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer-token validations, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failure causes share one value)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts successful registrations.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// AuthorityChecksTotal counts authorization-overlay decisions.
// Label:
//   - result: "granted" or "denied"
var AuthorityChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authority_checks_total",
		Help:      "Total number of route authority checks, by result.",
	},
	[]string{"result"},
)
