// Package metrics defines all custom Prometheus metrics for the
// authentication service. It is the single source of truth for metric names,
// labels, and help strings; promauto registers everything with the default
// registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "basicauth"

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "rejected" (validation failure) or "duplicate"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_account", "invalid_credentials" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SessionTouchesTotal counts session resolutions on authenticated requests.
// Label:
//   - result: "ok" or "unauthenticated" (missing or expired session)
var SessionTouchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_touches_total",
		Help:      "Total number of session cookie resolutions, labelled by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts explicit session destructions via the logout endpoint.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of sessions destroyed through logout.",
	},
)

// AuthRequestDuration measures signup and login end-to-end. The bcrypt work
// factor dominates these, so the buckets skew higher than request defaults.
// Label:
//   - operation: "signup" or "login"
var AuthRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_request_duration_seconds",
		Help:      "Duration of signup and login processing, including password hashing.",
		Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5},
	},
	[]string{"operation"},
)
