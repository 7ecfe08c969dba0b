// Package metrics defines and registers all custom Prometheus metrics for
// the movie-bag API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moviebag"

// SignupsTotal counts account creations by outcome.
// Label:
//   - result: "success", "duplicate", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (unknown email and wrong password are
//     deliberately not distinguished, mirroring the client-facing response)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts reset-flow activity.
// Label:
//   - stage: "requested", "completed", "expired_token", "bad_token"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset flow events, by stage.",
	},
	[]string{"stage"},
)

// EmailsSentTotal counts dispatcher delivery attempts.
// Labels:
//   - kind: the email template ("password_reset", "password_confirmed")
//   - result: "sent" or "error"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of transactional email deliveries, by kind and result.",
	},
	[]string{"kind", "result"},
)

// MoviesCreatedTotal counts catalog entries created through the API.
var MoviesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of movies created.",
	},
)
