// Package metrics defines and registers all custom Prometheus metrics for the
// prospect-intake API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Prospect metrics ──────────────────────────────────────────────────────────

// ProspectsSubmittedTotal counts questionnaire submissions that persisted.
// Label:
//   - budget_range: the submitted budget bracket (e.g. "10k-25k")
var ProspectsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prospects_submitted_total",
		Help:      "Total number of prospect submissions persisted, by budget range.",
	},
	[]string{"budget_range"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationEmailsTotal counts terminal per-recipient delivery outcomes.
// Label:
//   - result: "sent" or "failed" (failed = all retries exhausted)
var NotificationEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_emails_total",
		Help:      "Total number of prospect-notification emails, by terminal result.",
	},
	[]string{"result"},
)

// NotificationRetriesTotal counts individual failed attempts that were retried.
var NotificationRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_retries_total",
		Help:      "Total number of notification send attempts that failed and were retried.",
	},
)

// NotificationQueueDepth tracks prospects waiting in the dispatcher buffer.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of prospects pending in the notification dispatcher.",
	},
)

// NotificationsDroppedTotal counts enqueue attempts rejected by a full buffer.
var NotificationsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dropped_total",
		Help:      "Total number of prospect notifications dropped because the dispatcher buffer was full.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success", "failure", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)
