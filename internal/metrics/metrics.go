package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of accepted contact form submissions",
		},
	)

	submissionRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submission_rejections_total",
			Help: "Total number of rejected contact form submissions",
		},
		[]string{"field"},
	)

	storeWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_store_write_failures_total",
			Help: "Total number of failed contact store writes",
		},
	)

	notificationDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_dispatch_total",
			Help: "Total number of notification email dispatch attempts",
		},
		[]string{"recipient", "status"}, // operator/submitter, success/failure
	)
)

// RecordContactSubmission records an accepted contact form submission.
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordSubmissionRejection records a rejected submission by offending
// field. Payload-level rejections are recorded under "payload".
func RecordSubmissionRejection(field string) {
	if field == "" {
		field = "payload"
	}
	submissionRejectionsTotal.WithLabelValues(field).Inc()
}

// RecordStoreWriteFailure records a contact store write that could not
// complete.
func RecordStoreWriteFailure() {
	storeWriteFailuresTotal.Inc()
}

// RecordNotificationDispatch records one notification dispatch attempt.
func RecordNotificationDispatch(recipient string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	notificationDispatchTotal.WithLabelValues(recipient, status).Inc()
}

// Handler returns the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
