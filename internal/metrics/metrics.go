package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigerfitness_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tigerfitness_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigerfitness_appointments_total",
			Help: "Total number of appointments by status",
		},
		[]string{"status"},
	)

	AppointmentConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tigerfitness_appointment_conflicts_total",
			Help: "Total number of bookings rejected for time conflicts",
		},
	)

	SlotQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tigerfitness_slot_queries_total",
			Help: "Total number of slot availability queries",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigerfitness_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tigerfitness_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	WorkoutPlansGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tigerfitness_workout_plans_generated_total",
			Help: "Total number of workout plan generation attempts",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointment(status string) {
	AppointmentsTotal.WithLabelValues(status).Inc()
}

func RecordAppointmentConflict() {
	AppointmentConflictsTotal.Inc()
}

func RecordSlotQuery() {
	SlotQueriesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordWorkoutPlan(status string) {
	WorkoutPlansGeneratedTotal.WithLabelValues(status).Inc()
}
