package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/api/trainers", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/trainers", "200"))
	assert.Equal(t, float64(1), count)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/auth/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/auth/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/auth/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/auth/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/auth/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordAppointment(t *testing.T) {
	AppointmentsTotal.Reset()

	RecordAppointment("pending")
	RecordAppointment("pending")
	RecordAppointment("cancelled")

	pendingCount := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("pending"))
	cancelledCount := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("cancelled"))

	assert.Equal(t, float64(2), pendingCount)
	assert.Equal(t, float64(1), cancelledCount)
}

func TestRecordAppointmentConflict(t *testing.T) {
	before := testutil.ToFloat64(AppointmentConflictsTotal)

	RecordAppointmentConflict()
	RecordAppointmentConflict()

	after := testutil.ToFloat64(AppointmentConflictsTotal)
	assert.Equal(t, float64(2), after-before)
}

func TestRecordSlotQuery(t *testing.T) {
	before := testutil.ToFloat64(SlotQueriesTotal)

	RecordSlotQuery()

	after := testutil.ToFloat64(SlotQueriesTotal)
	assert.Equal(t, float64(1), after-before)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("appointment_approved", "success")
	RecordEmail("appointment_approved", "failed")

	successCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_approved", "success"))
	failedCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_approved", "failed"))

	assert.Equal(t, float64(1), successCount)
	assert.Equal(t, float64(1), failedCount)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestRecordWorkoutPlan(t *testing.T) {
	WorkoutPlansGeneratedTotal.Reset()

	RecordWorkoutPlan("success")
	RecordWorkoutPlan("failed")
	RecordWorkoutPlan("success")

	successCount := testutil.ToFloat64(WorkoutPlansGeneratedTotal.WithLabelValues("success"))
	failedCount := testutil.ToFloat64(WorkoutPlansGeneratedTotal.WithLabelValues("failed"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failedCount)
}
