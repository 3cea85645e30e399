package appointment

import (
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// validTransitions encodes the status machine. Completed, cancelled and
// no_show are terminal.
var validTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusCancelled, StatusNoShow},
	StatusApproved: {StatusCompleted, StatusCancelled, StatusNoShow},
}

func canTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID                 int        `db:"id" json:"id"`
	MemberID           int        `db:"member_id" json:"member_id"`
	TrainerID          int        `db:"trainer_id" json:"trainer_id"`
	ServiceID          int        `db:"service_id" json:"service_id"`
	AppointmentDate    time.Time  `db:"appointment_date" json:"appointment_date"`
	StartMinute        int        `db:"start_minute" json:"-"`
	EndMinute          int        `db:"end_minute" json:"-"`
	Status             string     `db:"status" json:"status"`
	PriceCents         int64      `db:"price_cents" json:"price_cents"`
	Notes              *string    `db:"notes" json:"notes,omitempty"`
	CancellationReason *string    `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	ApprovedBy         *int       `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt         *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

func (a *Appointment) Range() schedule.TimeRange {
	return schedule.TimeRange{Start: a.StartMinute, End: a.EndMinute}
}

type AppointmentResponse struct {
	Appointment
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewAppointmentResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		Appointment: a,
		StartTime:   schedule.FormatClock(a.StartMinute),
		EndTime:     schedule.FormatClock(a.EndMinute),
	}
}

type CreateAppointmentRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required"`
	ServiceID int    `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Notes     string `json:"notes" binding:"max=500"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// SlotResponse is the wire shape for one offered slot.
type SlotResponse struct {
	Time   string `json:"time"`
	IsFull bool   `json:"isFull"`
}
