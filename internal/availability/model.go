package availability

import (
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

// Window is a recurring weekly availability block for a trainer.
// Times are stored as minutes since midnight; the API speaks "HH:MM".
type Window struct {
	ID          int          `db:"id" json:"id"`
	TrainerID   int          `db:"trainer_id" json:"trainer_id"`
	DayOfWeek   time.Weekday `db:"day_of_week" json:"day_of_week"`
	StartMinute int          `db:"start_minute" json:"-"`
	EndMinute   int          `db:"end_minute" json:"-"`
	IsActive    bool         `db:"is_active" json:"is_active"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

func (w *Window) Range() schedule.TimeRange {
	return schedule.TimeRange{Start: w.StartMinute, End: w.EndMinute}
}

type WindowResponse struct {
	Window
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewWindowResponse(w Window) WindowResponse {
	return WindowResponse{
		Window:    w,
		StartTime: schedule.FormatClock(w.StartMinute),
		EndTime:   schedule.FormatClock(w.EndMinute),
	}
}

type CreateWindowRequest struct {
	TrainerID int    `json:"trainer_id" binding:"required"`
	DayOfWeek int    `json:"day_of_week" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
