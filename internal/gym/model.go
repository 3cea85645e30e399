package gym

import (
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

type GymCenter struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Address     string    `db:"address" json:"address"`
	Phone       string    `db:"phone" json:"phone"`
	Email       string    `db:"email" json:"email"`
	OpenMinute  int       `db:"open_minute" json:"-"`
	CloseMinute int       `db:"close_minute" json:"-"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type GymResponse struct {
	GymCenter
	OpenTime  string `json:"open_time" example:"06:00"`
	CloseTime string `json:"close_time" example:"23:00"`
}

func NewGymResponse(g GymCenter) GymResponse {
	return GymResponse{
		GymCenter: g,
		OpenTime:  schedule.FormatClock(g.OpenMinute),
		CloseTime: schedule.FormatClock(g.CloseMinute),
	}
}

type CreateGymRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=250"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	OpenTime    string `json:"open_time" binding:"required"`
	CloseTime   string `json:"close_time" binding:"required"`
	Description string `json:"description"`
}
