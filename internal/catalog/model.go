package catalog

import "time"

// Service is a bookable offering with a fixed session duration. The duration
// drives slot generation; appointment end times are always derived from it.
type Service struct {
	ID              int       `db:"id" json:"id"`
	GymCenterID     int       `db:"gym_center_id" json:"gym_center_id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int64     `db:"price_cents" json:"price_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateServiceRequest struct {
	GymCenterID     int    `json:"gym_center_id" binding:"required"`
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=500"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gte=15,lte=240"`
	PriceCents      int64  `json:"price_cents" binding:"required,gte=0"`
}
