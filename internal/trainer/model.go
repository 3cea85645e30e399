package trainer

import "time"

type Trainer struct {
	ID              int       `db:"id" json:"id"`
	GymCenterID     int       `db:"gym_center_id" json:"gym_center_id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Phone           string    `db:"phone" json:"phone"`
	Email           string    `db:"email" json:"email"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Bio             string    `db:"bio" json:"bio"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	HireDate        time.Time `db:"hire_date" json:"hire_date"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// FullName is derived from the stored name parts, never stored itself.
func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

type TrainerResponse struct {
	Trainer
	FullName string `json:"full_name"`
}

func NewTrainerResponse(t Trainer) TrainerResponse {
	return TrainerResponse{Trainer: t, FullName: t.FullName()}
}

// TrainerSummary is the compact shape used by the service-selection flow.
type TrainerSummary struct {
	ID       int    `db:"id" json:"id"`
	FullName string `json:"full_name"`

	FirstName string `db:"first_name" json:"-"`
	LastName  string `db:"last_name" json:"-"`
}

type CreateTrainerRequest struct {
	GymCenterID     int    `json:"gym_center_id" binding:"required"`
	FirstName       string `json:"first_name" binding:"required,max=50"`
	LastName        string `json:"last_name" binding:"required,max=50"`
	Phone           string `json:"phone"`
	Email           string `json:"email" binding:"omitempty,email"`
	Specialization  string `json:"specialization" binding:"max=100"`
	Bio             string `json:"bio" binding:"max=500"`
	ExperienceYears int    `json:"experience_years" binding:"gte=0"`
	ServiceIDs      []int  `json:"service_ids"`
}
