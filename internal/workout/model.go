package workout

import "time"

type WorkoutPlan struct {
	ID        int       `db:"id" json:"id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	Goal      string    `db:"goal" json:"goal"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type GeneratePlanRequest struct {
	Goal string `json:"goal" binding:"required,max=200"`
}
