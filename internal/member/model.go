package member

import (
	"math"
	"time"
)

type Member struct {
	ID                int        `db:"id" json:"id"`
	UserID            int        `db:"user_id" json:"user_id"`
	FirstName         string     `db:"first_name" json:"first_name"`
	LastName          string     `db:"last_name" json:"last_name"`
	Phone             string     `db:"phone" json:"phone"`
	DateOfBirth       time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Gender            *string    `db:"gender" json:"gender,omitempty"`
	Address           *string    `db:"address" json:"address,omitempty"`
	EmergencyContact  *string    `db:"emergency_contact" json:"emergency_contact,omitempty"`
	HeightCm          *float64   `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg          *float64   `db:"weight_kg" json:"weight_kg,omitempty"`
	FitnessGoal       *string    `db:"fitness_goal" json:"fitness_goal,omitempty"`
	MedicalConditions *string    `db:"medical_conditions" json:"medical_conditions,omitempty"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	JoinDate          time.Time  `db:"join_date" json:"join_date"`
	MembershipExpiry  *time.Time `db:"membership_expiry" json:"membership_expiry,omitempty"`
}

// FullName is derived from the stored name parts, never stored itself.
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Age in whole years at the given instant.
func (m *Member) Age(now time.Time) int {
	years := now.Year() - m.DateOfBirth.Year()
	anniversary := m.DateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// BMI from stored height and weight, rounded to two decimals.
// Nil when either measurement is missing or height is zero.
func (m *Member) BMI() *float64 {
	if m.HeightCm == nil || m.WeightKg == nil || *m.HeightCm <= 0 {
		return nil
	}
	heightM := *m.HeightCm / 100
	bmi := math.Round(*m.WeightKg/(heightM*heightM)*100) / 100
	return &bmi
}

type Profile struct {
	Member
	FullName string   `json:"full_name"`
	Age      int      `json:"age"`
	BMI      *float64 `json:"bmi,omitempty"`
}

// NewProfile attaches the derived fields for API responses.
func NewProfile(m Member, now time.Time) Profile {
	return Profile{
		Member:   m,
		FullName: m.FullName(),
		Age:      m.Age(now),
		BMI:      m.BMI(),
	}
}

type CreateMemberRequest struct {
	FirstName         string   `json:"first_name" binding:"required,max=50"`
	LastName          string   `json:"last_name" binding:"required,max=50"`
	Phone             string   `json:"phone" binding:"required"`
	DateOfBirth       string   `json:"date_of_birth" binding:"required"`
	Gender            *string  `json:"gender,omitempty"`
	Address           *string  `json:"address,omitempty"`
	EmergencyContact  *string  `json:"emergency_contact,omitempty"`
	HeightCm          *float64 `json:"height_cm,omitempty" binding:"omitempty,gt=0"`
	WeightKg          *float64 `json:"weight_kg,omitempty" binding:"omitempty,gt=0"`
	FitnessGoal       *string  `json:"fitness_goal,omitempty"`
	MedicalConditions *string  `json:"medical_conditions,omitempty"`
}

type UpdateMemberRequest struct {
	Phone             *string  `json:"phone,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Address           *string  `json:"address,omitempty"`
	EmergencyContact  *string  `json:"emergency_contact,omitempty"`
	HeightCm          *float64 `json:"height_cm,omitempty" binding:"omitempty,gt=0"`
	WeightKg          *float64 `json:"weight_kg,omitempty" binding:"omitempty,gt=0"`
	FitnessGoal       *string  `json:"fitness_goal,omitempty"`
	MedicalConditions *string  `json:"medical_conditions,omitempty"`
}
