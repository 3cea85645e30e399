package member

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidDateOfBirth = errors.New("invalid date of birth")

type Service interface {
	CreateProfile(ctx context.Context, userID int, req CreateMemberRequest) (*Profile, error)
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	GetByID(ctx context.Context, id int) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateMemberRequest) (*Profile, error)
	Deactivate(ctx context.Context, id int) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateProfile(ctx context.Context, userID int, req CreateMemberRequest) (*Profile, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	m := &Member{
		UserID:            userID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		Address:           req.Address,
		EmergencyContact:  req.EmergencyContact,
		HeightCm:          req.HeightCm,
		WeightKg:          req.WeightKg,
		FitnessGoal:       req.FitnessGoal,
		MedicalConditions: req.MedicalConditions,
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	profile := NewProfile(*created, s.now())
	return &profile, nil
}

func (s *service) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	m, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := NewProfile(*m, s.now())
	return &profile, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Profile, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := NewProfile(*m, s.now())
	return &profile, nil
}

func (s *service) GetAll(ctx context.Context) ([]Profile, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	profiles := make([]Profile, 0, len(members))
	for _, m := range members {
		profiles = append(profiles, NewProfile(m, now))
	}

	return profiles, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int, req UpdateMemberRequest) (*Profile, error) {
	m, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		m.Phone = *req.Phone
	}
	if req.Gender != nil {
		m.Gender = req.Gender
	}
	if req.Address != nil {
		m.Address = req.Address
	}
	if req.EmergencyContact != nil {
		m.EmergencyContact = req.EmergencyContact
	}
	if req.HeightCm != nil {
		m.HeightCm = req.HeightCm
	}
	if req.WeightKg != nil {
		m.WeightKg = req.WeightKg
	}
	if req.FitnessGoal != nil {
		m.FitnessGoal = req.FitnessGoal
	}
	if req.MedicalConditions != nil {
		m.MedicalConditions = req.MedicalConditions
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	profile := NewProfile(*m, s.now())
	return &profile, nil
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
