package trainer

import (
	"context"
)

type Service interface {
	CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*TrainerResponse, error)
	GetTrainer(ctx context.Context, id int) (*TrainerResponse, error)
	ListTrainers(ctx context.Context) ([]TrainerResponse, error)
	ListTrainersByService(ctx context.Context, serviceID int) ([]TrainerSummary, error)
	OffersService(ctx context.Context, trainerID, serviceID int) (bool, error)
	DeactivateTrainer(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*TrainerResponse, error) {
	t := &Trainer{
		GymCenterID:     req.GymCenterID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		Specialization:  req.Specialization,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	if len(req.ServiceIDs) > 0 {
		if err := s.repo.AssignServices(ctx, created.ID, req.ServiceIDs); err != nil {
			return nil, err
		}
	}

	resp := NewTrainerResponse(*created)
	return &resp, nil
}

func (s *service) GetTrainer(ctx context.Context, id int) (*TrainerResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := NewTrainerResponse(*t)
	return &resp, nil
}

func (s *service) ListTrainers(ctx context.Context) ([]TrainerResponse, error) {
	trainers, err := s.repo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		responses = append(responses, NewTrainerResponse(t))
	}

	return responses, nil
}

func (s *service) ListTrainersByService(ctx context.Context, serviceID int) ([]TrainerSummary, error) {
	return s.repo.GetByService(ctx, serviceID)
}

func (s *service) OffersService(ctx context.Context, trainerID, serviceID int) (bool, error) {
	return s.repo.OffersService(ctx, trainerID, serviceID)
}

func (s *service) DeactivateTrainer(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
