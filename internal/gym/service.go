package gym

import (
	"context"
	"errors"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

var ErrInvalidHours = errors.New("invalid opening hours")

type Service interface {
	CreateGym(ctx context.Context, req CreateGymRequest) (*GymResponse, error)
	GetAllGyms(ctx context.Context) ([]GymResponse, error)
	GetGymByID(ctx context.Context, id int) (*GymResponse, error)
	DeactivateGym(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateGym(ctx context.Context, req CreateGymRequest) (*GymResponse, error) {
	openMinute, err := schedule.ParseClock(req.OpenTime)
	if err != nil {
		return nil, ErrInvalidHours
	}

	closeMinute, err := schedule.ParseClock(req.CloseTime)
	if err != nil {
		return nil, ErrInvalidHours
	}

	hours := schedule.TimeRange{Start: openMinute, End: closeMinute}
	if err := hours.Validate(); err != nil {
		return nil, ErrInvalidHours
	}

	g := &GymCenter{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		OpenMinute:  openMinute,
		CloseMinute: closeMinute,
		Description: req.Description,
	}

	created, err := s.repo.Create(ctx, g)
	if err != nil {
		return nil, err
	}

	resp := NewGymResponse(*created)
	return &resp, nil
}

func (s *service) GetAllGyms(ctx context.Context) ([]GymResponse, error) {
	gyms, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GymResponse, 0, len(gyms))
	for _, g := range gyms {
		responses = append(responses, NewGymResponse(g))
	}

	return responses, nil
}

func (s *service) GetGymByID(ctx context.Context, id int) (*GymResponse, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := NewGymResponse(*g)
	return &resp, nil
}

func (s *service) DeactivateGym(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
