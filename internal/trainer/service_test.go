package trainer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTrainerRepo struct {
	mock.Mock
}

func (m *MockTrainerRepo) Create(ctx context.Context, t *Trainer) (*Trainer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, id int) (*Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetAllActive(ctx context.Context) ([]Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetByService(ctx context.Context, serviceID int) ([]TrainerSummary, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TrainerSummary), args.Error(1)
}

func (m *MockTrainerRepo) AssignServices(ctx context.Context, trainerID int, serviceIDs []int) error {
	args := m.Called(ctx, trainerID, serviceIDs)
	return args.Error(0)
}

func (m *MockTrainerRepo) OffersService(ctx context.Context, trainerID, serviceID int) (bool, error) {
	args := m.Called(ctx, trainerID, serviceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrainerRepo) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateTrainer_AssignsServices(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	req := CreateTrainerRequest{
		GymCenterID: 1,
		FirstName:   "Mehmet",
		LastName:    "Demir",
		ServiceIDs:  []int{3, 7},
	}

	created := &Trainer{ID: 42, GymCenterID: 1, FirstName: "Mehmet", LastName: "Demir", IsActive: true}

	repo.On("Create", ctx, mock.AnythingOfType("*trainer.Trainer")).Return(created, nil)
	repo.On("AssignServices", ctx, 42, []int{3, 7}).Return(nil)

	resp, err := svc.CreateTrainer(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "Mehmet Demir", resp.FullName)
	repo.AssertExpectations(t)
}

func TestCreateTrainer_NoServices(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	created := &Trainer{ID: 5, FirstName: "Elif", LastName: "Kaya"}
	repo.On("Create", ctx, mock.AnythingOfType("*trainer.Trainer")).Return(created, nil)

	resp, err := svc.CreateTrainer(ctx, CreateTrainerRequest{FirstName: "Elif", LastName: "Kaya"})

	assert.NoError(t, err)
	assert.Equal(t, 5, resp.ID)
	repo.AssertNotCalled(t, "AssignServices")
}

func TestCreateTrainer_AssignFails(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	created := &Trainer{ID: 9}
	repo.On("Create", ctx, mock.AnythingOfType("*trainer.Trainer")).Return(created, nil)
	repo.On("AssignServices", ctx, 9, []int{1}).Return(errors.New("db error"))

	resp, err := svc.CreateTrainer(ctx, CreateTrainerRequest{ServiceIDs: []int{1}})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestGetTrainer_NotFound(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, 99).Return(nil, ErrTrainerNotFound)

	resp, err := svc.GetTrainer(ctx, 99)

	assert.ErrorIs(t, err, ErrTrainerNotFound)
	assert.Nil(t, resp)
}

func TestListTrainers_DerivesFullName(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetAllActive", ctx).Return([]Trainer{
		{ID: 1, FirstName: "Ayşe", LastName: "Yılmaz"},
		{ID: 2, FirstName: "Can", LastName: "Öztürk"},
	}, nil)

	trainers, err := svc.ListTrainers(ctx)

	assert.NoError(t, err)
	assert.Len(t, trainers, 2)
	assert.Equal(t, "Ayşe Yılmaz", trainers[0].FullName)
	assert.Equal(t, "Can Öztürk", trainers[1].FullName)
}

func TestListTrainersByService(t *testing.T) {
	repo := new(MockTrainerRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByService", ctx, 3).Return([]TrainerSummary{
		{ID: 1, FullName: "Ayşe Yılmaz"},
	}, nil)

	summaries, err := svc.ListTrainersByService(ctx, 3)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Ayşe Yılmaz", summaries[0].FullName)
}
