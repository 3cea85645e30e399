package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) Create(ctx context.Context, s *Service) (*Service, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Service), args.Error(1)
}

func (m *MockCatalogRepo) GetByID(ctx context.Context, id int) (*Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Service), args.Error(1)
}

func (m *MockCatalogRepo) GetAllActive(ctx context.Context) ([]Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Service), args.Error(1)
}

func (m *MockCatalogRepo) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateService(t *testing.T) {
	repo := new(MockCatalogRepo)
	svc := NewService(repo)
	ctx := context.Background()

	created := &Service{ID: 3, Name: "Personal Training", DurationMinutes: 60, PriceCents: 150000}
	repo.On("Create", ctx, mock.MatchedBy(func(s *Service) bool {
		return s.Name == "Personal Training" && s.DurationMinutes == 60
	})).Return(created, nil)

	result, err := svc.CreateService(ctx, CreateServiceRequest{
		GymCenterID:     1,
		Name:            "Personal Training",
		DurationMinutes: 60,
		PriceCents:      150000,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	repo.AssertExpectations(t)
}

func TestGetService_NotFound(t *testing.T) {
	repo := new(MockCatalogRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, 99).Return(nil, ErrServiceNotFound)

	result, err := svc.GetService(ctx, 99)

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, result)
}

func TestListServices(t *testing.T) {
	repo := new(MockCatalogRepo)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetAllActive", ctx).Return([]Service{
		{ID: 1, Name: "Personal Training", DurationMinutes: 60},
		{ID: 2, Name: "Pilates", DurationMinutes: 45},
	}, nil)

	services, err := svc.ListServices(ctx)

	assert.NoError(t, err)
	assert.Len(t, services, 2)
}
