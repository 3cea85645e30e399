package availability

import (
	"context"
	"testing"
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWindowRepo struct {
	mock.Mock
}

func (m *MockWindowRepo) Create(ctx context.Context, w *Window) (*Window, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Window), args.Error(1)
}

func (m *MockWindowRepo) ListForTrainer(ctx context.Context, trainerID int) ([]Window, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Window), args.Error(1)
}

func (m *MockWindowRepo) ListActiveForTrainerWeekday(ctx context.Context, trainerID int, weekday time.Weekday) ([]Window, error) {
	args := m.Called(ctx, trainerID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Window), args.Error(1)
}

func (m *MockWindowRepo) Deactivate(ctx context.Context, id, trainerID int) error {
	args := m.Called(ctx, id, trainerID)
	return args.Error(0)
}

func (m *MockWindowRepo) Delete(ctx context.Context, id, trainerID int) error {
	args := m.Called(ctx, id, trainerID)
	return args.Error(0)
}

func TestCreateWindow(t *testing.T) {
	repo := new(MockWindowRepo)
	svc := NewService(repo)
	ctx := context.Background()

	created := &Window{
		ID:          1,
		TrainerID:   7,
		DayOfWeek:   time.Monday,
		StartMinute: 540,
		EndMinute:   720,
		IsActive:    true,
	}
	repo.On("Create", ctx, mock.AnythingOfType("*availability.Window")).Return(created, nil)

	resp, err := svc.CreateWindow(ctx, CreateWindowRequest{
		TrainerID: 7,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	repo.AssertExpectations(t)
}

func TestCreateWindow_RejectsBadClock(t *testing.T) {
	repo := new(MockWindowRepo)
	svc := NewService(repo)

	cases := []CreateWindowRequest{
		{TrainerID: 1, DayOfWeek: 1, StartTime: "9:00", EndTime: "12:00"},
		{TrainerID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "24:00"},
		{TrainerID: 1, DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"},
		{TrainerID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"},
	}

	for _, req := range cases {
		resp, err := svc.CreateWindow(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidWindow, "start=%s end=%s", req.StartTime, req.EndTime)
		assert.Nil(t, resp)
	}
	repo.AssertNotCalled(t, "Create")
}

func TestWindowsForDate_UsesDateWeekday(t *testing.T) {
	repo := new(MockWindowRepo)
	svc := NewService(repo)
	ctx := context.Background()

	// 2026-09-07 is a Monday.
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	repo.On("ListActiveForTrainerWeekday", ctx, 7, time.Monday).Return([]Window{
		{ID: 1, TrainerID: 7, DayOfWeek: time.Monday, StartMinute: 540, EndMinute: 720, IsActive: true},
		{ID: 2, TrainerID: 7, DayOfWeek: time.Monday, StartMinute: 840, EndMinute: 1020, IsActive: true},
	}, nil)

	windows, err := svc.WindowsForDate(ctx, 7, date)

	assert.NoError(t, err)
	assert.Equal(t, []schedule.Window{
		{Weekday: time.Monday, Range: schedule.TimeRange{Start: 540, End: 720}, Active: true},
		{Weekday: time.Monday, Range: schedule.TimeRange{Start: 840, End: 1020}, Active: true},
	}, windows)
}

func TestWindowsForDate_Empty(t *testing.T) {
	repo := new(MockWindowRepo)
	svc := NewService(repo)
	ctx := context.Background()

	date := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC) // Sunday

	repo.On("ListActiveForTrainerWeekday", ctx, 7, time.Sunday).Return([]Window{}, nil)

	windows, err := svc.WindowsForDate(ctx, 7, date)

	assert.NoError(t, err)
	assert.Empty(t, windows)
}
