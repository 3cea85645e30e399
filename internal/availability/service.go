package availability

import (
	"context"
	"errors"
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

var ErrInvalidWindow = errors.New("invalid availability window")

type Service interface {
	CreateWindow(ctx context.Context, req CreateWindowRequest) (*WindowResponse, error)
	ListTrainerWindows(ctx context.Context, trainerID int) ([]WindowResponse, error)
	WindowsForDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Window, error)
	DeactivateWindow(ctx context.Context, id, trainerID int) error
	DeleteWindow(ctx context.Context, id, trainerID int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateWindow(ctx context.Context, req CreateWindowRequest) (*WindowResponse, error) {
	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	end, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidWindow
	}

	rng := schedule.TimeRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return nil, ErrInvalidWindow
	}

	w := &Window{
		TrainerID:   req.TrainerID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartMinute: start,
		EndMinute:   end,
	}

	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, err
	}

	resp := NewWindowResponse(*created)
	return &resp, nil
}

func (s *service) ListTrainerWindows(ctx context.Context, trainerID int) ([]WindowResponse, error) {
	windows, err := s.repo.ListForTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	responses := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, NewWindowResponse(w))
	}

	return responses, nil
}

// WindowsForDate converts the trainer's stored windows for the date's
// weekday into the shape the slot engine consumes.
func (s *service) WindowsForDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Window, error) {
	weekday := date.Weekday()

	windows, err := s.repo.ListActiveForTrainerWeekday(ctx, trainerID, weekday)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.Window, 0, len(windows))
	for _, w := range windows {
		out = append(out, schedule.Window{
			Weekday: w.DayOfWeek,
			Range:   w.Range(),
			Active:  w.IsActive,
		})
	}

	return out, nil
}

func (s *service) DeactivateWindow(ctx context.Context, id, trainerID int) error {
	return s.repo.Deactivate(ctx, id, trainerID)
}

func (s *service) DeleteWindow(ctx context.Context, id, trainerID int) error {
	return s.repo.Delete(ctx, id, trainerID)
}
