package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/catalog"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/member"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/metrics"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
)

var (
	ErrInvalidDate         = errors.New("invalid appointment date")
	ErrInvalidTime         = errors.New("invalid appointment time")
	ErrServiceNotOffered   = errors.New("trainer does not offer this service")
	ErrOutsideAvailability = errors.New("requested time is outside trainer availability")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotOwner            = errors.New("appointment belongs to another member")
)

const (
	dateLayout      = "2006-01-02"
	maxReasonLength = 100
)

// The appointment service pulls what it needs from the surrounding
// packages through narrow interfaces so tests can stub each seam.

type CatalogProvider interface {
	GetService(ctx context.Context, id int) (*catalog.Service, error)
}

type TrainerDirectory interface {
	OffersService(ctx context.Context, trainerID, serviceID int) (bool, error)
}

type AvailabilityProvider interface {
	WindowsForDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Window, error)
}

type MemberDirectory interface {
	GetProfile(ctx context.Context, userID int) (*member.Profile, error)
}

// Notifier receives appointment lifecycle events. Delivery failures
// must not fail the operation that triggered them.
type Notifier interface {
	AppointmentCreated(ctx context.Context, a *Appointment)
	AppointmentApproved(ctx context.Context, a *Appointment)
	AppointmentCancelled(ctx context.Context, a *Appointment)
}

type Service interface {
	CreateAppointment(ctx context.Context, userID int, req CreateAppointmentRequest) (*AppointmentResponse, error)
	GetAvailableSlots(ctx context.Context, trainerID, serviceID int, dateStr string) ([]SlotResponse, error)
	ListMyAppointments(ctx context.Context, userID int) ([]AppointmentResponse, error)
	ListByStatus(ctx context.Context, status string) ([]AppointmentResponse, error)
	Approve(ctx context.Context, id, adminUserID int) (*AppointmentResponse, error)
	Cancel(ctx context.Context, id, userID int, isAdmin bool, reason string) (*AppointmentResponse, error)
	Complete(ctx context.Context, id int) (*AppointmentResponse, error)
	MarkNoShow(ctx context.Context, id int) (*AppointmentResponse, error)
}

type service struct {
	repo         Repository
	catalog      CatalogProvider
	trainers     TrainerDirectory
	availability AvailabilityProvider
	members      MemberDirectory
	notifier     Notifier
	now          func() time.Time
}

func NewService(
	repo Repository,
	catalogProvider CatalogProvider,
	trainers TrainerDirectory,
	availabilityProvider AvailabilityProvider,
	members MemberDirectory,
	notifier Notifier,
) Service {
	return &service{
		repo:         repo,
		catalog:      catalogProvider,
		trainers:     trainers,
		availability: availabilityProvider,
		members:      members,
		notifier:     notifier,
		now:          time.Now,
	}
}

func (s *service) CreateAppointment(ctx context.Context, userID int, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	profile, err := s.members.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	offers, err := s.trainers.OffersService(ctx, req.TrainerID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, ErrServiceNotOffered
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	// End is always derived from the service duration, never client-supplied.
	rng := schedule.TimeRange{Start: start, End: start + svc.DurationMinutes}
	if err := rng.Validate(); err != nil {
		return nil, ErrInvalidTime
	}

	windows, err := s.availability.WindowsForDate(ctx, req.TrainerID, date)
	if err != nil {
		return nil, err
	}
	if !insideAnyWindow(rng, windows) {
		return nil, ErrOutsideAvailability
	}

	// Fresh occupancy read right before insert. The database exclusion
	// constraint still backstops the race between this check and the
	// insert.
	booked, err := s.bookedForTrainerDate(ctx, req.TrainerID, date)
	if err != nil {
		return nil, err
	}
	if !schedule.IsTrainerAvailable(rng, booked) {
		metrics.RecordAppointmentConflict()
		return nil, ErrTimeConflict
	}

	a := &Appointment{
		MemberID:        profile.ID,
		TrainerID:       req.TrainerID,
		ServiceID:       req.ServiceID,
		AppointmentDate: date,
		StartMinute:     rng.Start,
		EndMinute:       rng.End,
		Status:          StatusPending,
		PriceCents:      svc.PriceCents,
	}
	if req.Notes != "" {
		a.Notes = &req.Notes
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, ErrTimeConflict) {
			metrics.RecordAppointmentConflict()
		}
		return nil, err
	}

	metrics.RecordAppointment(StatusPending)
	if s.notifier != nil {
		s.notifier.AppointmentCreated(ctx, created)
	}

	resp := NewAppointmentResponse(*created)
	return &resp, nil
}

func (s *service) GetAvailableSlots(ctx context.Context, trainerID, serviceID int, dateStr string) ([]SlotResponse, error) {
	metrics.RecordSlotQuery()

	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	offers, err := s.trainers.OffersService(ctx, trainerID, serviceID)
	if err != nil {
		return nil, err
	}
	if !offers {
		return nil, ErrServiceNotOffered
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	windows, err := s.availability.WindowsForDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedForTrainerDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateSlots(date.Weekday(), windows, booked, svc.DurationMinutes)
	if err != nil {
		return nil, err
	}

	responses := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, SlotResponse{
			Time:   schedule.FormatClock(slot.Range.Start),
			IsFull: slot.IsFull,
		})
	}

	return responses, nil
}

func (s *service) ListMyAppointments(ctx context.Context, userID int) ([]AppointmentResponse, error) {
	profile, err := s.members.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.repo.ListForMember(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return toResponses(appointments), nil
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]AppointmentResponse, error) {
	appointments, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	return toResponses(appointments), nil
}

func (s *service) Approve(ctx context.Context, id, adminUserID int) (*AppointmentResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTransition(a.Status, StatusApproved) {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	a.Status = StatusApproved
	a.ApprovedBy = &adminUserID
	a.ApprovedAt = &now

	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}

	metrics.RecordAppointment(StatusApproved)
	if s.notifier != nil {
		s.notifier.AppointmentApproved(ctx, a)
	}

	resp := NewAppointmentResponse(*a)
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, id, userID int, isAdmin bool, reason string) (*AppointmentResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		profile, err := s.members.GetProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		if a.MemberID != profile.ID {
			return nil, ErrNotOwner
		}
	}

	if !canTransition(a.Status, StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	a.Status = StatusCancelled
	if reason != "" {
		truncated := truncateReason(reason)
		a.CancellationReason = &truncated
	}

	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}

	metrics.RecordAppointment(StatusCancelled)
	if s.notifier != nil {
		s.notifier.AppointmentCancelled(ctx, a)
	}

	resp := NewAppointmentResponse(*a)
	return &resp, nil
}

func (s *service) Complete(ctx context.Context, id int) (*AppointmentResponse, error) {
	return s.transition(ctx, id, StatusCompleted)
}

func (s *service) MarkNoShow(ctx context.Context, id int) (*AppointmentResponse, error) {
	return s.transition(ctx, id, StatusNoShow)
}

func (s *service) transition(ctx context.Context, id int, to string) (*AppointmentResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTransition(a.Status, to) {
		return nil, ErrInvalidTransition
	}

	a.Status = to
	if err := s.repo.UpdateStatus(ctx, a); err != nil {
		return nil, err
	}

	metrics.RecordAppointment(to)
	resp := NewAppointmentResponse(*a)
	return &resp, nil
}

func (s *service) bookedForTrainerDate(ctx context.Context, trainerID int, date time.Time) ([]schedule.Booked, error) {
	appointments, err := s.repo.ListForTrainerDate(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}

	booked := make([]schedule.Booked, 0, len(appointments))
	for _, a := range appointments {
		booked = append(booked, schedule.Booked{
			Range:     a.Range(),
			Cancelled: a.Status == StatusCancelled,
		})
	}

	return booked, nil
}

func insideAnyWindow(rng schedule.TimeRange, windows []schedule.Window) bool {
	for _, w := range windows {
		if !w.Active {
			continue
		}
		if w.Range.Start <= rng.Start && rng.End <= w.Range.End {
			return true
		}
	}
	return false
}

func truncateReason(reason string) string {
	runes := []rune(reason)
	if len(runes) <= maxReasonLength {
		return reason
	}
	return string(runes[:maxReasonLength])
}

func toResponses(appointments []Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		responses = append(responses, NewAppointmentResponse(a))
	}
	return responses
}
