package email

import (
	"context"

	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/appointment"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/catalog"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/logger"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/member"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/schedule"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/trainer"
	"github.com/beratresuloglu/Tiger-Fitness-Center/internal/user"
)

// Notifier turns appointment lifecycle events into queued emails.
// Lookups or queueing may fail; the triggering operation already
// succeeded, so failures are only logged.
type Notifier struct {
	emails   *Service
	members  member.Repository
	users    user.Repository
	services catalog.Repository
	trainers trainer.Repository
}

func NewNotifier(emails *Service, members member.Repository, users user.Repository, services catalog.Repository, trainers trainer.Repository) *Notifier {
	return &Notifier{
		emails:   emails,
		members:  members,
		users:    users,
		services: services,
		trainers: trainers,
	}
}

type recipient struct {
	email       string
	name        string
	serviceName string
	trainerName string
}

func (n *Notifier) resolve(ctx context.Context, a *appointment.Appointment) (*recipient, error) {
	m, err := n.members.GetByID(ctx, a.MemberID)
	if err != nil {
		return nil, err
	}

	u, err := n.users.FindByID(ctx, m.UserID)
	if err != nil {
		return nil, err
	}

	svc, err := n.services.GetByID(ctx, a.ServiceID)
	if err != nil {
		return nil, err
	}

	tr, err := n.trainers.GetByID(ctx, a.TrainerID)
	if err != nil {
		return nil, err
	}

	return &recipient{
		email:       u.Email,
		name:        m.FullName(),
		serviceName: svc.Name,
		trainerName: tr.FullName(),
	}, nil
}

func (n *Notifier) AppointmentCreated(ctx context.Context, a *appointment.Appointment) {
	r, err := n.resolve(ctx, a)
	if err != nil {
		logger.Errorf("Notify created: appointment %d: %v", a.ID, err)
		return
	}

	startTime := schedule.FormatClock(a.StartMinute)
	if err := n.emails.SendAppointmentReceived(ctx, r.email, r.name, r.serviceName, r.trainerName, a.AppointmentDate, startTime); err != nil {
		logger.Errorf("Notify created: appointment %d: %v", a.ID, err)
	}
}

func (n *Notifier) AppointmentApproved(ctx context.Context, a *appointment.Appointment) {
	r, err := n.resolve(ctx, a)
	if err != nil {
		logger.Errorf("Notify approved: appointment %d: %v", a.ID, err)
		return
	}

	startTime := schedule.FormatClock(a.StartMinute)
	if err := n.emails.SendAppointmentApproved(ctx, r.email, r.name, r.serviceName, r.trainerName, a.AppointmentDate, startTime); err != nil {
		logger.Errorf("Notify approved: appointment %d: %v", a.ID, err)
	}
}

func (n *Notifier) AppointmentCancelled(ctx context.Context, a *appointment.Appointment) {
	r, err := n.resolve(ctx, a)
	if err != nil {
		logger.Errorf("Notify cancelled: appointment %d: %v", a.ID, err)
		return
	}

	startTime := schedule.FormatClock(a.StartMinute)
	if err := n.emails.SendAppointmentCancelled(ctx, r.email, r.name, r.serviceName, a.AppointmentDate, startTime); err != nil {
		logger.Errorf("Notify cancelled: appointment %d: %v", a.ID, err)
	}
}
