package reminder

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Service provides business logic for reminders.
type Service struct {
	reminders ReminderRepository
}

func NewService(r ReminderRepository) *Service {
	return &Service{reminders: r}
}

func checkTimes(fe apperr.FieldErrors, times []string) {
	if len(times) == 0 {
		fe.Add("times", "must contain at least one time")
		return
	}
	for _, t := range times {
		if !timeOfDay.MatchString(t) {
			fe.Add("times", "must be HH:MM, got "+t)
		}
	}
}

func checkWindow(fe apperr.FieldErrors, start time.Time, end *time.Time) {
	if end != nil && !start.IsZero() && end.Before(start) {
		fe.Add("end", "must not be before start")
	}
}

func (s *Service) CreateReminder(ctx context.Context, r *Reminder) error {
	fe := apperr.FieldErrors{}
	if r.Medication == uuid.Nil {
		fe.Add("medication", "is required")
	}
	if r.Start.IsZero() {
		fe.Add("start", "is required")
	}
	if strings.TrimSpace(r.Days) == "" {
		fe.Add("days", "is required")
	}
	checkTimes(fe, r.Times)
	checkWindow(fe, r.Start, r.End)
	if err := fe.Err(); err != nil {
		return err
	}
	return s.reminders.Create(ctx, r)
}

func (s *Service) GetReminder(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	return s.reminders.GetByID(ctx, id)
}

func (s *Service) UpdateReminder(ctx context.Context, id uuid.UUID, p *Patch) (*Reminder, error) {
	fe := apperr.FieldErrors{}
	if p.Medication != nil && *p.Medication == uuid.Nil {
		fe.Add("medication", "must not be empty")
	}
	if p.Days != nil && strings.TrimSpace(*p.Days) == "" {
		fe.Add("days", "must not be blank")
	}
	if p.Times != nil {
		checkTimes(fe, p.Times)
	}
	if p.Start != nil {
		checkWindow(fe, *p.Start, p.End)
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	return s.reminders.Update(ctx, id, p)
}

func (s *Service) DeleteReminder(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	return s.reminders.Delete(ctx, id)
}

func (s *Service) ListReminders(ctx context.Context) ([]*Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *Service) DeactivateReminder(ctx context.Context, req *DeactivateRequest) (*Reminder, error) {
	if req.ID == uuid.Nil {
		return nil, apperr.Validation("id", "is required")
	}
	return s.reminders.Deactivate(ctx, req.ID, req.User)
}
