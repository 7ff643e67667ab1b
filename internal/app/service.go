package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mergington/activities/internal/adapter/metrics"
	"github.com/mergington/activities/internal/domain"
)

// signupMetrics is the slice of metrics the service emits. Implemented by
// metrics.SignupMetrics; tests substitute a recorder.
type signupMetrics interface {
	ObserveEnroll(activity, result string)
	ObserveWithdraw(activity, result string)
	SetRoster(activity string, participants, capacity int)
}

// Service is the application layer. It orchestrates the registry, keeps the
// roster gauges current, and logs mutations.
type Service struct {
	activities domain.ActivityRepository
	metrics    signupMetrics
}

// NewService creates the application layer service and seeds the roster
// gauges from the registry's initial state. metrics may be nil.
func NewService(activities domain.ActivityRepository, m signupMetrics) (*Service, error) {
	s := &Service{
		activities: activities,
		metrics:    m,
	}

	if m != nil {
		all, err := activities.List(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to seed roster metrics: %w", err)
		}
		for name, a := range all {
			m.SetRoster(name, len(a.Participants), a.MaxParticipants)
		}
	}

	return s, nil
}

// ListActivities returns every activity record keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	return s.activities.List(ctx)
}

// Signup enrolls email into the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	err := s.activities.Enroll(ctx, name, email)
	if s.metrics != nil {
		s.metrics.ObserveEnroll(name, enrollResult(err))
	}
	if err != nil {
		return err
	}

	s.updateRosterGauge(ctx, name)
	slog.InfoContext(ctx, "Student signed up", "activity", name, "email", email)
	return nil
}

// Unregister withdraws email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	err := s.activities.Withdraw(ctx, name, email)
	if s.metrics != nil {
		s.metrics.ObserveWithdraw(name, withdrawResult(err))
	}
	if err != nil {
		return err
	}

	s.updateRosterGauge(ctx, name)
	slog.InfoContext(ctx, "Student unregistered", "activity", name, "email", email)
	return nil
}

// HealthCheck verifies the registry is loaded and serving.
func (s *Service) HealthCheck(ctx context.Context) error {
	all, err := s.activities.List(ctx)
	if err != nil {
		return fmt.Errorf("registry unavailable: %w", err)
	}
	if len(all) == 0 {
		return errors.New("registry is empty")
	}
	return nil
}

func (s *Service) updateRosterGauge(ctx context.Context, name string) {
	if s.metrics == nil {
		return
	}
	a, err := s.activities.Get(ctx, name)
	if err != nil {
		slog.WarnContext(ctx, "Failed to refresh roster gauge", "activity", name, "error", err)
		return
	}
	s.metrics.SetRoster(name, len(a.Participants), a.MaxParticipants)
}

func enrollResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrActivityNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		return metrics.ResultAlreadySignedUp
	case errors.Is(err, domain.ErrActivityFull):
		return metrics.ResultFull
	default:
		return metrics.ResultError
	}
}

func withdrawResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrActivityNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrNotEnrolled):
		return metrics.ResultNotRegistered
	default:
		return metrics.ResultError
	}
}
