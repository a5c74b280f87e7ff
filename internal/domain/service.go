package domain

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
)

// Service orchestrates roster operations over the injected store.
type Service struct {
	store     *Store
	publisher events.Publisher
	logger    *zap.Logger
}

// NewService constructs a Service.
func NewService(store *Store, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{store: store, publisher: publisher, logger: logger}
}

// ListActivities returns the full current state keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.store.Snapshot()
}

// Signup adds email to the named activity's roster.
func (s *Service) Signup(ctx context.Context, activityName, email string) error {
	size, err := s.store.SignUp(activityName, email)
	if err != nil {
		observability.RecordRosterOperation("signup", outcomeFor(err))
		return err
	}

	observability.RecordRosterOperation("signup", "ok")
	observability.SetRosterSize(activityName, size)
	s.logger.Info("participant signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("roster_size", size))

	s.publish(ctx, events.ActionSignup, activityName, email, size)
	return nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) error {
	size, err := s.store.Unregister(activityName, email)
	if err != nil {
		observability.RecordRosterOperation("unregister", outcomeFor(err))
		return err
	}

	observability.RecordRosterOperation("unregister", "ok")
	observability.SetRosterSize(activityName, size)
	s.logger.Info("participant unregistered",
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("roster_size", size))

	s.publish(ctx, events.ActionUnregister, activityName, email, size)
	return nil
}

// publish emits a roster event best-effort; failures never reach the caller.
func (s *Service) publish(ctx context.Context, action events.Action, activityName, email string, size int) {
	event := events.RosterChanged{
		Activity:   activityName,
		Email:      email,
		Action:     action,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRosterChanged(ctx, event); err != nil {
		s.logger.Warn("roster event publish failed",
			zap.String("activity", activityName),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

func outcomeFor(err error) string {
	if errors.Is(err, ErrActivityNotFound) {
		return "not_found"
	}
	return "conflict"
}
