package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type activityService struct {
	store ports.ActivityStore
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService backed by the given store.
func NewActivityService(store ports.ActivityStore, log zerolog.Logger) ports.ActivityService {
	return &activityService{store: store, log: log}
}

// Process persists a single activity event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.Subject == "" || event.Action == "" {
		return fmt.Errorf("process activity: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Append(ctx, event); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}
	s.log.Debug().Str("subject", event.Subject).Str("action", string(event.Action)).Msg("activity recorded")
	return nil
}

// Recent returns the subject's newest events, newest first.
func (s *activityService) Recent(ctx context.Context, subject string, limit int64) ([]domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	events, err := s.store.FindBySubject(ctx, subject, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return events, nil
}
