package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
)

type stubActivityStore struct {
	appended  []domain.ActivityEvent
	lastLimit int64
}

func (s *stubActivityStore) Append(_ context.Context, event domain.ActivityEvent) error {
	s.appended = append(s.appended, event)
	return nil
}

func (s *stubActivityStore) FindBySubject(_ context.Context, subject string, limit int64) ([]domain.ActivityEvent, error) {
	s.lastLimit = limit
	var out []domain.ActivityEvent
	for i := len(s.appended) - 1; i >= 0; i-- {
		if s.appended[i].Subject == subject {
			out = append(out, s.appended[i])
		}
	}
	return out, nil
}

func TestActivityService_ProcessAndRecent(t *testing.T) {
	store := &stubActivityStore{}
	svc := NewActivityService(store, zerolog.Nop())

	base := time.Now().UTC()
	events := []domain.ActivityEvent{
		{Subject: "alice", Action: domain.ActionRegister, At: base},
		{Subject: "alice", Action: domain.ActionLoginSuccess, At: base.Add(time.Second)},
		{Subject: "bob", Action: domain.ActionRegister, At: base.Add(2 * time.Second)},
	}
	for _, e := range events {
		if err := svc.Process(context.Background(), e); err != nil {
			t.Fatalf("process failed: %v", err)
		}
	}

	recent, err := svc.Recent(context.Background(), "alice", 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 events for alice, got %d", len(recent))
	}
	if recent[0].Action != domain.ActionLoginSuccess {
		t.Fatalf("expected newest event first, got %s", recent[0].Action)
	}
}

func TestActivityService_Process_Invalid(t *testing.T) {
	svc := NewActivityService(&stubActivityStore{}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{Subject: "", Action: domain.ActionRegister})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestActivityService_Recent_LimitBounds(t *testing.T) {
	store := &stubActivityStore{}
	svc := NewActivityService(store, zerolog.Nop())

	if _, err := svc.Recent(context.Background(), "alice", 0); err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if store.lastLimit != defaultActivityLimit {
		t.Fatalf("expected default limit %d, got %d", defaultActivityLimit, store.lastLimit)
	}

	if _, err := svc.Recent(context.Background(), "alice", 10_000); err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if store.lastLimit != maxActivityLimit {
		t.Fatalf("expected capped limit %d, got %d", maxActivityLimit, store.lastLimit)
	}
}
