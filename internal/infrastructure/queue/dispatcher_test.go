package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
)

type captureActivityService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	seen   chan struct{}
}

func newCaptureActivityService(expected int) *captureActivityService {
	return &captureActivityService{seen: make(chan struct{}, expected)}
}

func (s *captureActivityService) Process(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.seen <- struct{}{}
	return nil
}

func (s *captureActivityService) Recent(context.Context, string, int64) ([]domain.ActivityEvent, error) {
	return nil, nil
}

func (s *captureActivityService) bySubject(subject string) []domain.ActivityAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var actions []domain.ActivityAction
	for _, e := range s.events {
		if e.Subject == subject {
			actions = append(actions, e.Action)
		}
	}
	return actions
}

func TestDispatcher_PreservesPerSubjectOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newCaptureActivityService(6)
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	events := []domain.ActivityEvent{
		{Subject: "alice", Action: domain.ActionRegister},
		{Subject: "bob", Action: domain.ActionRegister},
		{Subject: "alice", Action: domain.ActionLoginFailure},
		{Subject: "bob", Action: domain.ActionLoginSuccess},
		{Subject: "alice", Action: domain.ActionLoginSuccess},
		{Subject: "alice", Action: domain.ActionDeactivate},
	}
	for _, e := range events {
		d.Record(e)
	}

	for range events {
		select {
		case <-svc.seen:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for events to be processed")
		}
	}

	wantAlice := []domain.ActivityAction{
		domain.ActionRegister,
		domain.ActionLoginFailure,
		domain.ActionLoginSuccess,
		domain.ActionDeactivate,
	}
	gotAlice := svc.bySubject("alice")
	if len(gotAlice) != len(wantAlice) {
		t.Fatalf("expected %d alice events, got %d", len(wantAlice), len(gotAlice))
	}
	for i := range wantAlice {
		if gotAlice[i] != wantAlice[i] {
			t.Fatalf("alice event %d: expected %s, got %s", i, wantAlice[i], gotAlice[i])
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureActivityService(0), zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index changed between calls")
		}
	}
}
