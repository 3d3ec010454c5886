package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

type accountService struct {
	store     ports.UserStore
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	cache     ports.IdentityCache
	activity  ports.ActivityRecorder
	tokenTTL  time.Duration
	dummyHash string
	log       zerolog.Logger
}

// NewAccountService wires the authentication protocol. cache and activity are
// optional; nil disables them.
func NewAccountService(
	store ports.UserStore,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	cache ports.IdentityCache,
	activity ports.ActivityRecorder,
	tokenTTL time.Duration,
	log zerolog.Logger,
) ports.AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	// Pre-computed hash of a throwaway password, verified on the
	// missing-user and inactive paths so login timing stays level with the
	// wrong-password path. On failure those paths fall back to comparing
	// against an empty hash, which still rejects the attempt.
	dummyHash, err := hasher.Hash("timing-equalizer")
	if err != nil {
		log.Warn().Err(err).Msg("timing-equalizer hash unavailable, unknown-user logins will return faster")
	}
	return &accountService{
		store:     store,
		hasher:    hasher,
		issuer:    issuer,
		cache:     cache,
		activity:  activity,
		tokenTTL:  tokenTTL,
		dummyHash: dummyHash,
		log:       log,
	}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("register: %w", domain.ErrInvalidInput)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user, err := s.store.CreateUser(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil, fmt.Errorf("register: %w", domain.ErrRegistrationConflict)
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.record(domain.ActivityEvent{Subject: user.Name, Action: domain.ActionRegister, At: time.Now().UTC()})
	s.log.Info().Int64("user_id", user.ID).Str("name", user.Name).Msg("account registered")
	return user, nil
}

func (s *accountService) Login(ctx context.Context, name, password string) (string, error) {
	if name == "" || password == "" {
		return "", fmt.Errorf("login: %w", domain.ErrInvalidInput)
	}

	user, err := s.store.FindByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		s.hasher.Verify(s.dummyHash, password)
		return "", s.loginFailed(name)
	case err != nil:
		return "", fmt.Errorf("login: %w", err)
	}

	if !user.Active {
		s.hasher.Verify(s.dummyHash, password)
		return "", s.loginFailed(name)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", s.loginFailed(name)
	}

	token, err := s.issuer.Issue(user.Name, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("login: sign token: %w", err)
	}

	s.record(domain.ActivityEvent{Subject: user.Name, Action: domain.ActionLoginSuccess, At: time.Now().UTC()})
	s.log.Info().Str("name", user.Name).Msg("login succeeded")
	return token, nil
}

// loginFailed records the attempt and returns the one uniform login error.
func (s *accountService) loginFailed(name string) error {
	s.record(domain.ActivityEvent{Subject: name, Action: domain.ActionLoginFailure, At: time.Now().UTC()})
	s.log.Warn().Str("name", name).Msg("login failed")
	return domain.ErrAuthenticationFailed
}

func (s *accountService) Resolve(ctx context.Context, subject string) (*domain.User, error) {
	if s.cache != nil {
		if user, ok := s.cache.Get(ctx, subject); ok {
			return user, nil
		}
	}

	user, err := s.store.FindByName(ctx, subject)
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return nil, domain.ErrIdentityNotFound
	case err != nil:
		return nil, fmt.Errorf("resolve: %w", err)
	}

	if !user.Active {
		return nil, domain.ErrIdentityNotFound
	}

	if s.cache != nil {
		s.cache.Set(ctx, subject, user)
	}
	return user, nil
}

func (s *accountService) ResolveID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.FindByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return nil, domain.ErrIdentityNotFound
	case err != nil:
		return nil, fmt.Errorf("resolve id: %w", err)
	}

	if !user.Active {
		return nil, domain.ErrIdentityNotFound
	}
	return user, nil
}

func (s *accountService) Deactivate(ctx context.Context, subject string) error {
	user, err := s.store.FindByName(ctx, subject)
	switch {
	case errors.Is(err, domain.ErrIdentityNotFound):
		return domain.ErrIdentityNotFound
	case err != nil:
		return fmt.Errorf("deactivate: %w", err)
	}

	if err := s.store.Deactivate(ctx, user.ID); err != nil {
		return fmt.Errorf("deactivate: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, subject)
	}
	s.record(domain.ActivityEvent{Subject: subject, Action: domain.ActionDeactivate, At: time.Now().UTC()})
	s.log.Info().Str("name", subject).Msg("account deactivated")
	return nil
}

func (s *accountService) record(event domain.ActivityEvent) {
	if s.activity != nil {
		s.activity.Record(event)
	}
}
