// Package service owns the authenticated identity: login and logout
// lifecycle, role derivation from drifting backend payloads, capability
// predicates, and role-based landing routes.
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/huellitas/adoption-client/internal/core/domain"
	"github.com/huellitas/adoption-client/internal/core/ports"
	"github.com/huellitas/adoption-client/internal/metrics"
)

// SessionService manages the single client session. The session has two
// states: anonymous (no token) and authenticated. The only way in is a
// successful Login; the ways out are Logout and the HTTP client's forced
// clear on a 403.
type SessionService struct {
	api      ports.AuthAPI
	store    ports.SessionStore
	validate *validator.Validate
	log      zerolog.Logger
	current  *domain.Session
}

// NewSessionService builds the service and reads the persisted session
// once, so a restarted process resumes its identity.
func NewSessionService(api ports.AuthAPI, store ports.SessionStore, log zerolog.Logger) *SessionService {
	s := &SessionService{
		api:      api,
		store:    store,
		validate: validator.New(),
		log:      log,
	}

	sess, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("discarding unreadable persisted session")
	} else {
		s.current = sess
	}
	return s
}

// Login authenticates against the backend, derives the role, and persists
// the resulting session. A response without a token under any known field
// name fails with domain.ErrNoToken; nothing is persisted in that case.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if err := validatePayload(s.validate, creds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	body, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	return s.establish(decodeBody(body), creds.Correo)
}

// RegisterAdopter creates an adopter account. When the backend's response
// carries a token the new account is logged in immediately and the session
// returned; otherwise the account exists but the caller must Login.
func (s *SessionService) RegisterAdopter(ctx context.Context, req domain.RegisterRequest) (*domain.Session, error) {
	if err := validatePayload(s.validate, req); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	body, err := s.api.RegisterAdopter(ctx, req)
	if err != nil {
		return nil, err
	}

	payload := decodeBody(body)
	if extractToken(payload) == "" {
		return nil, nil
	}
	return s.establish(payload, req.Correo)
}

// establish derives role and identity from a login-shaped payload and
// persists the session.
func (s *SessionService) establish(payload map[string]any, correo string) (*domain.Session, error) {
	token := extractToken(payload)
	if token == "" {
		return nil, domain.ErrNoToken
	}

	role, raw, matched := deriveRole(payload, token)
	if !matched {
		reason := "unrecognized"
		if raw == "" {
			reason = "missing"
		}
		metrics.RoleFallbackTotal.WithLabelValues(reason).Inc()
		s.log.Warn().
			Str("raw_role", raw).
			Str("reason", reason).
			Msg("role could not be derived, defaulting to adopter")
	}

	sess := &domain.Session{
		Token: token,
		User:  extractUser(payload, correo, role),
	}
	if err := s.store.Save(sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.current = sess

	s.log.Info().
		Str("correo", sess.User.Correo).
		Str("role", string(role)).
		Msg("session established")
	return sess, nil
}

// Logout clears all session state. Safe to call when already logged out.
func (s *SessionService) Logout() error {
	s.current = nil
	return s.store.Clear()
}

// Current returns the in-memory session and whether one exists.
func (s *SessionService) Current() (*domain.Session, bool) {
	if !s.current.Authenticated() {
		return nil, false
	}
	return s.current, true
}

// Authenticated reports whether a session is active.
func (s *SessionService) Authenticated() bool {
	return s.current.Authenticated()
}

// Role returns the active session's role, or RoleAdopter when anonymous;
// capability checks below are what callers should branch on.
func (s *SessionService) Role() domain.Role {
	if !s.current.Authenticated() {
		return domain.RoleAdopter
	}
	return s.current.User.Role
}

// IsAdmin reports admin capability (admin or superadmin).
func (s *SessionService) IsAdmin() bool {
	return s.current.Authenticated() && s.current.User.Role.IsAdmin()
}

// IsSuperAdmin reports the superadmin variant only.
func (s *SessionService) IsSuperAdmin() bool {
	return s.current.Authenticated() && s.current.User.Role.IsSuperAdmin()
}

// IsAdopter reports the unprivileged adopter role only.
func (s *SessionService) IsAdopter() bool {
	return s.current.Authenticated() && s.current.User.Role.IsAdopter()
}

// HomeRoute returns the landing route for the active session's role.
func (s *SessionService) HomeRoute() string {
	return domain.RouteFor(s.Role())
}

// Profile fetches the authenticated user from the backend. When the call
// reveals the session was invalidated (403 side effect cleared the store),
// the in-memory session is dropped too.
func (s *SessionService) Profile(ctx context.Context) (*domain.AccountUser, error) {
	if !s.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		if sess, loadErr := s.store.Load(); loadErr == nil && !sess.Authenticated() {
			s.current = nil
		}
		return nil, err
	}
	return user, nil
}
