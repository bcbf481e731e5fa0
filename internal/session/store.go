// Package session owns the current-customer session: who is signed in,
// restoring it from the durable vault at startup, and keeping the in-memory
// value and the persisted value consistent across every mutation.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"eastern-store/internal/domain"
	"eastern-store/internal/observability"

	"github.com/google/uuid"
)

// Demo identity returned by Login. There is no account directory behind the
// storefront; any non-empty credential pair signs in as this customer with
// the email the caller supplied.
var demoIdentity = domain.Session{
	ID:        "1",
	FirstName: "أحمد",
	LastName:  "محمد",
	Phone:     "+966 50 123 4567",
	Address:   "شارع الملك فهد، حي النرجس، الرياض",
	City:      "الرياض",
	Country:   "المملكة العربية السعودية",
}

const defaultDelay = time.Second

// Store is the single source of truth for the active session. All reads go
// through Current; all mutations persist to the vault before they become
// observable. Construct one per storefront instance, never share globals.
type Store struct {
	mu      sync.RWMutex
	vault   domain.SessionVault
	current *domain.Session
	loading bool

	delay time.Duration
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithDelay overrides the simulated network latency applied to Login and
// Register. Tests pass 0 to run synchronously.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithIDGenerator overrides how Register mints session IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore creates a session store backed by vault. The store starts in the
// initializing phase; call Restore once at startup to settle it.
func NewStore(vault domain.SessionVault, opts ...Option) *Store {
	s := &Store{
		vault:   vault,
		loading: true,
		delay:   defaultDelay,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore loads the persisted session from the vault. An absent slot leaves
// the store unauthenticated. A slot that fails to parse is cleared and the
// store falls back to unauthenticated; the parse error is never surfaced to
// callers. Restore always clears the loading flag.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	raw, ok, err := s.vault.Load(ctx)
	if err != nil {
		observability.Error("failed to load session vault", slog.String("error", err.Error()))
		return
	}
	if !ok {
		return
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		observability.Warn("discarding unparsable persisted session", slog.String("error", err.Error()))
		if clearErr := s.vault.Clear(ctx); clearErr != nil {
			observability.Error("failed to clear corrupt session slot", slog.String("error", clearErr.Error()))
		}
		return
	}

	s.current = &sess
	observability.SessionsRestored.Inc()
}

// Login signs in with an email/password pair. Any non-empty pair is accepted
// and yields the demo identity carrying the supplied email; an empty email
// or password fails without touching state. Replacing this with a real
// credential check must preserve the boolean contract and the guarantee
// that a failed login mutates nothing.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.pause(ctx); err != nil {
		return false
	}

	if email == "" || password == "" {
		observability.SessionLoginFailures.Inc()
		return false
	}

	sess := demoIdentity
	sess.Email = email
	sess.IsLoggedIn = true

	if !s.install(ctx, &sess) {
		return false
	}
	observability.SessionLogins.Inc()
	return true
}

// Register creates a session from the supplied profile. It always succeeds:
// no duplicate-email or format checks happen at this layer. A fresh unique
// ID is minted for the new session.
func (s *Store) Register(ctx context.Context, profile domain.Profile) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.pause(ctx); err != nil {
		return false
	}

	sess := domain.Session{
		ID:         s.newID(),
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Address:    profile.Address,
		City:       profile.City,
		Country:    profile.Country,
		IsLoggedIn: true,
	}

	if !s.install(ctx, &sess) {
		return false
	}
	observability.SessionRegistrations.Inc()
	return true
}

// Logout clears the in-memory session and the durable slot. Calling it with
// no active session is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.vault.Clear(ctx); err != nil {
		observability.Error("failed to clear session vault", slog.String("error", err.Error()))
	}
}

// UpdateProfile merges the supplied partial fields into the active session
// and persists the result. With no active session this is a no-op; it never
// creates a session as a side effect.
func (s *Store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}

	merged := *s.current
	applyUpdate(&merged, update)

	if err := s.persist(ctx, &merged); err != nil {
		observability.Error("failed to persist profile update", slog.String("error", err.Error()))
		return
	}
	s.current = &merged
}

// Current returns a snapshot of the active session. Mutating the returned
// value has no effect on the store.
func (s *Store) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.Session{}, false
	}
	return *s.current, true
}

// Loading reports whether the store is still initializing or a login or
// registration is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// install persists sess and, on success, makes it the current session.
// Persist-before-swap keeps a failed write from leaving the in-memory and
// durable forms out of sync.
func (s *Store) install(ctx context.Context, sess *domain.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, sess); err != nil {
		observability.Error("failed to persist session", slog.String("error", err.Error()))
		return false
	}
	s.current = sess
	return true
}

// persist writes the serialized session to the vault. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.vault.Save(ctx, string(raw))
}

// pause simulates the network round trip of a real auth backend. A zero
// delay returns immediately; cancelling ctx aborts the pending operation.
func (s *Store) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func applyUpdate(sess *domain.Session, update domain.ProfileUpdate) {
	if update.FirstName != nil {
		sess.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		sess.LastName = *update.LastName
	}
	if update.Email != nil {
		sess.Email = *update.Email
	}
	if update.Phone != nil {
		sess.Phone = *update.Phone
	}
	if update.Address != nil {
		sess.Address = *update.Address
	}
	if update.City != nil {
		sess.City = *update.City
	}
	if update.Country != nil {
		sess.Country = *update.Country
	}
}
