package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

// AuthAPI is the authentication surface the manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (models.TokenResponse, error)
	Refresh(ctx context.Context) (models.TokenResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context, accessToken string) (models.Profile, error)
}

// Broadcaster announces login/logout transitions to sibling processes.
type Broadcaster interface {
	BroadcastLogin() error
	BroadcastLogout() error
}

var (
	// ErrRefreshFailed means the durable refresh credential is missing,
	// expired or rejected; the user is effectively logged out.
	ErrRefreshFailed = errors.New("session refresh failed")

	// ErrMalformedToken means the access token could not be decoded. It is
	// treated exactly like a refresh failure.
	ErrMalformedToken = errors.New("malformed access token")
)

// DefaultRefreshLead is how long before expiry the renewal fires.
const DefaultRefreshLead = 5 * time.Minute

const renewTimeout = 30 * time.Second

type credential struct {
	accessToken string
	expiresAt   time.Time
}

// Manager owns the per-process credential, renews it before expiry and keeps
// the derived session state. Exactly one renewal timer is pending at any
// time; it is stopped and rescheduled atomically under the state mutex.
type Manager struct {
	api         AuthAPI
	broadcaster Broadcaster
	logger      *zap.Logger
	lead        time.Duration
	now         func() time.Time

	mu      sync.Mutex
	cred    *credential
	profile *models.Profile
	loading bool
	timer   *time.Timer
}

// Option customizes a Manager.
type Option func(*Manager)

// WithRefreshLead overrides the renewal lead time.
func WithRefreshLead(lead time.Duration) Option {
	return func(m *Manager) { m.lead = lead }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager builds a session manager. The broadcaster may be nil when no
// cross-process signaling is wired.
func NewManager(api AuthAPI, broadcaster Broadcaster, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		api:         api,
		broadcaster: broadcaster,
		logger:      logger,
		lead:        DefaultRefreshLead,
		now:         time.Now,
		loading:     true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login exchanges credentials for a session. On success the credential is
// adopted, renewal is scheduled, the profile is fetched and a login signal is
// broadcast. On failure the authentication error propagates unchanged and
// prior state is untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Session, error) {
	tok, err := m.api.Login(ctx, email, password)
	if err != nil {
		return m.Session(), err
	}

	exp, err := tokenExpiry(tok.AccessToken)
	if err != nil {
		m.clearLocal()
		return m.Session(), fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	m.adopt(tok.AccessToken, exp)

	profile, err := m.api.Profile(ctx, tok.AccessToken)
	if err != nil {
		return m.Session(), fmt.Errorf("fetch profile: %w", err)
	}
	m.setProfile(profile)

	if m.broadcaster != nil {
		if err := m.broadcaster.BroadcastLogin(); err != nil {
			m.logger.Warn("broadcast login failed", zap.Error(err))
		}
	}

	m.logger.Info("logged in", zap.String("email", profile.Email), zap.Time("token_expires_at", exp))
	return m.Session(), nil
}

// Logout notifies the server best-effort, then unconditionally clears the
// local credential, cancels the renewal timer and broadcasts a logout signal.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		// Local cleanup happens regardless; the cookie dies on its own.
		m.logger.Warn("server logout failed", zap.Error(err))
	}

	m.clearLocal()

	if m.broadcaster != nil {
		if err := m.broadcaster.BroadcastLogout(); err != nil {
			m.logger.Warn("broadcast logout failed", zap.Error(err))
		}
	}

	m.logger.Info("logged out")
}

// Refresh mints a new credential from the ambient refresh cookie. Failure of
// any step clears local state: the user is effectively logged out.
func (m *Manager) Refresh(ctx context.Context) (models.Session, error) {
	defer m.finishLoading()

	tok, err := m.api.Refresh(ctx)
	if err != nil {
		m.clearLocal()
		return m.Session(), fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	exp, err := tokenExpiry(tok.AccessToken)
	if err != nil {
		m.clearLocal()
		return m.Session(), fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	m.adopt(tok.AccessToken, exp)

	profile, err := m.api.Profile(ctx, tok.AccessToken)
	if err != nil {
		m.clearLocal()
		return m.Session(), fmt.Errorf("fetch profile: %w", err)
	}
	m.setProfile(profile)

	return m.Session(), nil
}

// Bootstrap performs the initial silent refresh to discover whether a durable
// session exists. A failure only means the user is not logged in.
func (m *Manager) Bootstrap(ctx context.Context) models.Session {
	sess, err := m.Refresh(ctx)
	if err != nil {
		m.logger.Info("no existing session", zap.Error(err))
	}
	return sess
}

// ForceLogout clears local state without contacting the server. Used when a
// sibling process already invalidated the session server-side. Safe to call
// repeatedly.
func (m *Manager) ForceLogout() {
	m.clearLocal()
	m.logger.Info("session cleared by external logout signal")
}

// Session returns a snapshot of the user-facing state.
func (m *Manager) Session() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := models.Session{Loading: m.loading}
	if m.cred != nil && m.now().Before(m.cred.expiresAt) {
		sess.Authenticated = true
	}
	if m.profile != nil {
		p := *m.profile
		sess.Profile = &p
	}
	return sess
}

// Token implements the API client's TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cred == nil {
		return ""
	}
	return m.cred.accessToken
}

// Close cancels any pending renewal.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

// adopt stores the credential and reschedules renewal. When expiry is already
// inside the lead window the refresh fires immediately instead of via timer.
func (m *Manager) adopt(accessToken string, expiresAt time.Time) {
	m.mu.Lock()
	m.cred = &credential{accessToken: accessToken, expiresAt: expiresAt}
	m.stopTimerLocked()

	delay := expiresAt.Sub(m.now()) - m.lead
	if delay > 0 {
		m.timer = time.AfterFunc(delay, m.renew)
		m.mu.Unlock()
		m.logger.Debug("renewal scheduled", zap.Duration("in", delay))
		return
	}
	m.mu.Unlock()

	m.logger.Debug("token expiry imminent, refreshing now")
	go m.renew()
}

// renew is the timer callback driving the silent refresh.
func (m *Manager) renew() {
	ctx, cancel := context.WithTimeout(context.Background(), renewTimeout)
	defer cancel()

	if _, err := m.Refresh(ctx); err != nil {
		m.logger.Warn("background refresh failed", zap.Error(err))
	}
}

func (m *Manager) setProfile(profile models.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = &profile
}

func (m *Manager) clearLocal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = nil
	m.profile = nil
	m.stopTimerLocked()
}

func (m *Manager) finishLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// tokenExpiry decodes the exp claim without verifying the signature; the
// client holds no key and only tracks expiry.
func tokenExpiry(accessToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}
	return exp.Time, nil
}
