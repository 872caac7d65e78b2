package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/renewadmin/internal/clockx"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
)

// MsgExpiredNotice is shown when a running session times out.
const MsgExpiredNotice = "Sesi Anda telah berakhir, silakan login kembali"

// Navigator moves the user to the sign-in screen.
type Navigator interface {
	ToSignIn()
}

// Notifier shows a short, non-blocking message.
type Notifier interface {
	Notify(msg string)
}

// CancelFunc releases the expiry watch armed by Protect. Safe to call twice.
type CancelFunc func()

type Options struct {
	// Timeout caps how long a protected screen stays open.
	Timeout time.Duration
	// RedirectDelay separates the expiry notice from the redirect.
	RedirectDelay time.Duration
	Clock         clockx.Clock
	Logger        logging.Logger
}

type Guard struct {
	store         Store
	nav           Navigator
	notifier      Notifier
	timeout       time.Duration
	redirectDelay time.Duration
	clock         clockx.Clock
	log           logging.Logger
}

func NewGuard(store Store, nav Navigator, notifier Notifier, opts Options) *Guard {
	if opts.Clock == nil {
		opts.Clock = clockx.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &Guard{
		store:         store,
		nav:           nav,
		notifier:      notifier,
		timeout:       opts.Timeout,
		redirectDelay: opts.RedirectDelay,
		clock:         opts.Clock,
		log:           opts.Logger,
	}
}

// Check validates the stored token against the clock. Malformed and expired
// tokens are removed from the store.
func (g *Guard) Check(ctx context.Context) (*Session, error) {
	token, err := g.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil, ErrNoSession
	}

	id, err := Decode(token)
	if err != nil {
		g.log.Warn(ctx, "discarding malformed token", "error", err)
		return nil, g.expire(ctx, fmt.Errorf("%w: %w", ErrSessionExpired, err))
	}
	if !id.ExpiresAt.After(g.clock.Now()) {
		g.log.Info(ctx, "session expired", "user", id.Username, "exp", id.ExpiresAt)
		return nil, g.expire(ctx, ErrSessionExpired)
	}

	return &Session{Token: token, Identity: id}, nil
}

func (g *Guard) expire(ctx context.Context, cause error) error {
	if err := g.store.Clear(ctx); err != nil {
		return errors.Join(cause, fmt.Errorf("clear session: %w", err))
	}
	return cause
}

// Protect is called when a protected screen opens. Without a valid session
// it sends the user to sign-in right away. Otherwise it arms one expiry
// timer for the screen; the returned CancelFunc must be called when the
// screen closes.
func (g *Guard) Protect(ctx context.Context) (*Session, CancelFunc, error) {
	s, err := g.Check(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSession) || errors.Is(err, ErrSessionExpired) {
			g.nav.ToSignIn()
		}
		return nil, func() {}, err
	}

	w := &watch{}
	d := g.watchDuration(s.Identity.ExpiresAt)
	ctx = context.WithoutCancel(ctx)

	w.mu.Lock()
	w.timers = append(w.timers, g.clock.AfterFunc(d, func() { g.fire(ctx, w) }))
	w.mu.Unlock()

	return s, w.cancel, nil
}

// watchDuration is the configured timeout, shortened when the token expires
// earlier.
func (g *Guard) watchDuration(exp time.Time) time.Duration {
	left := exp.Sub(g.clock.Now())
	if g.timeout <= 0 || left < g.timeout {
		return left
	}
	return g.timeout
}

func (g *Guard) fire(ctx context.Context, w *watch) {
	if w.isCancelled() {
		return
	}

	g.notifier.Notify(MsgExpiredNotice)
	if err := g.store.Clear(ctx); err != nil {
		g.log.Error(ctx, "failed to clear expired session", "error", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled {
		return
	}
	w.timers = append(w.timers, g.clock.AfterFunc(g.redirectDelay, func() {
		if w.finish() {
			g.nav.ToSignIn()
		}
	}))
}

// Start stores a freshly issued token. A token that is already expired is
// refused and nothing is stored.
func (g *Guard) Start(ctx context.Context, token string) (*Session, error) {
	id, err := Decode(token)
	if err != nil {
		return nil, err
	}
	if !id.ExpiresAt.After(g.clock.Now()) {
		return nil, ErrSessionExpired
	}
	if err := g.store.Save(ctx, token, id.Username); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	g.log.Info(ctx, "session started", "user", id.Username, "role", id.Role, "exp", id.ExpiresAt)
	return &Session{Token: token, Identity: id}, nil
}

// End removes the session.
func (g *Guard) End(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the stored token as is, so a request with an outdated token
// still reaches the backend and gets its 401.
func (g *Guard) Token(ctx context.Context) (string, error) {
	return g.store.Load(ctx)
}

// Revalidate re-checks the local session, typically after the backend
// answered 401. When the session is gone or expired the user is sent to
// sign-in and true is returned; a locally valid session is left alone.
func (g *Guard) Revalidate(ctx context.Context) bool {
	if _, err := g.Check(ctx); err != nil {
		g.nav.ToSignIn()
		return true
	}
	return false
}

type watch struct {
	mu        sync.Mutex
	cancelled bool
	timers    []clockx.Timer
}

func (w *watch) isCancelled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancelled
}

// finish marks the watch done and reports whether it was still live.
func (w *watch) finish() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancelled {
		return false
	}
	w.cancelled = true
	return true
}

func (w *watch) cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelled = true
	for _, t := range w.timers {
		t.Stop()
	}
}
