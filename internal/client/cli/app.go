package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/renewadmin/internal/client/archive"
	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/config"
	"github.com/dmitrijs2005/renewadmin/internal/client/services"
	"github.com/dmitrijs2005/renewadmin/internal/client/session"
	"github.com/dmitrijs2005/renewadmin/internal/clockx"
	"github.com/dmitrijs2005/renewadmin/internal/logging"
)

const (
	MsgSignIn       = "Silakan login terlebih dahulu"
	MsgNoScreen     = "Belum ada daftar yang dibuka, gunakan: list <resource>"
	MsgDeleted      = "Data berhasil dihapus"
	MsgReminderSent = "Pengingat WhatsApp berhasil dikirim"
)

var errNoSession = errors.New("no valid session")

type App struct {
	cfg       *config.Config
	log       logging.Logger
	db        *sql.DB
	store     *session.MetadataStore
	guard     *session.Guard
	auth      services.AuthService
	catalog   *services.Catalog
	reports   services.ReportService
	reminders services.ReminderService
	sink      archive.Sink
	clock     clockx.Clock
	reader    *bufio.Reader
	out       io.Writer
	outMu     sync.Mutex

	mu       sync.Mutex
	identity *session.Identity
	signIn   bool
	screen   listScreen
}

// NewApp opens the local database and wires the services. Output goes to
// out and operator input is read from in.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sink, err := archive.NewSinkFromConfig(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report archive: %w", err)
	}

	a := &App{
		cfg:    c,
		log:    log,
		db:     db,
		store:  session.NewMetadataStore(db),
		sink:   sink,
		clock:  clockx.Real{},
		reader: bufio.NewReader(in),
		out:    out,
	}

	a.guard = session.NewGuard(a.store, a, a, session.Options{
		Timeout:       c.SessionTimeout,
		RedirectDelay: c.RedirectDelay,
		Clock:         a.clock,
		Logger:        log,
	})

	api := client.NewHTTPClient(c.APIBaseURL, c.APIKey, a.guard, c.RequestTimeout, log)
	a.auth = services.NewAuthService(api, a.guard)
	a.catalog = services.NewCatalog(api)
	a.reports = services.NewReportService(api)
	a.reminders = services.NewReminderService(api)

	return a, nil
}

// Run restores a stored session when it is still valid and starts the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("renewadmin console (type 'help' for commands)")

	if s, err := a.guard.Check(ctx); err == nil {
		a.setIdentity(&s.Identity)
		a.printf("Masuk sebagai %s\n", s.Identity)
	} else {
		a.ToSignIn()
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	a.closeScreen()
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}

// ToSignIn is called by the session guard. The REPL picks the flag up
// before the next prompt.
func (a *App) ToSignIn() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.identity = nil
	a.signIn = true
}

// Notify prints short notices; it may be called from timer goroutines.
func (a *App) Notify(msg string) {
	a.println(msg)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity != nil
}

// takeSignIn reports and resets a pending forced sign-in.
func (a *App) takeSignIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	v := a.signIn
	a.signIn = false
	return v
}

func (a *App) setIdentity(id *session.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.identity = id
	a.signIn = false
}

func (a *App) status() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := ""
	if a.identity != nil {
		s = a.identity.Username
	}
	if a.screen != nil {
		if s != "" {
			s += " "
		}
		s += a.screen.resource()
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// protect opens a protected command. It returns false when the operator
// has no valid session; the guard has then already asked for sign-in.
func (a *App) protect(ctx context.Context) (*session.Session, session.CancelFunc, bool) {
	s, cancel, err := a.guard.Protect(ctx)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionExpired):
			a.println(client.MsgSessionExpired)
		case errors.Is(err, session.ErrNoSession):
			a.println(MsgSignIn)
		default:
			a.fail(ctx, err)
		}
		return nil, nil, false
	}
	return s, cancel, true
}

// fail shows err inline. After a 401 the local session is re-checked and
// sign-in is forced only when it is missing or expired.
func (a *App) fail(ctx context.Context, err error) {
	a.println(client.UserMessage(err))
	a.log.Debug(ctx, "command failed", "error", err)

	if errors.Is(err, client.ErrUnauthorized) && a.guard.Revalidate(ctx) {
		a.closeScreen()
	}
}

func (a *App) setScreen(s listScreen) {
	a.mu.Lock()
	old := a.screen
	a.screen = s
	a.mu.Unlock()
	if old != nil {
		old.close()
	}
}

func (a *App) currentScreen() listScreen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen
}

func (a *App) closeScreen() {
	a.setScreen(nil)
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// write hands fn the output while holding the output lock.
func (a *App) write(fn func(w io.Writer)) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fn(a.out)
}
