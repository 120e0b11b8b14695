package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/touchbase/internal/client/client"
	"github.com/dmitrijs2005/touchbase/internal/client/config"
	"github.com/dmitrijs2005/touchbase/internal/client/generator"
	"github.com/dmitrijs2005/touchbase/internal/client/repositories/session"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
	"github.com/dmitrijs2005/touchbase/internal/logging"
)

// clipboardWriteAll is a test seam for the system clipboard.
var clipboardWriteAll = clipboard.WriteAll

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboardWriteAll(text)
}

type App struct {
	logger logging.Logger
	db     *sql.DB
	client client.Client

	state     *services.State
	sessions  *services.SessionManager
	composer  *services.Composer
	contacts  *services.ContactEditor
	occasions *services.OccasionEditor
	router    *Router

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session file, connects to the store and picks the text
// generation provider. A missing provider key is not fatal: the template
// messages are offered instead.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewText(os.Stderr, level)

	db, err := client.InitDatabase(ctx, cfg.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := client.NewGRPCClient(cfg.StoreURL, cfg.StorePublicKey, logger.With("module", "store"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	provider, err := generator.New(ctx, cfg.Provider, generator.Options{
		APIKey:    cfg.ProviderAPIKey,
		Model:     cfg.ProviderModel,
		BaseURL:   cfg.ProviderBaseURL,
		Timeout:   cfg.ProviderTimeout,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		if !errors.Is(err, generator.ErrNotConfigured) {
			_ = store.Close()
			_ = db.Close()
			return nil, err
		}
		logger.Warn(ctx, "provider api key not set, template messages only", "provider", cfg.Provider)
	}

	app := newApp(store, session.NewSQLiteRepository(db), provider, systemClipboard{}, logger, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c client.Client, repo session.Repository, p generator.Provider, cb services.Clipboard, logger logging.Logger, in io.Reader, out io.Writer) *App {
	state := services.NewState(c, logger.With("module", "state"))
	sessions := services.NewSessionManager(c, repo, state, logger.With("module", "session"))
	sessions.Start()

	return &App{
		logger:    logger,
		client:    c,
		state:     state,
		sessions:  sessions,
		composer:  services.NewComposer(state, c, services.ProviderStrategy{Provider: p}, cb, logger.With("module", "composer")),
		contacts:  services.NewContactEditor(state, c, logger),
		occasions: services.NewOccasionEditor(state, c, logger),
		router:    NewRouter(),
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

func (a *App) isSignedIn() bool {
	return a.state.Identity() != nil
}

func (a *App) status() string {
	s := "tb"
	if id := a.state.Identity(); id != nil {
		s += " (" + id.Email + ")"
	}
	return fmt.Sprintf("%s %s", s, a.router.Current())
}

// Run resumes a saved session if there is one and serves the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to TouchBase (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		a.logger.Warn(ctx, "store ping failed", "error", err)
		fmt.Fprintln(a.out, describe(err))
	}

	resumed, err := a.sessions.Restore(ctx)
	switch {
	case err != nil && resumed:
		fmt.Fprintln(a.out, describe(err))
	case services.IsSessionRejected(err):
		fmt.Fprintln(a.out, "Saved session expired, please sign in again.")
	case err != nil:
		fmt.Fprintln(a.out, describe(err))
	case resumed:
		fmt.Fprintf(a.out, "Signed in as %s\n", a.state.Identity().Email)
		a.render()
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) close(ctx context.Context) {
	a.sessions.Close()
	if err := a.client.Close(); err != nil {
		a.logger.Warn(ctx, "closing store connection", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing session db", "error", err)
		}
	}
}

func (a *App) view() View {
	return View{
		Identity:  a.state.Identity(),
		Contacts:  a.state.Contacts(),
		Occasions: a.state.Occasions(),
		Messages:  a.state.Messages(),
		Selection: a.composer.Selection(),
	}
}

func (a *App) render() {
	fmt.Fprintln(a.out)
	a.router.Render(a.out, a.view())
}

func (a *App) confirm(question string) bool {
	return GetYesNo(a.reader, question, a.out)
}

// describe turns an error into the line shown to the user. Store
// authentication messages are shown as they are.
func describe(err error) string {
	var authErr *client.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.Is(err, services.ErrNotConfirmed):
		return "Cancelled."
	case errors.Is(err, client.ErrSessionExpired):
		return "Session expired, please sign in again."
	case errors.Is(err, client.ErrNotSignedIn), errors.Is(err, client.ErrUnauthorized):
		return "Please sign in first."
	case errors.Is(err, client.ErrUnavailable):
		return "Store unavailable, try again later."
	case errors.Is(err, services.ErrNoContactSelected):
		return "Please select a contact"
	}
	return "Error: " + err.Error()
}
