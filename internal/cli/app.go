// Package cli implements the interactive front-end of the vault: admin
// creation, the login and second-factor dialogue, and a small REPL over the
// account repository. All real guarantees live in the core packages; this
// layer only prompts, dispatches and prints.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"passvault/internal/auth"
	"passvault/internal/common"
	"passvault/internal/config"
	"passvault/internal/logging"
	"passvault/internal/repository"
	"passvault/internal/store"
	"passvault/internal/twofactor"
)

type App struct {
	config *config.Config
	log    logging.Logger
	flow   *auth.Flow
	store  store.Store
	repo   *repository.AccountRepository
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.NewFileStore(cfg.VaultDir)
	if err != nil {
		return nil, err
	}

	flow := auth.New(st, twofactor.NewIssuer(cfg.CodeTTL), log, cfg.SessionTimeout)

	return &App{
		config: cfg,
		log:    log,
		flow:   flow,
		store:  st,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run drives the whole interactive session: ensure the admin exists, log
// in, then hand over to the REPL. It returns when the user exits.
func (a *App) Run(ctx context.Context) error {
	if !a.flow.HasAdmin() {
		fmt.Fprintln(a.out, "No administrator found for this vault.")
		if err := a.createAdmin(ctx); err != nil {
			return err
		}
	}

	if err := a.login(ctx); err != nil {
		return err
	}

	a.runREPL(ctx)
	a.flow.Logout(ctx)
	return nil
}

// Init creates the administrator and exits; used by `vault init`.
func (a *App) Init(ctx context.Context) error {
	if a.flow.HasAdmin() {
		return common.ErrAdminExists
	}
	return a.createAdmin(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.flow.Session() != nil && a.flow.Session().IsValid()
}

// ensureSession polls session validity before every sensitive operation and
// forces a re-login after the timeout.
func (a *App) ensureSession(ctx context.Context) error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Session expired, please log in again.")
	a.flow.Logout(ctx)
	if err := a.login(ctx); err != nil {
		return err
	}
	return nil
}
