// Command adoptctl is a terminal front end for the pet-adoption backend:
// it authenticates, keeps the session on disk, and exposes the pet,
// adoption, user, category, and role operations the web dashboards use.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/huellitas/adoption-client/internal/core/service"
	"github.com/huellitas/adoption-client/internal/infrastructure/api"
	"github.com/huellitas/adoption-client/internal/infrastructure/store"
	"github.com/huellitas/adoption-client/internal/pkg/config"
	"github.com/huellitas/adoption-client/pkg/logger"
)

type appContext struct {
	ctx     context.Context
	api     *api.Client
	session *service.SessionService
}

type command struct {
	name        string
	usage       string
	description string
	run         func(app *appContext, args []string) error
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Development()})
	log := logger.Component("cli")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	cmd, ok := commands()[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}

	sessionStore, err := store.NewFileStore(cfg.SessionFile)
	if err != nil {
		log.Error().Err(err).Msg("initialise session store")
		os.Exit(1)
	}
	client := api.New(cfg.ServerURL, sessionStore, logger.Component("api"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &appContext{
		ctx:     ctx,
		api:     client,
		session: service.NewSessionService(client.Auth(), sessionStore, logger.Component("session")),
	}

	if err := cmd.run(app, os.Args[2:]); err != nil {
		switch {
		case api.IsAuthError(err):
			fmt.Fprintln(os.Stderr, "session expired, run `adoptctl login` and retry")
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status: 2 for
// command-line misuse, 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func printUsage() {
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "usage: adoptctl <command> [flags]")
	fmt.Fprintln(os.Stderr)
	w := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	for _, name := range names {
		cmd := cmds[name]
		fmt.Fprintf(w, "  %s\t%s\n", cmd.usage, cmd.description)
	}
	w.Flush() //nolint:errcheck // usage output
}
