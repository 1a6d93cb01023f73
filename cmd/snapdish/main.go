package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"snapdish/config"
	"snapdish/internal/domain/lifecycle"
	"snapdish/internal/domain/service"
	"snapdish/internal/infra/api"
	"snapdish/internal/infra/auth"
	"snapdish/internal/infra/credential"
	"snapdish/internal/infra/imagestore"
	logs "snapdish/internal/infra/log"
	"snapdish/internal/usecase"
	"snapdish/internal/usecase/impl"
	"snapdish/internal/validation"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - register, login, logout, status: account and session
// - classify:                         guess the dish on a photo
// - add-meal, meals:                  log and review meals
// - update-meal, add-ingredients:     edit a logged meal

// app holds everything a subcommand may use.
type app struct {
	cfg            *config.Config
	sessions       usecase.SessionUsecase
	meals          usecase.MealUsecase
	photos         usecase.PhotoUsecase
	classification usecase.ClassificationUsecase
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		printUsage()

		return errors.Errorf("unknown command %q", name)
	}

	var deps app
	fxApp := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Populate(&deps.cfg, &deps.sessions, &deps.meals, &deps.photos, &deps.classification),
	)

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		return errors.Wrap(err, "start")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := fxApp.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: shutdown: %v\n", err)
		}
	}()

	return cmd(ctx, &deps, args)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		validation.New,
		newCredentialStore,
		newImageStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewClient,
				fx.As(new(service.BackendAPI)),
			),
			auth.NewTokenInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewMealService,
			impl.NewPhotoService,
			impl.NewClassificationService,
		),
	)
}

// newCredentialStore opens the SQLite token store and closes it when the app stops.
func newCredentialStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.CredentialStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	store, err := credential.NewSQLiteStore(ctx, cfg.Storage.CredentialsPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Opened credential store", slog.String("path", cfg.Storage.CredentialsPath))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// newImageStore opens the photo directory and closes the bucket when the app stops.
func newImageStore(lc fx.Lifecycle, cfg *config.Config) (service.ImageStore, error) {
	store, err := imagestore.NewFileStore(cfg.Storage.ImageDir)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: snapdish <command> [flags]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %-16s %s\n", name, commandHelp[name])
	}
}
