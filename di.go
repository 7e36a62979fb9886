package typedrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/typedrepo/alog"
	"github.com/go-arrower/typedrepo/repository"
)

var ErrMissingDependency = errors.New("missing dependency")

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
// All demo contexts share the same logger, validator, and store.
type Container struct {
	Logger   alog.Logger
	Config   *Config
	Validate *validator.Validate
	Store    repository.Store
}

func (c *Container) EnsureAllDependenciesPresent() error {
	if c.Config == nil {
		return fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	if c.Logger == nil || c.Validate == nil || c.Store == nil {
		return fmt.Errorf("%w: container is not initialised", ErrMissingDependency)
	}

	return nil
}

// InitialiseDefaultDependencies sets up the Container from conf.
// Log output is written to w: human-readable text for local and test environments, JSON otherwise.
// Call the returned shutdown func to release the store.
func InitialiseDefaultDependencies(
	ctx context.Context,
	conf *Config,
	w io.Writer,
) (*Container, func(ctx context.Context) error, error) {
	if conf == nil {
		return nil, nil, fmt.Errorf("%w: global config not found", ErrMissingDependency)
	}

	level, err := alog.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse log level: %w", err)
	}

	var logger *slog.Logger

	switch conf.Environment {
	case LocalEnv, TestEnv:
		logger = alog.NewDevelopment(w, level)
	default:
		logger = alog.New(
			alog.WithLevel(level),
			alog.WithHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{ReplaceAttr: alog.MapLogLevelsToName})),
		)
	}

	logger = logger.With(slog.String("environment", string(conf.Environment)))

	store, err := repository.NewStore(conf.StoreFormat, conf.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("could not initialise store: %w", err)
	}

	container := &Container{
		Logger:   logger,
		Config:   conf,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Store:    store,
	}

	logger.Log(ctx, alog.LevelInfo, "dependencies initialised",
		slog.String("store_format", string(conf.StoreFormat)),
		slog.String("data_dir", conf.DataDir),
	)

	shutdown := func(_ context.Context) error {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				return fmt.Errorf("could not close store: %w", err)
			}
		}

		return nil
	}

	return container, shutdown, nil
}
