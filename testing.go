package typedrepo

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/go-arrower/typedrepo/alog"
	"github.com/go-arrower/typedrepo/repository"
)

// TestContainer returns a Container for use in tests of the demo contexts.
// It uses the default configuration, keeps all files in a temporary directory,
// and logs to an alog.TestLogger, which is returned for assertions.
func TestContainer(t *testing.T) (*Container, *alog.TestLogger) {
	t.Helper()

	conf := Config{}
	if err := DefaultViper().Unmarshal(&conf); err != nil {
		t.Fatalf("could not load default config: %v", err)
	}

	conf.Environment = TestEnv
	conf.DataDir = t.TempDir()

	store, err := repository.NewStore(conf.StoreFormat, conf.DataDir)
	if err != nil {
		t.Fatalf("could not create store: %v", err)
	}

	logger := alog.Test(t)

	return &Container{
		Logger:   logger,
		Config:   &conf,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Store:    store,
	}, logger
}
