package cmd

import (
	"log/slog"

	"github.com/go-drift/easystate/cmd/easystate/internal/config"
	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/errors"
)

// environment is the resolved configuration plus the logger built from it.
type environment struct {
	cfg    *config.Resolved
	logger *slog.Logger
}

// loadEnvironment resolves configuration for the project directory and
// installs the runtime error handler and debug mode it describes.
func loadEnvironment() (*environment, error) {
	dir := projectDir
	if dir == "" {
		root, err := config.FindProjectRoot(".")
		if err != nil {
			root = "."
		}
		dir = root
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger(stderr)
	errors.SetHandler(errors.NewSlogHandler(logger, cfg.VerboseErrors))
	core.SetDebugMode(cfg.Debug)

	logger.Debug("configuration resolved", "root", cfg.Root, "module", cfg.ModulePath)
	return &environment{cfg: cfg, logger: logger}, nil
}
