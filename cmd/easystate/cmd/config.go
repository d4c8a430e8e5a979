package cmd

import (
	"fmt"

	"github.com/go-drift/easystate/cmd/easystate/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved project configuration",
		Long: `Show the configuration easystate resolves for the current project.

Values come from ` + config.FileName + ` when present; the app name falls
back to the last element of the go.mod module path.`,
		Usage: "easystate config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	cfg := env.cfg

	module := cfg.ModulePath
	if module == "" {
		module = "(none)"
	}

	fmt.Fprintln(stdout, "easystate project")
	fmt.Fprintln(stdout, "=================")
	fmt.Fprintf(stdout, "Root:           %s\n", cfg.Root)
	fmt.Fprintf(stdout, "Module:         %s\n", module)
	fmt.Fprintf(stdout, "App name:       %s\n", cfg.AppName)
	fmt.Fprintf(stdout, "Debug:          %t\n", cfg.Debug)
	fmt.Fprintf(stdout, "Log format:     %s\n", cfg.LogFormat)
	fmt.Fprintf(stdout, "Log level:      %s\n", cfg.LogLevel)
	fmt.Fprintf(stdout, "Verbose errors: %t\n", cfg.VerboseErrors)
	return nil
}
