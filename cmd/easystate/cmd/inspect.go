package cmd

import (
	"fmt"

	"github.com/go-drift/easystate/cmd/easystate/internal/demo"
	"github.com/go-drift/easystate/cmd/easystate/internal/inspect"
	"github.com/go-drift/easystate/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Draw the demo element tree",
		Long: `Mount the todo demo and draw its element tree.

Components are shown as <Name> (with key=... for keyed elements), text as
quoted strings, and other widgets by type.

Flags:
  --steps N      Apply the first N scripted mutations before drawing (default: 0)`,
		Usage: "easystate inspect [--steps N]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	steps := demo.Script()
	n, err := parseCountFlag(args, "--steps", 0)
	if err != nil {
		return err
	}
	if n > len(steps) {
		return fmt.Errorf("--steps must be at most %d", len(steps))
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	store := demo.NewStore()
	owner := core.NewBuildOwner()
	root := core.MountRoot(demo.New(store), owner)
	defer root.Unmount()

	for _, step := range steps[:n] {
		if err := step.Apply(store); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
		owner.FlushBuild()
	}

	fmt.Fprintln(stdout, inspect.Tree(root).String())
	env.logger.Debug("tree drawn", "elements", inspect.Count(root), "steps", n)
	return nil
}
