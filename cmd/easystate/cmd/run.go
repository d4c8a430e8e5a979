package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/easystate/cmd/easystate/internal/demo"
	"github.com/go-drift/easystate/cmd/easystate/internal/inspect"
	"github.com/go-drift/easystate/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Play the demo store script frame by frame",
		Long: `Mount the todo demo, apply each scripted store mutation and print the
rendered text after every frame.

Only components that read the mutated store values re-render. Frame and
rebuild counts are logged at info level.

Flags:
  --frames N     Stop after N scripted frames (default: all)`,
		Usage: "easystate run [--frames N]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	steps := demo.Script()
	frames, err := parseCountFlag(args, "--frames", len(steps))
	if err != nil {
		return err
	}
	if frames < len(steps) {
		steps = steps[:frames]
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	store := demo.NewStore()
	owner := core.NewBuildOwner()
	requested := 0
	owner.OnNeedsFrame = func() { requested++ }

	root := core.MountRoot(demo.New(store), owner)
	defer root.Unmount()

	printFrame(0, "mount", root)
	for i, step := range steps {
		if err := step.Apply(store); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
		owner.FlushBuild()
		printFrame(i+1, step.Name, root)
	}

	env.logger.Info("run finished",
		"frames", len(steps),
		"frame_requests", requested,
		"rebuilds", owner.Rebuilds(),
	)
	return nil
}

func printFrame(n int, name string, root core.Element) {
	fmt.Fprintf(stdout, "frame %d: %s\n", n, name)
	for _, line := range inspect.Lines(root) {
		fmt.Fprintf(stdout, "  %s\n", line)
	}
}

// parseCountFlag extracts a non-negative integer flag given as "name N" or
// "name=N". It returns def when the flag is absent.
func parseCountFlag(args []string, name string, def int) (int, error) {
	value := ""
	found := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == name:
			if i+1 >= len(args) {
				return 0, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			found = true
			i++
		case strings.HasPrefix(arg, name+"="):
			value = strings.TrimPrefix(arg, name+"=")
			found = true
		default:
			return 0, fmt.Errorf("unknown argument %q", arg)
		}
	}
	if !found {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer (got %q)", name, value)
	}
	return n, nil
}
