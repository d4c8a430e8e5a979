package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/easystate/cmd/easystate/internal/config"
)

// goVersion is written to the go directive of scaffolded projects.
const goVersion = "1.24"

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a new easystate project",
		Long: `Create a new easystate project in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - easystate.yaml with default settings
  - main.go with a starter component bound to a store

The project name is derived from the directory basename.
The module path defaults to the project name if not specified.

Examples:
  easystate init myapp
  easystate init myapp github.com/username/myapp
  easystate init ./projects/myapp`,
		Usage: "easystate init <directory> [module-path]",
		Run:   runInit,
	})
}

// initTemplateData contains the data for init template substitution.
type initTemplateData struct {
	ModulePath string
	AppName    string
}

var mainTemplate = template.Must(template.New("main.go").Parse(`package main

import (
	"fmt"

	"github.com/go-drift/easystate/pkg/core"
	"github.com/go-drift/easystate/pkg/observer"
	"github.com/go-drift/easystate/pkg/view"
	"github.com/go-drift/easystate/pkg/widgets"
)

var count = observer.NewValue(0)

var Counter = view.Wrap(core.Func("Counter", func(props core.Props, ctx core.BuildContext) core.Widget {
	return widgets.TextOf(fmt.Sprintf("{{.AppName}}: %d", count.Get()))
}))

func main() {
	owner := core.NewBuildOwner()
	root := core.MountRoot(core.El(Counter, nil), owner)
	defer root.Unmount()

	count.Set(1)
	owner.FlushBuild()
}
`))

// runInit creates a new project. The first argument is the directory path
// to create (which may be relative or absolute). The project name is derived from
// the directory's basename. An optional second argument overrides the Go module path,
// which otherwise defaults to the project name.
func runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: easystate init <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by easystate; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)

	// Validate directory path before deriving anything from it
	if err := validateDirectory(dir); err != nil {
		return err
	}

	projectName := filepath.Base(dir)
	modulePath := projectName
	if len(args) > 1 {
		modulePath = args[1]
	}

	if modulePath == "" {
		return fmt.Errorf("module path cannot be empty")
	}
	if err := module.CheckImportPath(modulePath); err != nil {
		return fmt.Errorf("invalid module path %q: %w", modulePath, err)
	}

	if err := validateProjectName(projectName); err != nil {
		return fmt.Errorf("invalid project name %q (derived from directory basename): %w", projectName, err)
	}

	if err := scaffoldProject(dir, modulePath); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Project created successfully!\n\n")
	fmt.Fprintf(stdout, "Next steps:\n")
	fmt.Fprintf(stdout, "  cd %s\n", dir)
	fmt.Fprintf(stdout, "  go mod tidy\n")
	fmt.Fprintf(stdout, "  go run .\n")

	return nil
}

// scaffoldProject creates the project directory and writes go.mod,
// easystate.yaml and main.go. It touches nothing but the filesystem,
// making it safe to call from tests without network access.
func scaffoldProject(dir, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Fprintf(stdout, "Creating new easystate project: %s\n", filepath.Base(dir))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := writeGoMod(dir, modulePath); err != nil {
		safeRemoveAll(dir)
		return err
	}
	fmt.Fprintln(stdout, "  Created go.mod")

	cfg := config.Default()
	cfg.App.Name = filepath.Base(dir)
	if _, err := config.Write(dir, cfg); err != nil {
		safeRemoveAll(dir)
		return err
	}
	fmt.Fprintf(stdout, "  Created %s\n", config.FileName)

	data := initTemplateData{ModulePath: modulePath, AppName: cfg.App.Name}
	if err := writeInitTemplate(dir, mainTemplate, data); err != nil {
		safeRemoveAll(dir)
		return err
	}
	fmt.Fprintln(stdout, "  Created main.go")

	return nil
}

func writeGoMod(dir, modulePath string) error {
	f := &modfile.File{}
	if err := f.AddModuleStmt(modulePath); err != nil {
		return fmt.Errorf("failed to build go.mod: %w", err)
	}
	if err := f.AddGoStmt(goVersion); err != nil {
		return fmt.Errorf("failed to build go.mod: %w", err)
	}
	data, err := f.Format()
	if err != nil {
		return fmt.Errorf("failed to format go.mod: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write go.mod: %w", err)
	}
	return nil
}

func writeInitTemplate(projectDir string, tmpl *template.Template, data initTemplateData) error {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", tmpl.Name(), err)
	}

	destPath := filepath.Join(projectDir, tmpl.Name())
	if err := os.WriteFile(destPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpl.Name(), err)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to create or
// clean up. This includes filesystem roots (/, C:\), the current/parent directory,
// and root-level absolute paths (e.g. /etc, C:\Users).
func validateDirectory(dir string) error {
	// The "" case is not reachable via runInit (filepath.Clean converts it to
	// "."), but is included for direct callers of validateDirectory.
	// "/" is kept explicitly because isVolumeRoot won't match "/" on Windows
	// (where the separator is \), yet "/" still refers to the current drive root.
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	// Reject filesystem roots (\, C:\, etc.)
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	// Reject root-level absolute paths (e.g. /etc, /home, C:\Users)
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is "/",
// on Windows this covers drive roots like "C:\" and the bare root "\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes validateDirectory.
// It silently no-ops for dangerous paths rather than returning an error, since
// it is called on cleanup paths where the original error should not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks that a project name (derived from the directory
// basename) is a valid identifier: starts with a letter, contains only letters,
// digits, underscores, and hyphens.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	// These prefix checks are redundant with the regex below, but produce
	// more actionable error messages for common mistakes (hidden dirs, flags).
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("project name cannot start with a dot")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("project name cannot start with a hyphen")
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("project name must start with a letter and contain only letters, numbers, underscores, and hyphens")
	}
	return nil
}
