package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-podlink/podlink/cmd/podlink/internal/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "generate",
		Short: "Generate private settings files for pod targets",
		Long: `Generate the private xcconfig file for each target declared in
podlink.yaml (or a single named target).

For every target, the public settings file is merged into the target's
baseline under its namespace prefix and the result is written to
<sandbox>/Target Support Files/<target>/<target>-Private.xcconfig,
overwriting any previous file.

Flags:
  --out DIR   Write the generated files into DIR instead of the sandbox
  --dry-run   Print the generated settings instead of writing them`,
		Usage: "podlink generate [target] [--out DIR] [--dry-run]",
		Run:   runGenerate,
	})
}

func runGenerate(args []string) error {
	var only, outDir string
	dryRun := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--dry-run":
			dryRun = true
		case arg == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("--out requires a directory path")
			}
			outDir = args[i+1]
			i++
		case strings.HasPrefix(arg, "--out="):
			outDir = strings.TrimPrefix(arg, "--out=")
		case strings.HasPrefix(arg, "--"):
			return fmt.Errorf("unknown flag %q", arg)
		case only != "":
			return fmt.Errorf("at most one target may be named (got %q and %q)", only, arg)
		default:
			only = arg
		}
	}

	p, err := loadProject()
	if err != nil {
		return err
	}

	decls := p.Manifest.Targets
	if only != "" {
		decl, ok := p.Manifest.Target(only)
		if !ok {
			return fmt.Errorf("target %q not declared in %s", only, manifest.FileName)
		}
		decls = []manifest.TargetDecl{decl}
	}

	for _, decl := range decls {
		generated, err := p.composeTarget(decl)
		if err != nil {
			return fmt.Errorf("failed to generate settings for %s: %w", decl.Name, err)
		}

		if dryRun {
			fmt.Printf("// %s\n%s\n", decl.Name, generated)
			continue
		}

		dir := p.Sandbox.SupportFilesDir(decl.Name)
		path := p.Sandbox.PrivateXcconfigPath(decl.Name)
		if outDir != "" {
			dir = outDir
			path = filepath.Join(outDir, decl.Name+"-Private.xcconfig")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		if err := generated.Save(path); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}

	return nil
}
