package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-podlink/podlink/cmd/podlink/internal/compose"
	"github.com/go-podlink/podlink/cmd/podlink/internal/conf"
	"github.com/go-podlink/podlink/cmd/podlink/internal/manifest"
	"github.com/go-podlink/podlink/cmd/podlink/internal/sandbox"
	"github.com/go-podlink/podlink/cmd/podlink/internal/target"
	"github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"
)

// project bundles everything a command needs: the resolved project root,
// tool configuration, manifest and opened sandbox.
type project struct {
	Root     string
	Conf     conf.Config
	Manifest *manifest.Manifest
	Sandbox  *sandbox.Sandbox
}

// loadProject locates the project root from the working directory and opens
// its manifest and sandbox. With --manifest the named file is loaded instead
// and its directory becomes the project root.
func loadProject() (*project, error) {
	manifestPath, root, err := locateManifest()
	if err != nil {
		return nil, err
	}

	cfg, err := conf.Load(root)
	if err != nil {
		return nil, err
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	sb, err := sandbox.Open(filepath.Join(root, sandboxDir(cfg)))
	if err != nil {
		return nil, err
	}

	return &project{Root: root, Conf: cfg, Manifest: m, Sandbox: sb}, nil
}

// locateManifest resolves the manifest path and project root, honoring the
// --manifest flag over the directory walk.
func locateManifest() (manifestPath, root string, err error) {
	if manifestOverride != "" {
		manifestPath, err = filepath.Abs(manifestOverride)
		if err != nil {
			return "", "", fmt.Errorf("failed to resolve manifest path: %w", err)
		}
		return manifestPath, filepath.Dir(manifestPath), nil
	}

	root, err = manifest.FindProjectRoot()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(root, manifest.FileName), root, nil
}

// sandboxDir resolves the sandbox directory name.
// Priority: --sandbox flag > PODLINK_SANDBOX env > podlink.toml / default.
func sandboxDir(cfg conf.Config) string {
	if sandboxOverride != "" {
		return sandboxOverride
	}
	if envDir := os.Getenv("PODLINK_SANDBOX"); envDir != "" {
		return envDir
	}
	return cfg.SandboxDir
}

// composeTarget generates the private settings for one declared target.
func (p *project) composeTarget(decl manifest.TargetDecl) (*xcconfig.Config, error) {
	tgt := manifest.Resolve(decl, p.Sandbox)

	public, err := p.publicSettings(decl)
	if err != nil {
		return nil, err
	}

	return compose.Generate(tgt, public, target.LinkFlags{}, target.Overrides{}), nil
}

// publicSettings loads the target's public settings file. A target without
// one is legitimate and yields an empty settings set.
func (p *project) publicSettings(decl manifest.TargetDecl) (*xcconfig.Config, error) {
	path := decl.PublicConfig
	if path == "" {
		path = p.Sandbox.PublicXcconfigPath(decl.Name)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(p.Root, path)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("no public settings file", "target", decl.Name, "path", path)
		return xcconfig.New(), nil
	}

	return xcconfig.Load(path)
}
