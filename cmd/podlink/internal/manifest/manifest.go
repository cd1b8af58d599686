// Package manifest reads podlink.yaml, the project file declaring which pod
// targets to generate settings for.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-podlink/podlink/cmd/podlink/internal/target"
)

// FileName is the manifest file looked up at the project root.
const FileName = "podlink.yaml"

// Manifest is the parsed podlink.yaml.
type Manifest struct {
	Targets []TargetDecl `yaml:"targets"`
}

// TargetDecl declares one pod target.
type TargetDecl struct {
	Name                  string       `yaml:"name"`
	Platform              string       `yaml:"platform,omitempty"`
	DeploymentTarget      string       `yaml:"deployment_target,omitempty"`
	DynamicFramework      bool         `yaml:"dynamic_framework,omitempty"`
	Prefix                string       `yaml:"prefix,omitempty"`
	PublicConfig          string       `yaml:"public_config,omitempty"`
	ConfigurationBuildDir string       `yaml:"configuration_build_dir,omitempty"`
	Frameworks            []string     `yaml:"frameworks,omitempty"`
	Libraries             []string     `yaml:"libraries,omitempty"`
	Settings              SettingsList `yaml:"settings,omitempty"`
}

// SettingsList is an ordered list of settings overrides. YAML mappings lose
// their order through map decoding, so this decodes the node directly.
type SettingsList []target.Setting

// UnmarshalYAML decodes a YAML mapping while preserving declaration order.
func (s *SettingsList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("settings must be a mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("setting %q must have a scalar value", key.Value)
		}
		*s = append(*s, target.Setting{Key: key.Value, Value: value.Value})
	}
	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.MappingNode:
		return "a mapping"
	default:
		return "an unexpected node"
	}
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Targets) == 0 {
		return errors.New("no targets declared")
	}

	seen := make(map[string]bool, len(m.Targets))
	for _, decl := range m.Targets {
		name := strings.TrimSpace(decl.Name)
		if name == "" {
			return errors.New("target with empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate target %q", name)
		}
		seen[name] = true

		if decl.Platform != "" && !target.SupportedPlatform(decl.Platform) {
			return fmt.Errorf("target %q: unknown platform %q (supported: %s)",
				name, decl.Platform, strings.Join(target.SupportedPlatforms, ", "))
		}
	}
	return nil
}

// Target returns the declaration for name.
func (m *Manifest) Target(name string) (TargetDecl, bool) {
	for _, decl := range m.Targets {
		if decl.Name == name {
			return decl, true
		}
	}
	return TargetDecl{}, false
}

// Resolve turns a declaration into a target descriptor backed by headers.
// The platform defaults to ios when the declaration leaves it out.
func Resolve(decl TargetDecl, headers target.HeaderSearcher) *target.Target {
	platform := decl.Platform
	if platform == "" {
		platform = "ios"
	}

	return target.New(target.Options{
		Name:                  decl.Name,
		Platform:              target.Platform{Name: platform, DeploymentTarget: decl.DeploymentTarget},
		DynamicFramework:      decl.DynamicFramework,
		ConfigurationBuildDir: decl.ConfigurationBuildDir,
		Prefix:                decl.Prefix,
		Frameworks:            decl.Frameworks,
		Libraries:             decl.Libraries,
		Overrides:             decl.Settings,
		Headers:               headers,
	})
}

// FindProjectRoot walks up from the current directory to the directory
// containing podlink.yaml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a podlink project (no %s found)", FileName)
		}
		dir = parent
	}
}
