// Package target describes a single pod target: its identity, platform,
// linkage mode and the collaborators that resolve settings for it.
package target

import (
	"fmt"
	"strings"
)

// Platform identifies an Apple SDK family and its deployment target.
type Platform struct {
	Name             string // ios, osx, tvos or watchos
	DeploymentTarget string // e.g. "9.0", may be empty
}

// SupportedPlatforms lists the platform names a target may declare.
var SupportedPlatforms = []string{"ios", "osx", "tvos", "watchos"}

// SupportedPlatform reports whether name is a known platform.
func SupportedPlatform(name string) bool {
	for _, p := range SupportedPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

// HeaderSearcher resolves header search paths inside the dependency sandbox.
// Both methods return paths in stable order.
type HeaderSearcher interface {
	// BuildHeadersSearchPaths returns the search paths for the target's own
	// build headers.
	BuildHeadersSearchPaths(targetName string, platform Platform) []string
	// PublicHeadersSearchPaths returns the search paths for all public
	// headers visible on platform.
	PublicHeadersSearchPaths(platform Platform) []string
}

// Options collects the declaration of a pod target.
type Options struct {
	Name                  string
	Platform              Platform
	DynamicFramework      bool
	ConfigurationBuildDir string    // defaulted when empty
	Prefix                string    // xcconfig prefix, derived from Name when empty
	Frameworks            []string  // system frameworks to link
	Libraries             []string  // system libraries to link
	Overrides             []Setting // final per-target settings, order-significant
	Headers               HeaderSearcher
}

// Target is an immutable pod target descriptor.
type Target struct {
	opts Options
}

// New builds a target descriptor. A nil header searcher is a programming
// error and panics immediately rather than failing later mid-generation.
func New(opts Options) *Target {
	if opts.Headers == nil {
		panic("target: nil HeaderSearcher for " + opts.Name)
	}
	if opts.ConfigurationBuildDir == "" {
		opts.ConfigurationBuildDir = "$(BUILD_DIR)/$(CONFIGURATION)$(EFFECTIVE_PLATFORM_NAME)/" + opts.Name
	}
	return &Target{opts: opts}
}

// Name returns the target's declared name.
func (t *Target) Name() string { return t.opts.Name }

// Platform returns the platform the target builds for.
func (t *Target) Platform() Platform { return t.opts.Platform }

// RequiresDynamicFramework reports whether the target builds as a dynamic
// framework rather than a static library.
func (t *Target) RequiresDynamicFramework() bool { return t.opts.DynamicFramework }

// ConfigurationBuildDir returns the directory the target's products build into.
func (t *Target) ConfigurationBuildDir() string { return t.opts.ConfigurationBuildDir }

// XcconfigPrefix returns the string used to namespace the target's public
// settings. Defaults to the sanitized target name plus an underscore.
func (t *Target) XcconfigPrefix() string {
	if t.opts.Prefix != "" {
		return t.opts.Prefix
	}
	return SanitizedPrefix(t.opts.Name)
}

// Frameworks returns the system frameworks the target links against.
func (t *Target) Frameworks() []string { return t.opts.Frameworks }

// Libraries returns the system libraries the target links against.
func (t *Target) Libraries() []string { return t.opts.Libraries }

// OverrideSettings returns the target's final settings overrides in
// declaration order.
func (t *Target) OverrideSettings() []Setting { return t.opts.Overrides }

// BuildHeadersSearchPaths returns the search paths for the target's own
// build headers on platform.
func (t *Target) BuildHeadersSearchPaths(platform Platform) []string {
	return t.opts.Headers.BuildHeadersSearchPaths(t.opts.Name, platform)
}

// SandboxPublicHeadersSearchPaths returns the public header search paths of
// the dependency sandbox on platform.
func (t *Target) SandboxPublicHeadersSearchPaths(platform Platform) []string {
	return t.opts.Headers.PublicHeadersSearchPaths(platform)
}

// SanitizedPrefix derives a build-variable-safe namespace prefix from a
// target name: characters outside [A-Za-z0-9_] become underscores and a
// trailing underscore separates the prefix from the base setting name.
//
//	SanitizedPrefix("BananaLib")  == "BananaLib_"
//	SanitizedPrefix("Banana-Lib") == "Banana_Lib_"
func SanitizedPrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	prefix := b.String()
	if prefix == "" {
		panic(fmt.Sprintf("target: cannot derive xcconfig prefix from name %q", name))
	}
	if prefix[0] >= '0' && prefix[0] <= '9' {
		prefix = "_" + prefix
	}
	return prefix + "_"
}
