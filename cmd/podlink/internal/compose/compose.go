// Package compose generates the private settings file for a pod target by
// merging its public settings into a target-specific baseline under a
// namespace prefix.
package compose

import (
	"github.com/go-podlink/podlink/cmd/podlink/internal/target"
	"github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"
)

// LinkFlagsResolver computes the default linker flags for a target.
type LinkFlagsResolver interface {
	DefaultLinkerFlags(t *target.Target) string
}

// TargetOverrides applies final per-target settings after the merge.
// Overrides take precedence over everything the merge produced.
type TargetOverrides interface {
	Apply(t *target.Target, cfg *xcconfig.Config)
}

// Generate builds the private settings set for tgt from its public settings.
//
// The baseline holds the settings the managed build needs regardless of what
// the pod declares publicly; the public settings are then merged in under the
// target's xcconfig prefix, overrides get the last word, and the result
// includes the target's own public settings file for downstream inheritance.
//
// Generate reads its inputs as immutable snapshots and returns a fresh
// settings set every call.
func Generate(tgt *target.Target, public *xcconfig.Config, linker LinkFlagsResolver, overrides TargetOverrides) *xcconfig.Config {
	platform := tgt.Platform()

	searchPaths := dedupe(append(
		tgt.BuildHeadersSearchPaths(platform),
		tgt.SandboxPublicHeadersSearchPaths(platform)...))

	baseline := xcconfig.New()
	baseline.Set("OTHER_LDFLAGS", linker.DefaultLinkerFlags(tgt))
	baseline.Set("PODS_ROOT", "${SRCROOT}/Pods")
	baseline.Set("HEADER_SEARCH_PATHS", xcconfig.QuotePathList(searchPaths))
	baseline.Set("GCC_PREPROCESSOR_DEFINITIONS", "$(inherited) COCOAPODS=1")
	baseline.Set("SKIP_INSTALL", "YES")

	if tgt.RequiresDynamicFramework() {
		baseline.Set("PODS_FRAMEWORK_BUILD_PATH", tgt.ConfigurationBuildDir())
		baseline.Set("CONFIGURATION_BUILD_DIR", "$PODS_FRAMEWORK_BUILD_PATH")
		// A single already-qualified reference gets one literal quote; the
		// path-list helper would break its substitution.
		baseline.Set("FRAMEWORK_SEARCH_PATHS", `"$PODS_FRAMEWORK_BUILD_PATH"`)
	}

	merged := NamespacedMerge(public, baseline, tgt.XcconfigPrefix())

	if overrides != nil {
		overrides.Apply(tgt, merged)
	}

	merged.Includes = []string{tgt.Name()}
	return merged
}

// dedupe removes duplicate paths, keeping first occurrences in order.
// The input slice is left untouched.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
