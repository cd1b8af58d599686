package sandbox

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// lockfile is the on-disk podlink.lock document.
type lockfile struct {
	Pods []lockedPod `yaml:"pods"`
}

type lockedPod struct {
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
}

// loadLockfile reads the lockfile at path. A missing file returns (nil, nil)
// so the caller can fall back to directory scanning. When the same pod is
// locked more than once, the highest version wins; first-occurrence order of
// pod names is preserved.
func loadLockfile(path string) ([]Pod, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lf lockfile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	index := make(map[string]int)
	pods := make([]Pod, 0, len(lf.Pods))
	for _, locked := range lf.Pods {
		if strings.TrimSpace(locked.Name) == "" {
			return nil, fmt.Errorf("%s: pod entry with empty name", path)
		}

		pod := Pod{Name: locked.Name, Version: locked.Version, Platforms: locked.Platforms}
		i, seen := index[pod.Name]
		if !seen {
			index[pod.Name] = len(pods)
			pods = append(pods, pod)
			continue
		}
		if compareVersions(pod.Version, pods[i].Version) > 0 {
			pods[i] = pod
		}
	}

	return pods, nil
}

// compareVersions orders pod versions semver-first: canonical semver versions
// compare numerically, anything unparseable sorts below them and falls back
// to a string comparison among itself.
func compareVersions(a, b string) int {
	ca, cb := canonicalVersion(a), canonicalVersion(b)

	switch {
	case ca == "" && cb == "":
		return strings.Compare(a, b)
	case ca == "":
		return -1
	case cb == "":
		return 1
	}
	return semver.Compare(ca, cb)
}

// canonicalVersion maps a pod version like "2.6.3" or "2.6" to a canonical
// semver string, or "" when the version is not semver-shaped.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}
