// Package sandbox models the Pods dependency sandbox: the directory holding
// downloaded pods, their headers and the generated target support files.
//
// Header search paths are expressed through the ${PODS_ROOT} build variable
// rather than absolute paths, so generated settings stay relocatable.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-podlink/podlink/cmd/podlink/internal/target"
)

// Sandbox is an opened dependency sandbox.
type Sandbox struct {
	// Root is the filesystem path of the sandbox, conventionally "Pods".
	Root string

	pods []Pod
}

// Pod is one resolved dependency in the sandbox.
type Pod struct {
	Name      string
	Version   string
	Platforms []string // empty means all platforms
}

// SupportsPlatform reports whether the pod is available on platform.
func (p Pod) SupportsPlatform(platform target.Platform) bool {
	if len(p.Platforms) == 0 {
		return true
	}
	for _, name := range p.Platforms {
		if name == platform.Name {
			return true
		}
	}
	return false
}

// Open reads the sandbox at root. Pods come from the lockfile when present,
// otherwise from scanning Headers/Public. A sandbox with neither is valid
// and simply has no pods.
func Open(root string) (*Sandbox, error) {
	pods, err := loadLockfile(filepath.Join(root, "podlink.lock"))
	if err != nil {
		return nil, err
	}
	if pods == nil {
		pods, err = scanPublicHeaders(root)
		if err != nil {
			return nil, err
		}
	}
	return &Sandbox{Root: root, pods: pods}, nil
}

// Pods returns the resolved pods in stable order.
func (s *Sandbox) Pods() []Pod {
	out := make([]Pod, len(s.pods))
	copy(out, s.pods)
	return out
}

// BuildHeadersSearchPaths returns the search paths for a target's own build
// headers: the shared build-headers root plus the target's namespaced
// directory.
func (s *Sandbox) BuildHeadersSearchPaths(targetName string, platform target.Platform) []string {
	return []string{
		"${PODS_ROOT}/Headers/Build",
		"${PODS_ROOT}/Headers/Build/" + targetName,
	}
}

// PublicHeadersSearchPaths returns the search paths covering every pod's
// public headers available on platform: the shared public-headers root plus
// one namespaced directory per pod.
func (s *Sandbox) PublicHeadersSearchPaths(platform target.Platform) []string {
	paths := []string{"${PODS_ROOT}/Headers/Public"}
	for _, pod := range s.pods {
		if pod.SupportsPlatform(platform) {
			paths = append(paths, "${PODS_ROOT}/Headers/Public/"+pod.Name)
		}
	}
	return paths
}

// SupportFilesDir returns the directory holding a target's generated files.
func (s *Sandbox) SupportFilesDir(name string) string {
	return filepath.Join(s.Root, "Target Support Files", name)
}

// PublicXcconfigPath returns where a target's public settings file lives.
func (s *Sandbox) PublicXcconfigPath(name string) string {
	return filepath.Join(s.SupportFilesDir(name), name+".xcconfig")
}

// PrivateXcconfigPath returns where a target's generated private settings
// file is written.
func (s *Sandbox) PrivateXcconfigPath(name string) string {
	return filepath.Join(s.SupportFilesDir(name), name+"-Private.xcconfig")
}

// scanPublicHeaders lists pods by the directories under Headers/Public.
// ReadDir returns entries sorted by name, which gives the stable order.
func scanPublicHeaders(root string) ([]Pod, error) {
	dir := filepath.Join(root, "Headers", "Public")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Pod{}, nil
		}
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var pods []Pod
	for _, entry := range entries {
		if entry.IsDir() {
			pods = append(pods, Pod{Name: entry.Name()})
		}
	}
	return pods, nil
}
