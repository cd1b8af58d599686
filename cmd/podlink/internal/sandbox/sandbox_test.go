package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-podlink/podlink/cmd/podlink/internal/target"
)

func writeLockfile(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "podlink.lock"), []byte(content), 0o644))
}

func TestOpenWithLockfile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Pods")
	writeLockfile(t, root, `
pods:
  - name: BananaLib
    version: 1.0.0
  - name: Monkey
    version: 2.6.3
    platforms: [ios]
`)

	sb, err := Open(root)
	require.NoError(t, err)

	pods := sb.Pods()
	require.Len(t, pods, 2)
	assert.Equal(t, "BananaLib", pods[0].Name)
	assert.Equal(t, "1.0.0", pods[0].Version)
	assert.Equal(t, []string{"ios"}, pods[1].Platforms)
}

func TestOpenDuplicatePodKeepsHighestVersion(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Pods")
	writeLockfile(t, root, `
pods:
  - name: BananaLib
    version: 1.9.0
  - name: Monkey
    version: 1.0.0
  - name: BananaLib
    version: 1.10.0
`)

	sb, err := Open(root)
	require.NoError(t, err)

	pods := sb.Pods()
	require.Len(t, pods, 2)
	// First-occurrence order kept, version bumped numerically (1.10 > 1.9).
	assert.Equal(t, "BananaLib", pods[0].Name)
	assert.Equal(t, "1.10.0", pods[0].Version)
	assert.Equal(t, "Monkey", pods[1].Name)
}

func TestOpenLockfileErrors(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "Pods")
		writeLockfile(t, root, "pods:\n  - version: 1.0.0\n")
		_, err := Open(root)
		assert.ErrorContains(t, err, "empty name")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "Pods")
		writeLockfile(t, root, "pods: [unclosed\n")
		_, err := Open(root)
		assert.ErrorContains(t, err, "failed to parse")
	})
}

func TestOpenFallsBackToHeaderScan(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Pods")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Headers", "Public", "Monkey"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Headers", "Public", "BananaLib"), 0o755))
	// Stray file must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "Headers", "Public", "README"), nil, 0o644))

	sb, err := Open(root)
	require.NoError(t, err)

	pods := sb.Pods()
	require.Len(t, pods, 2)
	// Directory scan order is lexicographic.
	assert.Equal(t, "BananaLib", pods[0].Name)
	assert.Equal(t, "Monkey", pods[1].Name)
}

func TestOpenEmptySandbox(t *testing.T) {
	sb, err := Open(filepath.Join(t.TempDir(), "Pods"))
	require.NoError(t, err)
	assert.Empty(t, sb.Pods())
}

func TestPublicHeadersSearchPaths(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Pods")
	writeLockfile(t, root, `
pods:
  - name: BananaLib
  - name: MacOnly
    platforms: [osx]
`)

	sb, err := Open(root)
	require.NoError(t, err)

	ios := target.Platform{Name: "ios"}
	assert.Equal(t, []string{
		"${PODS_ROOT}/Headers/Public",
		"${PODS_ROOT}/Headers/Public/BananaLib",
	}, sb.PublicHeadersSearchPaths(ios))

	osx := target.Platform{Name: "osx"}
	assert.Equal(t, []string{
		"${PODS_ROOT}/Headers/Public",
		"${PODS_ROOT}/Headers/Public/BananaLib",
		"${PODS_ROOT}/Headers/Public/MacOnly",
	}, sb.PublicHeadersSearchPaths(osx))
}

func TestBuildHeadersSearchPaths(t *testing.T) {
	sb := &Sandbox{Root: "Pods"}
	got := sb.BuildHeadersSearchPaths("BananaLib", target.Platform{Name: "ios"})
	assert.Equal(t, []string{
		"${PODS_ROOT}/Headers/Build",
		"${PODS_ROOT}/Headers/Build/BananaLib",
	}, got)
}

func TestSupportFilePaths(t *testing.T) {
	sb := &Sandbox{Root: filepath.Join("project", "Pods")}

	assert.Equal(t,
		filepath.Join("project", "Pods", "Target Support Files", "BananaLib"),
		sb.SupportFilesDir("BananaLib"))
	assert.Equal(t,
		filepath.Join("project", "Pods", "Target Support Files", "BananaLib", "BananaLib.xcconfig"),
		sb.PublicXcconfigPath("BananaLib"))
	assert.Equal(t,
		filepath.Join("project", "Pods", "Target Support Files", "BananaLib", "BananaLib-Private.xcconfig"),
		sb.PrivateXcconfigPath("BananaLib"))
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.10.0", "1.9.0", 1},
		{"2.6", "2.6.3", -1}, // short form canonicalizes to 2.6.0
		{"1.0.0-beta", "1.0.0", -1},
		{"weird", "1.0.0", -1},
		{"weird", "also-weird", 1},
	}

	for _, tt := range tests {
		if got := compareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
