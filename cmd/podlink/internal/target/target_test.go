package target

import (
	"testing"

	"github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"
)

type fakeHeaders struct{}

func (fakeHeaders) BuildHeadersSearchPaths(name string, p Platform) []string {
	return []string{"${PODS_ROOT}/Headers/Build/" + name}
}

func (fakeHeaders) PublicHeadersSearchPaths(p Platform) []string {
	return []string{"${PODS_ROOT}/Headers/Public"}
}

func TestSanitizedPrefix(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"BananaLib", "BananaLib_"},
		{"Banana-Lib", "Banana_Lib_"},
		{"Banana+Kit/Core", "Banana_Kit_Core_"},
		{"3DTouch", "_3DTouch_"},
		{"snake_case", "snake_case_"},
	}

	for _, tt := range tests {
		if got := SanitizedPrefix(tt.name); got != tt.want {
			t.Errorf("SanitizedPrefix(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestXcconfigPrefix(t *testing.T) {
	tgt := New(Options{Name: "Banana-Lib", Headers: fakeHeaders{}})
	if got := tgt.XcconfigPrefix(); got != "Banana_Lib_" {
		t.Errorf("derived prefix = %q, want %q", got, "Banana_Lib_")
	}

	tgt = New(Options{Name: "Banana-Lib", Prefix: "BL_", Headers: fakeHeaders{}})
	if got := tgt.XcconfigPrefix(); got != "BL_" {
		t.Errorf("explicit prefix = %q, want %q", got, "BL_")
	}
}

func TestConfigurationBuildDirDefault(t *testing.T) {
	tgt := New(Options{Name: "BananaLib", Headers: fakeHeaders{}})
	want := "$(BUILD_DIR)/$(CONFIGURATION)$(EFFECTIVE_PLATFORM_NAME)/BananaLib"
	if got := tgt.ConfigurationBuildDir(); got != want {
		t.Errorf("ConfigurationBuildDir = %q, want %q", got, want)
	}

	tgt = New(Options{Name: "BananaLib", ConfigurationBuildDir: "/build/BananaLib", Headers: fakeHeaders{}})
	if got := tgt.ConfigurationBuildDir(); got != "/build/BananaLib" {
		t.Errorf("explicit ConfigurationBuildDir = %q", got)
	}
}

func TestNewPanicsWithoutHeaderSearcher(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil HeaderSearcher")
		}
	}()
	New(Options{Name: "BananaLib"})
}

func TestDefaultLinkerFlags(t *testing.T) {
	tests := []struct {
		name       string
		libraries  []string
		frameworks []string
		want       string
	}{
		{"bare", nil, nil, "-ObjC"},
		{"libraries", []string{"z", "xml2"}, nil, `-ObjC -l"z" -l"xml2"`},
		{"frameworks", nil, []string{"QuartzCore"}, `-ObjC -framework "QuartzCore"`},
		{
			"both",
			[]string{"z"},
			[]string{"QuartzCore", "CoreData"},
			`-ObjC -l"z" -framework "QuartzCore" -framework "CoreData"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := New(Options{
				Name:       "BananaLib",
				Libraries:  tt.libraries,
				Frameworks: tt.frameworks,
				Headers:    fakeHeaders{},
			})
			if got := (LinkFlags{}).DefaultLinkerFlags(tgt); got != tt.want {
				t.Errorf("DefaultLinkerFlags = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverridesApply(t *testing.T) {
	tgt := New(Options{
		Name: "BananaLib",
		Overrides: []Setting{
			{Key: "ENABLE_BITCODE", Value: "NO"},
			{Key: "OTHER_LDFLAGS", Value: "-lBanana"},
		},
		Headers: fakeHeaders{},
	})

	cfg := xcconfig.New()
	cfg.Set("OTHER_LDFLAGS", "-ObjC")
	(Overrides{}).Apply(tgt, cfg)

	if v, _ := cfg.Get("ENABLE_BITCODE"); v != "NO" {
		t.Errorf("ENABLE_BITCODE = %q, want NO", v)
	}
	// Overrides replace merged values, they do not append.
	if v, _ := cfg.Get("OTHER_LDFLAGS"); v != "-lBanana" {
		t.Errorf("OTHER_LDFLAGS = %q, want -lBanana", v)
	}
}

func TestSupportedPlatform(t *testing.T) {
	for _, name := range []string{"ios", "osx", "tvos", "watchos"} {
		if !SupportedPlatform(name) {
			t.Errorf("SupportedPlatform(%q) = false", name)
		}
	}
	if SupportedPlatform("windows") {
		t.Error("SupportedPlatform(windows) = true")
	}
}

func TestSearchPathsDelegateToSearcher(t *testing.T) {
	tgt := New(Options{Name: "BananaLib", Platform: Platform{Name: "ios"}, Headers: fakeHeaders{}})

	build := tgt.BuildHeadersSearchPaths(tgt.Platform())
	if len(build) != 1 || build[0] != "${PODS_ROOT}/Headers/Build/BananaLib" {
		t.Errorf("BuildHeadersSearchPaths = %v", build)
	}

	public := tgt.SandboxPublicHeadersSearchPaths(tgt.Platform())
	if len(public) != 1 || public[0] != "${PODS_ROOT}/Headers/Public" {
		t.Errorf("SandboxPublicHeadersSearchPaths = %v", public)
	}
}
