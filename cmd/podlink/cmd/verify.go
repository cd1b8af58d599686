package cmd

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"
)

func init() {
	RegisterCommand(&Command{
		Name:  "verify",
		Short: "Check generated settings against an xcodebuild dump",
		Long: `Verify that a target's build resolves every generated setting.

FILE is the output of 'xcodebuild -showBuildSettings -json'. Each setting
podlink generates is looked up in the target's resolved build settings;
keys the build does not know about are reported. Values are not compared,
since the dump holds fully resolved values while generated settings keep
their variable references.

Conditional keys ("FOO[sdk=iphoneos*]") are checked under their base name,
which is how they appear once the build has picked a condition branch.

Flags:
  --settings FILE   Build settings dump to check against (required)`,
		Usage: "podlink verify <target> --settings FILE",
		Run:   runVerify,
	})
}

func runVerify(args []string) error {
	var name, settingsFile string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--settings":
			if i+1 >= len(args) {
				return fmt.Errorf("--settings requires a file path")
			}
			settingsFile = args[i+1]
			i++
		default:
			if name != "" {
				return fmt.Errorf("exactly one target must be named")
			}
			name = args[i]
		}
	}
	if name == "" || settingsFile == "" {
		return fmt.Errorf("target name and --settings FILE are required\n\nUsage: podlink verify <target> --settings FILE")
	}

	data, err := os.ReadFile(settingsFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", settingsFile, err)
	}

	p, err := loadProject()
	if err != nil {
		return err
	}

	decl, ok := p.Manifest.Target(name)
	if !ok {
		return fmt.Errorf("target %q not declared in the manifest", name)
	}

	generated, err := p.composeTarget(decl)
	if err != nil {
		return fmt.Errorf("failed to generate settings for %s: %w", name, err)
	}

	resolved, err := resolvedBuildSettings(data, name)
	if err != nil {
		return err
	}

	missing := missingSettings(generated, resolved)
	if len(missing) == 0 {
		fmt.Printf("%s: all %d generated settings resolve\n", name, generated.Len())
		return nil
	}

	for _, key := range missing {
		fmt.Printf("  missing: %s\n", key)
	}
	return fmt.Errorf("%s: build resolves %d of %d generated settings", name, generated.Len()-len(missing), generated.Len())
}

// resolvedBuildSettings extracts the buildSettings object for target from an
// 'xcodebuild -showBuildSettings -json' dump.
func resolvedBuildSettings(data []byte, targetName string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("settings dump is not valid JSON")
	}

	result := gjson.GetBytes(data, fmt.Sprintf(`#(target==%q).buildSettings`, targetName))
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("target %q not present in settings dump", targetName)
	}
	return result, nil
}

// missingSettings returns the generated keys absent from the resolved
// settings, in generation order. Conditional keys are looked up by base name.
func missingSettings(generated *xcconfig.Config, resolved gjson.Result) []string {
	var missing []string
	seen := make(map[string]bool)

	for _, key := range generated.Keys() {
		base := xcconfig.BaseKey(key)
		if seen[base] {
			continue
		}
		seen[base] = true

		if !resolved.Get(jsonPath(base)).Exists() {
			missing = append(missing, base)
		}
	}
	return missing
}
