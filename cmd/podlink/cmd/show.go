package cmd

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"
)

func init() {
	RegisterCommand(&Command{
		Name:  "show",
		Short: "Print a target's generated settings",
		Long: `Print the private settings that generate would write for one target,
without touching the sandbox.

Flags:
  --json   Emit a JSON object instead of the xcconfig text form`,
		Usage: "podlink show <target> [--json]",
		Run:   runShow,
	})
}

func runShow(args []string) error {
	var name string
	asJSON := false

	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		default:
			if name != "" {
				return fmt.Errorf("exactly one target must be named")
			}
			name = arg
		}
	}
	if name == "" {
		return fmt.Errorf("target name is required\n\nUsage: podlink show <target> [--json]")
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

	if !asJSON {
		fmt.Print(generated)
		return nil
	}

	out, err := settingsJSON(generated)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// settingsJSON renders a settings set as a JSON document. sjson appends keys
// in call order, which keeps the settings' insertion order — something a
// map[string]string through encoding/json cannot do.
func settingsJSON(cfg *xcconfig.Config) ([]byte, error) {
	out := []byte("{}")
	var err error

	for _, key := range cfg.Keys() {
		value, _ := cfg.Get(key)
		out, err = sjson.SetBytes(out, "settings."+jsonPath(key), value)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", key, err)
		}
	}
	for _, name := range cfg.Includes {
		out, err = sjson.SetBytes(out, "includes.-1", name)
		if err != nil {
			return nil, fmt.Errorf("failed to render includes: %w", err)
		}
	}

	return out, nil
}
