package target

import "github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"

// Setting is a single key/value assignment. Order matters wherever a slice
// of settings is applied.
type Setting struct {
	Key   string
	Value string
}

// Overrides applies a target's declared final settings to a generated
// settings set after merging. Overrides replace existing values outright;
// they are the last word on a key.
type Overrides struct{}

// Apply writes each of t's override settings into cfg in declaration order.
func (Overrides) Apply(t *Target, cfg *xcconfig.Config) {
	for _, s := range t.OverrideSettings() {
		cfg.Set(s.Key, s.Value)
	}
}
