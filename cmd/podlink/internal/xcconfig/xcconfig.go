// Package xcconfig implements the Xcode build-settings file format consumed
// by pod targets: an ordered KEY = value mapping plus #include directives
// referencing other settings files.
//
// A Config preserves insertion order, which Xcode relies on for later
// assignments referencing earlier ones. Values are opaque strings; variable
// references like ${PODS_ROOT} are left for Xcode to resolve.
package xcconfig

import (
	"fmt"
	"os"
	"strings"
)

// Config is an ordered build-settings set.
type Config struct {
	keys   []string
	values map[string]string

	// Includes lists the names of settings files this one inherits from.
	// Names are bare (no .xcconfig suffix); the serializer appends it.
	Includes []string
}

// New returns an empty settings set.
func New() *Config {
	return &Config{values: make(map[string]string)}
}

// Set assigns value to key. A new key is appended; an existing key keeps its
// original position and gets the new value.
func (c *Config) Set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value for key and whether it is present.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (c *Config) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of settings.
func (c *Config) Len() int {
	return len(c.keys)
}

// Clone returns an independent copy of the settings set, includes included.
func (c *Config) Clone() *Config {
	out := &Config{
		keys:   make([]string, len(c.keys)),
		values: make(map[string]string, len(c.values)),
	}
	copy(out.keys, c.keys)
	for k, v := range c.values {
		out.values[k] = v
	}
	if c.Includes != nil {
		out.Includes = make([]string, len(c.Includes))
		copy(out.Includes, c.Includes)
	}
	return out
}

// String renders the settings file: one assignment per line in insertion
// order, then one #include directive per entry in Includes.
func (c *Config) String() string {
	var b strings.Builder
	for _, key := range c.keys {
		fmt.Fprintf(&b, "%s = %s\n", key, c.values[key])
	}
	for _, name := range c.Includes {
		fmt.Fprintf(&b, "#include %q\n", name+".xcconfig")
	}
	return b.String()
}

// Save writes the serialized settings to path, overwriting any existing file.
func (c *Config) Save(path string) error {
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
