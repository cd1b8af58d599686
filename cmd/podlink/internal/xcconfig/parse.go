package xcconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Parse reads settings from the line-oriented xcconfig grammar: KEY = value
// assignments, #include "name.xcconfig" directives and // comments.
// Assignment order is preserved. Values are kept verbatim; no variable
// resolution happens here.
func Parse(data []byte) (*Config, error) {
	cfg := New()

	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "#include") {
			name, err := parseInclude(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			cfg.Includes = append(cfg.Includes, name)
			continue
		}

		key, value, ok := cutAssignment(line)
		if !ok {
			return nil, fmt.Errorf("line %d: not an assignment: %q", n+1, line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty settings key", n+1)
		}

		value = strings.TrimSpace(value)
		// Xcode tolerates a trailing semicolon on assignments.
		value = strings.TrimSpace(strings.TrimSuffix(value, ";"))

		cfg.Set(key, value)
	}

	return cfg, nil
}

// cutAssignment splits line around the first '=' outside brackets. The
// assignment separator of a conditional key like FOO[sdk=iphoneos*] = 1
// is the '=' after the condition, not the one inside it.
func cutAssignment(line string) (key, value string, ok bool) {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth == 0 {
				return line[:i], line[i+1:], true
			}
		}
	}
	return line, "", false
}

// Load reads and parses the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func parseInclude(line string) (string, error) {
	rest := strings.TrimPrefix(line, "#include")
	rest = strings.TrimPrefix(rest, "?") // #include? is Xcode's optional include
	rest = strings.TrimSpace(rest)

	if len(rest) < 2 || rest[0] != '"' {
		return "", errors.New("malformed #include directive")
	}
	end := strings.IndexByte(rest[1:], '"')
	if end == -1 {
		return "", errors.New("unterminated #include path")
	}

	name := rest[1 : 1+end]
	name = strings.TrimSuffix(name, ".xcconfig")
	if name == "" {
		return "", errors.New("empty #include path")
	}
	return name, nil
}
