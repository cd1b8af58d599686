package target

import (
	"fmt"
	"strings"
)

// LinkFlags resolves the default linker flags for a target: -ObjC so
// categories in static libraries load, plus one entry per declared system
// library and framework, in declaration order.
type LinkFlags struct{}

// DefaultLinkerFlags returns the space-joined linker flags for t.
func (LinkFlags) DefaultLinkerFlags(t *Target) string {
	flags := []string{"-ObjC"}
	for _, lib := range t.Libraries() {
		flags = append(flags, fmt.Sprintf("-l%q", lib))
	}
	for _, fw := range t.Frameworks() {
		flags = append(flags, fmt.Sprintf("-framework %q", fw))
	}
	return strings.Join(flags, " ")
}
