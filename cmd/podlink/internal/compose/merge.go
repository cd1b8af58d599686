package compose

import "github.com/go-podlink/podlink/cmd/podlink/internal/xcconfig"

// NamespacedMerge folds source into destination so that every source setting
// stays reachable through a private, prefix-namespaced variable reference.
//
// Destination keys win, but instead of silently shadowing, the existing value
// gains an appended reference to the renamed source setting. Keys present
// only in source resolve purely to their renamed form. Conditional suffixes
// ("[sdk=iphoneos*]") stay on the merge key but are stripped from the
// reference name, since reference variables carry no condition.
//
// The result is a fresh settings set: destination keys first in their
// original order, source-only keys appended in source order. Neither input
// is mutated and the function holds no state, so concurrent calls over
// shared inputs are safe.
func NamespacedMerge(source, destination *xcconfig.Config, prefix string) *xcconfig.Config {
	merged := destination.Clone()

	for _, key := range source.Keys() {
		ref := "${" + prefix + xcconfig.BaseKey(key) + "}"
		// An empty destination value counts as absent: the key collapses to
		// the bare reference form.
		if existing, ok := destination.Get(key); ok && existing != "" {
			merged.Set(key, existing+" "+ref)
		} else {
			merged.Set(key, ref)
		}
	}

	return merged
}
