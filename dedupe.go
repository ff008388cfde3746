package knuckleball

import (
	"hash/fnv"

	"github.com/zephyrtronium/contains"
)

// uniqueNamespaces returns the distinct namespace prefixes among
// names, in the order each is first seen. Deduplication uses
// contains.Set, keyed here on an FNV-1a hash of the namespace string
// since contains.Set stores uintptr keys.
func uniqueNamespaces(names []string) []string {
	seen := contains.Set{}
	var out []string
	for _, name := range names {
		ns, ok := namespaceOf(name)
		if !ok {
			continue
		}
		h := fnv.New64a()
		h.Write([]byte(ns))
		key := uintptr(h.Sum64())
		if seen.Add(key) {
			out = append(out, ns)
		}
	}
	return out
}
