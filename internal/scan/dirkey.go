package scan

import "strings"

// RootKey is the directory key assigned to files that sit at the repository
// root, or when depth collapses to zero components.
const RootKey = "."

// DirKey maps a file path to its owning directory key at the given depth.
// The filename is dropped and the first min(depth, remaining) directory
// components are joined with "/". Depth values below 1 are treated as 1.
func DirKey(p string, depth int) string {
	if depth < 1 {
		depth = 1
	}
	var parts []string
	for _, c := range strings.Split(p, "/") {
		switch c {
		case "", ".", "..":
			// skip non-normal components
		default:
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return RootKey
	}
	parts = parts[:len(parts)-1] // drop filename
	if len(parts) == 0 {
		return RootKey
	}
	if depth < len(parts) {
		parts = parts[:depth]
	}
	return strings.Join(parts, "/")
}
