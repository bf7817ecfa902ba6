package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirKey(t *testing.T) {
	tests := []struct {
		path  string
		depth int
		want  string
	}{
		{"main.go", 2, "."},
		{"src/main.go", 2, "src"},
		{"src/core/engine/scan.go", 2, "src/core"},
		{"src/core/engine/scan.go", 1, "src"},
		{"src/core/engine/scan.go", 10, "src/core/engine"},
		{"./src/main.go", 2, "src"},
		{"a/b/c.txt", 0, "a"}, // depth floors at 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DirKey(tt.path, tt.depth), "DirKey(%q, %d)", tt.path, tt.depth)
	}
}
