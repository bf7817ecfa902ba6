package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncludedAllowList(t *testing.T) {
	opts := NewOptions(false, nil, 0, nil)

	assert.True(t, opts.Included("main.go"))
	assert.True(t, opts.Included("src/deep/nested/app.ts"))
	assert.True(t, opts.Included("README.md"))
	assert.False(t, opts.Included("logo.png"))
	assert.False(t, opts.Included("vendor/blob.bin"))
}

func TestIncludedCaseInsensitive(t *testing.T) {
	opts := NewOptions(false, nil, 0, nil)

	assert.True(t, opts.Included("Dockerfile.YAML"))
	assert.True(t, opts.Included("NOTES.MD"))
}

func TestIncludedNoExtension(t *testing.T) {
	opts := NewOptions(false, nil, 0, nil)
	assert.False(t, opts.Included("Makefile"))
	assert.False(t, opts.Included("bin/run"))

	all := NewOptions(true, nil, 0, nil)
	assert.True(t, all.Included("Makefile"))
	assert.True(t, all.Included("logo.png"))
}

func TestIncludedExtraExtensions(t *testing.T) {
	opts := NewOptions(false, []string{"proto", ".graphql"}, 0, nil)

	assert.True(t, opts.Included("api/v1/service.proto"))
	assert.True(t, opts.Included("schema.GraphQL"), "extra extensions match case-insensitively, with or without a leading dot")
	assert.False(t, opts.Included("image.svg"))
}

func TestIncludedCustomAllowList(t *testing.T) {
	opts := NewOptions(false, nil, 0, []string{"zig"})

	assert.True(t, opts.Included("src/main.zig"))
	assert.False(t, opts.Included("main.go"), "custom allow-list replaces the default")
}
