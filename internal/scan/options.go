package scan

import (
	"path"
	"strings"
)

// DefaultMinTotal is the minimum size (blame lines or touches) a path must
// reach before it is reported by the ownership scorers.
const DefaultMinTotal = 25

// DefaultExtensions is the built-in allow-list of file extensions that
// participate in scoring. It is policy data, not logic: callers extend it
// through Options.ExtraExtensions or bypass it with Options.IncludeAll,
// and configuration may append to it before a scan starts.
var DefaultExtensions = []string{
	"rs", "ts", "tsx", "js", "jsx", "java", "kt", "kts", "go", "py", "rb",
	"swift", "c", "h", "cpp", "hpp", "cc", "hh", "cs", "php", "scala", "m",
	"mm", "sh", "bash", "zsh", "fish", "sql", "xml", "yml", "yaml", "toml",
	"json", "lock", "lua", "vim", "conf", "ini", "cfg", "md", "txt",
}

// Options governs which paths are analyzed and the minimum size for a path
// to be reported. Immutable for the duration of one scan.
type Options struct {
	// IncludeAll disables extension filtering entirely.
	IncludeAll bool

	// ExtraExtensions are additional extensions (without the leading dot)
	// accepted on top of the allow-list.
	ExtraExtensions []string

	// MinTotal is the minimum total (lines in exact mode, touches in
	// heuristic mode) for a path to appear in results.
	MinTotal int

	allowed map[string]struct{}
}

// NewOptions builds Options over the given allow-list. Passing nil uses
// DefaultExtensions.
func NewOptions(includeAll bool, extraExtensions []string, minTotal int, allowList []string) Options {
	if allowList == nil {
		allowList = DefaultExtensions
	}
	allowed := make(map[string]struct{}, len(allowList)+len(extraExtensions))
	for _, ext := range allowList {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	for _, ext := range extraExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return Options{
		IncludeAll:      includeAll,
		ExtraExtensions: extraExtensions,
		MinTotal:        minTotal,
		allowed:         allowed,
	}
}

// Included reports whether a path participates in scoring. Paths without an
// extension are excluded unless IncludeAll is set. Pure function of its
// inputs; extension matching is case-insensitive.
func (o Options) Included(p string) bool {
	if o.IncludeAll {
		return true
	}
	ext := path.Ext(p)
	if ext == "" {
		return false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if o.allowed != nil {
		_, ok := o.allowed[ext]
		return ok
	}
	for _, a := range DefaultExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
