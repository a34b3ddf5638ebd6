package content

import (
	"path/filepath"
	"strings"
)

// Format is how a file's content is substituted into a document.
type Format int

const (
	// FormatBinary substitutes a !binary {filename, base64} record.
	FormatBinary Format = iota
	// FormatDocument parses the file as YAML (or JSON) and resolves it.
	FormatDocument
	// FormatText substitutes the file content as a string.
	FormatText
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatDocument:
		return "document"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Compression identifies a compressed file by its suffix.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
)

var compressionSuffixes = map[string]Compression{
	".gz":  CompressionGzip,
	".zst": CompressionZstd,
	".lz4": CompressionLZ4,
}

var formats = map[string]Format{
	".yaml":     FormatDocument,
	".yml":      FormatDocument,
	".json":     FormatDocument,
	".jsonc":    FormatDocument,
	".txt":      FormatText,
	".markdown": FormatText,
	".md":       FormatText,
}

// SplitCompression strips a compression suffix from name.
// The suffix match is case-insensitive.
func SplitCompression(name string) (string, Compression) {
	ext := filepath.Ext(name)
	if c, ok := compressionSuffixes[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(name, ext), c
	}

	return name, CompressionNone
}

// Ext returns the lower-cased extension of name with any compression suffix
// removed first, e.g. ".yaml" for "Config.YAML.gz". A dotfile such as
// ".yaml" has no extension.
func Ext(name string) string {
	base, _ := SplitCompression(filepath.Base(name))

	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}

	return strings.ToLower(ext)
}

// Classify returns the format used by a generic !include of path.
// Unrecognized and missing extensions are binary.
func Classify(path string) Format {
	if f, ok := formats[Ext(path)]; ok {
		return f
	}

	return FormatBinary
}

// IsJSON reports whether path holds JSON, possibly with comments.
func IsJSON(path string) bool {
	switch Ext(path) {
	case ".json", ".jsonc":
		return true
	default:
		return false
	}
}

// Stem returns the key a glob-merged file is stored under: the base name
// without a compression suffix and without its last extension.
// A dotfile such as ".env" keeps its name.
func Stem(path string) string {
	base, _ := SplitCompression(filepath.Base(path))

	ext := filepath.Ext(base)
	if ext == base {
		return base
	}

	return strings.TrimSuffix(base, ext)
}
