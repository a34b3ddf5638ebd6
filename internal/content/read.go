package content

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/tidwall/jsonc"
	"github.com/zeebo/blake3"
)

// ErrInvalidUTF8 is returned by Text for content that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// File is a file read fully from disk.
type File struct {
	// Path the file was read from.
	Path string
	// Raw holds the on-disk bytes.
	Raw []byte
}

// Read reads path fully.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &File{Path: path, Raw: data}, nil
}

// Digest returns the hex BLAKE3-256 digest of the on-disk bytes.
func (f *File) Digest() string {
	return Digest(f.Raw)
}

// Compression returns the compression implied by the file name.
func (f *File) Compression() Compression {
	_, c := SplitCompression(f.Path)

	return c
}

// Decompressed returns the content with any compression removed.
func (f *File) Decompressed() ([]byte, error) {
	data, err := Decompress(f.Raw, f.Compression())
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", f.Path, err)
	}

	return data, nil
}

// Document returns the bytes to hand to the YAML parser: decompressed, and
// for JSON files with comments and trailing commas stripped.
func (f *File) Document() ([]byte, error) {
	data, err := f.Decompressed()
	if err != nil {
		return nil, err
	}

	if IsJSON(f.Path) {
		data = jsonc.ToJSON(data)
	}

	return data, nil
}

// Text returns the decompressed content as a string.
func (f *File) Text() (string, error) {
	data, err := f.Decompressed()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", f.Path, ErrInvalidUTF8)
	}

	return string(data), nil
}

// Base64 returns the on-disk bytes in standard base64 with padding.
// Compressed files are encoded as stored.
func (f *File) Base64() string {
	return base64.StdEncoding.EncodeToString(f.Raw)
}

// Name returns the base name of the file.
func (f *File) Name() string {
	return filepath.Base(f.Path)
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// Decompress undoes compression c.
func Decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()

		return readAll("gzip", r)
	case CompressionZstd:
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer d.Close()

		out, err := d.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}

		return out, nil
	case CompressionLZ4:
		return readAll("lz4", lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}
}

// Compress applies compression c.
func Compress(data []byte, c Compression) ([]byte, error) {
	var buf bytes.Buffer

	var w io.WriteCloser

	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}

		w = zw
	case CompressionLZ4:
		w = lz4.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unknown compression %d", c)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func readAll(kind string, r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return out, nil
}
