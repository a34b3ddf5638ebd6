package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))

	return p
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_Text(t *testing.T) {
	f, err := Read(writeFile(t, "hello.txt", []byte("héllo\n")))
	require.NoError(t, err)

	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "héllo\n", text)
	assert.Equal(t, "hello.txt", f.Name())
}

func TestFile_TextInvalidUTF8(t *testing.T) {
	f, err := Read(writeFile(t, "bad.txt", []byte{0xff, 0xfe, 'a'}))
	require.NoError(t, err)

	_, err = f.Text()
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestFile_Base64(t *testing.T) {
	f, err := Read(writeFile(t, "blob.bin", []byte{0x00, 0x01, 0x02, 0xff}))
	require.NoError(t, err)

	assert.Equal(t, "AAEC/w==", f.Base64())
}

func TestFile_Compressed(t *testing.T) {
	plain := []byte("key: value\nlist: [1, 2]\n")

	tests := []struct {
		name string
		c    Compression
	}{
		{name: "doc.yaml.gz", c: CompressionGzip},
		{name: "doc.yaml.zst", c: CompressionZstd},
		{name: "doc.yaml.lz4", c: CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Compress(plain, tt.c)
			require.NoError(t, err)
			assert.NotEqual(t, plain, packed)

			f, err := Read(writeFile(t, tt.name, packed))
			require.NoError(t, err)
			assert.Equal(t, tt.c, f.Compression())

			doc, err := f.Document()
			require.NoError(t, err)
			assert.Equal(t, plain, doc)

			// Binary encoding keeps the stored bytes.
			raw, err := Read(f.Path)
			require.NoError(t, err)
			assert.Equal(t, packed, raw.Raw)
		})
	}
}

func TestFile_CorruptCompressed(t *testing.T) {
	f, err := Read(writeFile(t, "broken.yaml.gz", []byte("not gzip at all")))
	require.NoError(t, err)

	_, err = f.Document()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml.gz")
}

func TestFile_DocumentJSONC(t *testing.T) {
	src := []byte(`{
  // comment
  "a": 1, /* block */
  "b": [1, 2,],
}`)

	f, err := Read(writeFile(t, "conf.jsonc", src))
	require.NoError(t, err)

	doc, err := f.Document()
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "comment")
	assert.NotContains(t, string(doc), "block")

	// YAML files are never touched.
	yamlSrc := []byte("a: 1 # comment\n")

	f, err = Read(writeFile(t, "conf.yaml", yamlSrc))
	require.NoError(t, err)

	doc, err = f.Document()
	require.NoError(t, err)
	assert.Equal(t, yamlSrc, doc)
}

func TestDigest(t *testing.T) {
	// BLAKE3 of the empty input.
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", Digest(nil))
	assert.Len(t, Digest([]byte("x")), 64)
	assert.NotEqual(t, Digest([]byte("a")), Digest([]byte("b")))

	f := &File{Path: "x", Raw: []byte("abc")}
	assert.Equal(t, Digest([]byte("abc")), f.Digest())
}

func TestCompress_None(t *testing.T) {
	out, err := Compress([]byte("x"), CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), out)
}
