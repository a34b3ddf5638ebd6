package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/term"

	"yaml-include/internal/config"
	"yaml-include/internal/content"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// write sends out to the configured file, compressed according to its
// suffix, or to stdout.
func write(cfg *config.Config, out output, stdout io.Writer) error {
	if cfg.Output == "" {
		return writeTerminal(cfg.Color, out, stdout)
	}

	_, compression := content.SplitCompression(cfg.Output)

	data, err := content.Compress(out.data, compression)
	if err != nil {
		return fmt.Errorf("compressing output: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(cfg.Output, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	return nil
}

func writeTerminal(color string, out output, w io.Writer) error {
	if out.lexer != "" && useColor(color, w) {
		return quick.Highlight(w, string(out.data), out.lexer, "terminal256", "monokai")
	}

	_, err := w.Write(out.data)

	return err
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
