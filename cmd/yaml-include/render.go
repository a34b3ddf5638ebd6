package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"yaml-include/include"
	"yaml-include/internal/config"
	"yaml-include/internal/content"
	"yaml-include/internal/deps"
	"yaml-include/internal/document"
)

// output is what the CLI prints, with the lexer used to highlight it.
type output struct {
	data  []byte
	lexer string
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func render(cfg *config.Config, res *include.Result, logger *slog.Logger) (output, error) {
	switch {
	case cfg.Deps:
		return output{data: []byte(formatDeps(res.Dependencies, logger))}, nil
	case cfg.Dump:
		v, err := document.Value(res.Document)
		if err != nil {
			return output{}, err
		}

		return output{data: []byte(dumper.Sdump(v))}, nil
	}

	doc, err := encode(cfg.Format, res)
	if err != nil {
		return output{}, err
	}

	if cfg.Digest {
		return output{data: []byte(content.Digest(doc.data) + "\n")}, nil
	}

	return doc, nil
}

func encode(format string, res *include.Result) (output, error) {
	switch format {
	case "yaml":
		data, err := res.Marshal()

		return output{data: data, lexer: "yaml"}, err
	case "json":
		data, err := document.MarshalJSON(res.Document)

		return output{data: data, lexer: "json"}, err
	case "cbor":
		data, err := document.MarshalCBOR(res.Document)

		return output{data: data}, err
	default:
		return output{}, fmt.Errorf("unknown format %q", format)
	}
}

// formatDeps lists every file read, fragments first, one "digest  path" line
// each.
func formatDeps(g *deps.Graph, logger *slog.Logger) string {
	files, err := g.Order()
	if err != nil {
		logger.Warn("include graph has a cycle, listing files in read order", "error", err)

		files = g.Files()
	}

	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "%s  %s\n", f.Digest, f.Path)
	}

	return b.String()
}
