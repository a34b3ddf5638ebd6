package include

import (
	"gopkg.in/yaml.v3"

	"yaml-include/internal/deps"
	"yaml-include/internal/diagnostic"
	"yaml-include/internal/document"
)

// Result is a resolved document and the report of how it was resolved.
type Result struct {
	// Root is the canonical path of the resolved document.
	Root string
	// Document is the resolved tree. It contains no directives.
	Document *yaml.Node
	// Diagnostics holds circular placeholders, unknown tags and unset
	// environment variables found on the way.
	Diagnostics diagnostic.Diagnostics
	// Dependencies holds every file read and the include edges between them.
	Dependencies *deps.Graph
}

// Marshal serializes the resolved document as YAML.
func (r *Result) Marshal() ([]byte, error) {
	return document.Marshal(r.Document)
}

// String returns the resolved document as YAML, or the serialization error.
func (r *Result) String() string {
	data, err := r.Marshal()
	if err != nil {
		return err.Error()
	}

	return string(data)
}

// Read resolves the document at path, failing on circular includes.
func Read(path string) (*yaml.Node, error) {
	res, err := NewResolver(Config{Strict: true}).Resolve(path)
	if err != nil {
		return nil, err
	}

	return res.Document, nil
}

// Unmarshal resolves the document at path, failing on circular includes, and
// decodes it into out as yaml.Unmarshal would. Produced tags such as !binary
// are ignored by the decoding.
func Unmarshal(path string, out any) error {
	doc, err := Read(path)
	if err != nil {
		return err
	}

	return document.StripTags(doc).Decode(out)
}
