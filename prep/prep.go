// Package prep pre-processes GraphQL operation documents for code
// generation: it inlines fragment spreads into self-contained operations,
// splits raw multi-definition text into discrete definitions, and groups
// definitions into deterministically ordered per-file chunks.
package prep

import (
	"bytes"
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqlprep/internal/codegen"
	"github.com/vvakame/gqlprep/internal/grouper"
	"github.com/vvakame/gqlprep/internal/inliner"
	"github.com/vvakame/gqlprep/internal/splitter"
)

type Kind = splitter.Kind

type RawDefinition = splitter.RawDefinition

type MergedFile = grouper.MergedFile

type Config = codegen.Config

const (
	KindQuery    = splitter.KindQuery
	KindFragment = splitter.KindFragment
)

// Inline parses text, expands every fragment spread in place, merges
// duplicate sibling selections at every level, and prints the resulting
// operations. The output contains no fragment definitions or spreads.
func Inline(ctx context.Context, text string) (string, error) {
	doc, gErr := parser.ParseQuery(&ast.Source{Input: text})
	if gErr != nil {
		return "", gErr
	}

	doc, err := inliner.InlineDocument(ctx, doc)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return buf.String(), nil
}

// Split scans raw text for query and fragment definitions in source order.
// Unlike Inline it does not parse the text, so definitions may be embedded
// in arbitrary surrounding content.
func Split(text string) ([]*RawDefinition, error) {
	return splitter.Split(text)
}

// Group assigns definitions to destination filenames by naming convention
// and merges each file's contents in deterministic order.
func Group(defs []*RawDefinition) []*MergedFile {
	return grouper.Group(defs)
}

// LoadConfig reads a YAML generation config.
func LoadConfig(filename string) (*Config, error) {
	return codegen.LoadConfig(filename)
}

// Generate splits and groups text, writes the grouped files into the
// configured source directory, and runs the code generator over them.
// Nothing is written if splitting fails.
func Generate(ctx context.Context, cfg *Config, text string) error {
	defs, err := Split(text)
	if err != nil {
		return err
	}

	return codegen.Run(ctx, cfg, Group(defs))
}
