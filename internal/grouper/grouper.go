package grouper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvakame/gqlprep/internal/splitter"
)

const fileExt = ".graphql"

// each definition gets the genqlient opt-in marker so the emitted files are
// consumable by the code generator as-is
const definitionTemplate = "# @genqlient\n%s"

// MergedFile is the merged content destined for a single output file.
type MergedFile struct {
	Filename string
	Content  string
}

// Group assigns each definition a destination filename by naming convention
// and merges per-file contents. Output is deterministic regardless of input
// order: files sort by filename, queries precede fragments within a file,
// and same-kind entries sort by their content.
func Group(defs []*splitter.RawDefinition) []*MergedFile {
	grouped := make(map[string][]*splitter.RawDefinition)
	filenames := make([]string, 0, len(defs))
	for _, def := range defs {
		filename := filenameFor(def)
		if _, ok := grouped[filename]; !ok {
			filenames = append(filenames, filename)
		}
		grouped[filename] = append(grouped[filename], def)
	}
	sort.Strings(filenames)

	result := make([]*MergedFile, 0, len(filenames))
	for _, filename := range filenames {
		entries := grouped[filename]
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.Kind != b.Kind {
				return a.Kind == splitter.KindQuery
			}
			return a.Content < b.Content
		})

		parts := make([]string, 0, len(entries))
		for _, def := range entries {
			parts = append(parts, fmt.Sprintf(definitionTemplate, def.Content))
		}
		result = append(result, &MergedFile{
			Filename: filename,
			Content:  strings.Join(parts, "\n"),
		})
	}

	return result
}

// A query named FooQuery and a fragment named Foo_user both land in Foo.graphql.
func filenameFor(def *splitter.RawDefinition) string {
	name := def.Name
	switch def.Kind {
	case splitter.KindFragment:
		if idx := strings.Index(name, "_"); idx >= 0 {
			name = name[:idx]
		}
	default:
		name = strings.TrimSuffix(name, "Query")
	}
	return name + fileExt
}
