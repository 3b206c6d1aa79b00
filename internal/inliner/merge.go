package inliner

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// mergeSelectionSet deduplicates a flat list of sibling selections.
// Selections sharing a merge key collapse into a single entry at the first
// occurrence's position; when either occurrence carries a nested selection
// set, the survivor carries the recursive merge of both sets concatenated.
// Alias and arguments of the first occurrence are retained.
func mergeSelectionSet(selectionSet ast.SelectionSet) ast.SelectionSet {
	var merged ast.SelectionSet
	keyIdx := make(map[string]int)

	for _, selection := range selectionSet {
		key := mergeKey(selection)
		idx, ok := keyIdx[key]
		if !ok {
			keyIdx[key] = len(merged)
			merged = append(merged, selection)
			continue
		}

		merged[idx] = combineSelections(merged[idx], selection)
	}

	return merged
}

func mergeKey(selection ast.Selection) string {
	switch selection := selection.(type) {
	case *ast.Field:
		name := selection.Alias
		if name == "" {
			name = selection.Name
		}
		return name + canonicalArguments(selection.Arguments)

	case *ast.FragmentSpread:
		// spreads are expanded before merging; keep spreads to the same
		// fragment collapsible anyway
		return "..." + selection.Name

	case *ast.InlineFragment:
		// a missing type condition keys as bare "inline:", so two untyped
		// inline fragments merge with each other
		return "inline:" + selection.TypeCondition

	default:
		return fmt.Sprintf("%v", selection)
	}
}

func combineSelections(first ast.Selection, second ast.Selection) ast.Selection {
	firstSet := nestedSelectionSet(first)
	secondSet := nestedSelectionSet(second)
	if len(firstSet) == 0 && len(secondSet) == 0 {
		return first
	}

	combined := make(ast.SelectionSet, 0, len(firstSet)+len(secondSet))
	combined = append(combined, firstSet...)
	combined = append(combined, secondSet...)
	combined = mergeSelectionSet(combined)

	switch first := first.(type) {
	case *ast.Field:
		copied := *first
		copied.SelectionSet = combined
		return &copied
	case *ast.InlineFragment:
		copied := *first
		copied.SelectionSet = combined
		return &copied
	default:
		return first
	}
}

func nestedSelectionSet(selection ast.Selection) ast.SelectionSet {
	switch selection := selection.(type) {
	case *ast.Field:
		return selection.SelectionSet
	case *ast.InlineFragment:
		return selection.SelectionSet
	default:
		return nil
	}
}
