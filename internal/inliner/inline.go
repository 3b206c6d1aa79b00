package inliner

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vvakame/gqlprep/internal/log"
)

// InlineDocument returns a document containing operation definitions only,
// with every fragment spread replaced in place by its target's selections
// and duplicate sibling selections merged at every nesting level.
// The input document is not modified.
func InlineDocument(ctx context.Context, doc *ast.QueryDocument) (*ast.QueryDocument, error) {
	logger := log.FromContext(ctx)

	fragments := make(map[string]*ast.FragmentDefinition, len(doc.Fragments))
	for _, fragment := range doc.Fragments {
		if _, ok := fragments[fragment.Name]; ok {
			return nil, gqlerror.Errorf("duplicate fragment %q", fragment.Name)
		}
		fragments[fragment.Name] = fragment
	}

	result := &ast.QueryDocument{
		Position: doc.Position,
	}
	for _, op := range doc.Operations {
		logger.V(1).Info("inlining operation", "operation", op.Name)

		selectionSet, err := inlineSelectionSet(op.SelectionSet, fragments, make(map[string]struct{}))
		if err != nil {
			return nil, err
		}

		copied := *op
		copied.SelectionSet = selectionSet
		result.Operations = append(result.Operations, &copied)
	}

	return result, nil
}

// path holds the fragment names currently being expanded; a name recurring
// on it means the document contains a fragment cycle.
func inlineSelectionSet(selectionSet ast.SelectionSet, fragments map[string]*ast.FragmentDefinition, path map[string]struct{}) (ast.SelectionSet, error) {
	result := make(ast.SelectionSet, 0, len(selectionSet))
	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			if len(selection.SelectionSet) == 0 {
				result = append(result, selection)
				continue
			}
			nested, err := inlineSelectionSet(selection.SelectionSet, fragments, path)
			if err != nil {
				return nil, err
			}
			copied := *selection
			copied.SelectionSet = nested
			result = append(result, &copied)

		case *ast.InlineFragment:
			nested, err := inlineSelectionSet(selection.SelectionSet, fragments, path)
			if err != nil {
				return nil, err
			}
			copied := *selection
			copied.SelectionSet = nested
			result = append(result, &copied)

		case *ast.FragmentSpread:
			fragment, ok := fragments[selection.Name]
			if !ok {
				return nil, gqlerror.Errorf("unresolved fragment %q", selection.Name)
			}
			if _, ok := path[selection.Name]; ok {
				return nil, gqlerror.Errorf("cyclic fragment %q", selection.Name)
			}
			path[selection.Name] = struct{}{}
			expanded, err := inlineSelectionSet(fragment.SelectionSet, fragments, path)
			delete(path, selection.Name)
			if err != nil {
				return nil, err
			}
			result = append(result, expanded...)

		default:
			result = append(result, selection)
		}
	}

	return mergeSelectionSet(result), nil
}
