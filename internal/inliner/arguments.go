package inliner

import (
	"encoding/json"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// canonicalArguments serializes an argument list into a byte-stable key.
// Two lists differing only in argument order, or in field order inside an
// object value, produce the same key. An empty list produces an empty key.
func canonicalArguments(args ast.ArgumentList) string {
	if len(args) == 0 {
		return ""
	}

	byName := make(map[string]interface{}, len(args))
	for _, arg := range args {
		byName[arg.Name] = normalizeValue(arg.Value)
	}

	// json.Marshal emits map keys in sorted order, which covers both the
	// argument-name sort and object-field-order independence.
	b, err := json.Marshal(byName)
	if err != nil {
		// the normalized tree contains only maps, slices and strings
		panic(fmt.Sprintf("canonicalArguments: %v", err))
	}

	return string(b)
}

func normalizeValue(value *ast.Value) interface{} {
	if value == nil {
		return nil
	}

	switch value.Kind {
	case ast.Variable:
		// a variable must stay distinct from a string literal of the same text
		return map[string]interface{}{"variable": value.Raw}

	case ast.NullValue:
		return nil

	case ast.ListValue:
		// element order is significant
		list := make([]interface{}, 0, len(value.Children))
		for _, child := range value.Children {
			list = append(list, normalizeValue(child.Value))
		}
		return list

	case ast.ObjectValue:
		obj := make(map[string]interface{}, len(value.Children))
		for _, child := range value.Children {
			obj[child.Name] = normalizeValue(child.Value)
		}
		return obj

	default:
		// IntValue, FloatValue, StringValue, BlockValue, BooleanValue, EnumValue
		return value.Raw
	}
}
