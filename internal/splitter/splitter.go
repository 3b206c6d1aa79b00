package splitter

import (
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindFragment Kind = "fragment"
)

// RawDefinition is one definition cut out of a larger text. Content is the
// exact source substring from the keyword through the matching closing brace.
type RawDefinition struct {
	Kind    Kind
	Name    string
	Content string
}

// Split scans text for query and fragment definitions and returns them in
// source order. Text between definitions is ignored, so the input may be an
// arbitrary document with definitions embedded in it. The scanner works on
// brace depth only; it does not parse the definition bodies.
func Split(text string) ([]*RawDefinition, error) {
	var defs []*RawDefinition

	pos := 0
	for pos < len(text) {
		var kind Kind
		switch {
		case strings.HasPrefix(text[pos:], string(KindQuery)):
			kind = KindQuery
		case strings.HasPrefix(text[pos:], string(KindFragment)):
			kind = KindFragment
		default:
			pos++
			continue
		}

		start := pos
		pos += len(kind)

		for pos < len(text) && isSpace(text[pos]) {
			pos++
		}
		nameStart := pos
		for pos < len(text) && isIdentChar(text[pos]) {
			pos++
		}
		if pos == nameStart {
			return nil, gqlerror.Errorf("malformed definition: missing name after %q", kind)
		}
		name := text[nameStart:pos]

		// anything may sit between the name and the body, e.g. variable
		// definitions or a type condition
		for pos < len(text) && text[pos] != '{' {
			pos++
		}

		depth := 0
		closed := false
		for ; pos < len(text); pos++ {
			switch text[pos] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 && text[pos] == '}' {
				defs = append(defs, &RawDefinition{
					Kind:    kind,
					Name:    name,
					Content: text[start : pos+1],
				})
				closed = true
				pos++
				break
			}
		}
		if !closed {
			return nil, gqlerror.Errorf("unmatched brace in definition %q", name)
		}
	}

	return defs, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isIdentChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z':
		return true
	case 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return true
	case c == '_':
		return true
	default:
		return false
	}
}
