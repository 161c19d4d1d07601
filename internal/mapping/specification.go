package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSpecification reports a specification string with the wrong shape.
var ErrMalformedSpecification = errors.New("malformed specification")

// Specification keywords.
const (
	SpecNew = "new"
	SpecAtt = "att"
	SpecTag = "tag"
)

// ParseSpecification splits a specification string on '@' and '|'.
// ':' is never a delimiter, so "cas:focal_length" stays one token.
// Empty fields are kept; callers validate the token count.
//
//	"Bin"          -> [Bin]
//	"new@Bin"      -> [new Bin]
//	"att@type"     -> [att type]
//	"att@type|B"   -> [att type B]
//	"unit|km"      -> [unit km]
func ParseSpecification(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tokens []string

	start := 0
	for i, r := range text {
		if r == '@' || r == '|' {
			tokens = append(tokens, strings.TrimSpace(text[start:i]))
			start = i + 1
		}
	}

	return append(tokens, strings.TrimSpace(text[start:]))
}

// DependencyKind selects what a dependency is checked against.
type DependencyKind string

const (
	// DependencyTag checks a sibling element's text.
	DependencyTag DependencyKind = SpecTag
	// DependencyAtt checks an attribute of the candidate itself.
	DependencyAtt DependencyKind = SpecAtt
)

// Dependency is a parsed "kind@name|value" input filter.
type Dependency struct {
	Kind  DependencyKind
	Name  string
	Value string
}

// String returns the specification form.
func (d Dependency) String() string {
	return fmt.Sprintf("%s@%s|%s", d.Kind, d.Name, d.Value)
}

// ParseDependency parses "tag@NAME|VALUE" or "att@NAME|VALUE".
func ParseDependency(text string) (Dependency, error) {
	tokens := ParseSpecification(text)
	if len(tokens) != 3 {
		return Dependency{}, fmt.Errorf("%w: dependency %q must have the form kind@name|value", ErrMalformedSpecification, text)
	}

	kind := DependencyKind(strings.ToLower(tokens[0]))
	if kind != DependencyTag && kind != DependencyAtt {
		return Dependency{}, fmt.Errorf("%w: dependency %q has kind %q, expected tag or att", ErrMalformedSpecification, text, tokens[0])
	}

	if tokens[1] == "" {
		return Dependency{}, fmt.Errorf("%w: dependency %q has no name", ErrMalformedSpecification, text)
	}

	return Dependency{Kind: kind, Name: tokens[1], Value: tokens[2]}, nil
}

// NameValue is a parsed "name|value" pair.
type NameValue struct {
	Name  string
	Value string
}

// ParseNameValue parses the two-token "name|value" form used by
// OutputAttributes and OutputSiblings.
func ParseNameValue(text string) (NameValue, error) {
	tokens := ParseSpecification(text)
	if len(tokens) != 2 || tokens[0] == "" {
		return NameValue{}, fmt.Errorf("%w: %q must have the form name|value", ErrMalformedSpecification, text)
	}

	return NameValue{Name: tokens[0], Value: tokens[1]}, nil
}

// AttributeTarget reports whether an output name is the "att@NAME" form
// and returns the attribute name.
func AttributeTarget(outputName string) (string, bool) {
	tokens := ParseSpecification(outputName)
	if len(tokens) == 2 && strings.EqualFold(tokens[0], SpecAtt) && tokens[1] != "" {
		return tokens[1], true
	}

	return "", false
}

// PositionToken is one step of an output container path.
type PositionToken struct {
	Name string
	// New forces a fresh container even when one of that name exists.
	New bool
}

// ParsePosition turns an OutputPosition list into tokens, expanding
// "new@NAME" entries.
func ParsePosition(position []string) []PositionToken {
	out := make([]PositionToken, 0, len(position))

	for _, p := range position {
		tokens := ParseSpecification(p)
		if len(tokens) == 2 && strings.EqualFold(tokens[0], SpecNew) {
			out = append(out, PositionToken{Name: tokens[1], New: true})
			continue
		}

		out = append(out, PositionToken{Name: strings.TrimSpace(p)})
	}

	return out
}
