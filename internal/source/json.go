package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// JSON member names recognised on value objects such as
// {"value": 12.5, "unit": "km"}.
const (
	JSONValueKey = "value"
	JSONUnitKey  = "unit"
)

// JSON reads an ojg-parsed document. Objects are containers; arrays of
// objects fan out into one container per element.
type JSON struct {
	root any
}

// NewJSON wraps generic data as produced by oj.Parse.
func NewJSON(root any) *JSON {
	return &JSON{root: root}
}

// ParseJSON parses JSON text into a Source.
func ParseJSON(data []byte) (*JSON, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON label: %w", err)
	}

	return NewJSON(root), nil
}

func (s *JSON) Kind() Kind        { return KindJSON }
func (s *JSON) MultiValued() bool { return true }

// Locate follows member names. A single path element starting with '$'
// is evaluated as a JSONPath expression instead; every object it selects
// is a container.
func (s *JSON) Locate(path []string) []Container {
	if isRootPath(path) {
		return objectContainers("", []any{s.root})
	}

	if len(path) == 1 && strings.HasPrefix(path[0], "$") {
		x, err := jp.ParseString(path[0])
		if err != nil {
			return nil
		}

		return objectContainers(path[0], x.Get(s.root))
	}

	current := []any{s.root}

	for _, name := range path {
		x := jp.C(name)

		var next []any
		for _, node := range current {
			next = append(next, x.Get(node)...)
		}

		next = flatten(next)
		if len(next) == 0 {
			return nil
		}

		current = next
	}

	return objectContainers(path[len(path)-1], current)
}

// flatten expands arrays into their elements.
func flatten(nodes []any) []any {
	var out []any

	for _, n := range nodes {
		if arr, ok := n.([]any); ok {
			out = append(out, arr...)
			continue
		}

		out = append(out, n)
	}

	return out
}

func objectContainers(name string, nodes []any) []Container {
	var out []Container

	for _, n := range flatten(nodes) {
		if m, ok := n.(map[string]any); ok {
			out = append(out, jsonContainer{name: name, obj: m})
		}
	}

	return out
}

type jsonContainer struct {
	name string
	obj  map[string]any
}

func (c jsonContainer) Name() string { return c.name }

// Entries returns one entry for a scalar or scalar array member, and one
// entry per element for an array of value objects.
func (c jsonContainer) Entries(name string) []Entry {
	v, ok := c.obj[name]
	if !ok {
		return nil
	}

	arr, isArr := v.([]any)
	if !isArr {
		return []Entry{jsonEntry{name: name, node: v}}
	}

	if len(arr) > 0 {
		if _, isObj := arr[0].(map[string]any); isObj {
			out := make([]Entry, 0, len(arr))
			for _, el := range arr {
				out = append(out, jsonEntry{name: name, node: el})
			}

			return out
		}
	}

	return []Entry{jsonEntry{name: name, node: v}}
}

type jsonEntry struct {
	name string
	node any
}

func (e jsonEntry) Name() string { return e.name }

func (e jsonEntry) Values() []Value {
	switch n := e.node.(type) {
	case []any:
		out := make([]Value, 0, len(n))
		for _, el := range n {
			out = append(out, scalarValue(el))
		}

		return out
	default:
		return []Value{scalarValue(n)}
	}
}

// Attribute reads a scalar member of a value object.
func (e jsonEntry) Attribute(name string) (string, bool) {
	m, ok := e.node.(map[string]any)
	if !ok {
		return "", false
	}

	v, ok := m[name]
	if !ok {
		return "", false
	}

	switch v.(type) {
	case map[string]any, []any:
		return "", false
	}

	return scalarText(v), true
}

func scalarValue(n any) Value {
	if m, ok := n.(map[string]any); ok {
		return Value{Text: scalarText(m[JSONValueKey]), Unit: scalarText(m[JSONUnitKey])}
	}

	return Value{Text: scalarText(n)}
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
