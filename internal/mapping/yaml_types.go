package mapping

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"label-translator/internal/common"
	"label-translator/internal/diagnostic"
)

// yamlTable is the top level of a YAML translation table. Groups is kept
// as a node so group and keyword order survive decoding.
type yamlTable struct {
	Version string    `yaml:"version,omitempty"`
	Groups  yaml.Node `yaml:"groups"`
}

func parseYAML(data []byte, path string) (*TranslationTable, error) {
	var yt yamlTable

	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("failed to parse translation table YAML %s: %w", displayPath(path), err)
	}

	diags := &diagnostic.Diagnostics{Source: path}

	var raws []rawGroup

	switch yt.Groups.Kind {
	case 0:
		// No groups: an empty table.
	case yaml.MappingNode:
		for i := 0; i+1 < len(yt.Groups.Content); i += 2 {
			raw, err := decodeYAMLGroup(yt.Groups.Content[i], yt.Groups.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("translation table %s: %w", displayPath(path), err)
			}

			raws = append(raws, raw)
		}
	default:
		return nil, fmt.Errorf("translation table %s: groups must be a mapping of group name to keywords", displayPath(path))
	}

	t, err := buildTable(raws, path, diags)
	if err != nil {
		return nil, err
	}

	if yt.Version != "" {
		t.Version = yt.Version
	}

	return t, nil
}

func decodeYAMLGroup(key, value *yaml.Node) (rawGroup, error) {
	raw := rawGroup{name: key.Value, line: key.Line}

	if value.Kind != yaml.MappingNode {
		return raw, fmt.Errorf("group %q (line %d): expected a mapping of keywords", key.Value, key.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		kws, err := decodeYAMLKeyword(value.Content[i].Value, value.Content[i+1])
		if err != nil {
			return raw, fmt.Errorf("group %q: %w", key.Value, err)
		}

		raw.keywords = append(raw.keywords, kws...)
	}

	return raw, nil
}

// decodeYAMLKeyword maps one YAML entry onto PVL keyword occurrences:
//   - true/false  -> a flag keyword (false drops it)
//   - scalar      -> one keyword with one value
//   - [a, b]      -> one keyword with two values
//   - [[a], [b]]  -> the keyword repeated, once per inner sequence
func decodeYAMLKeyword(name string, node *yaml.Node) ([]rawKeyword, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!bool" {
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}

			if !b {
				return nil, nil
			}

			return []rawKeyword{{name: name}}, nil
		}

		return []rawKeyword{{name: name, values: []string{node.Value}}}, nil

	case yaml.SequenceNode:
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			out := make([]rawKeyword, 0, len(node.Content))

			for _, item := range node.Content {
				var values StringOrArray
				if err := item.Decode(&values); err != nil {
					return nil, fmt.Errorf("keyword %q: %w", name, err)
				}

				out = append(out, rawKeyword{name: name, values: values})
			}

			return out, nil
		}

		var values StringOrArray
		if err := node.Decode(&values); err != nil {
			return nil, fmt.Errorf("keyword %q: %w", name, err)
		}

		return []rawKeyword{{name: name, values: values}}, nil

	default:
		return nil, fmt.Errorf("keyword %q (line %d): expected a scalar or a sequence", name, node.Line)
	}
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// This allows YAML fields to accept both "km" and ["km", "kilometers"].
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// ContainsFold returns true if the array holds str under case folding.
func (s StringOrArray) ContainsFold(str string) bool {
	return slices.ContainsFunc(s, func(v string) bool { return strings.EqualFold(v, str) })
}
