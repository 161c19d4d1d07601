package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"label-translator/internal/common"
	"label-translator/internal/diagnostic"
	"label-translator/internal/match"
	"label-translator/internal/pvl"
)

// LoadFile loads a translation table, choosing the format by extension:
// ".yaml"/".yml" are YAML, anything else is PVL.
func LoadFile(path string) (*TranslationTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation table %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data, path)
	default:
		return parsePVL(data, path)
	}
}

// ParsePVL parses a PVL translation table.
func ParsePVL(data []byte) (*TranslationTable, error) {
	return parsePVL(data, "")
}

// ParseYAML parses a YAML translation table.
func ParseYAML(data []byte) (*TranslationTable, error) {
	return parseYAML(data, "")
}

// rawKeyword is one keyword occurrence before interpretation.
type rawKeyword struct {
	name   string
	values []string
}

// rawGroup is one table group before interpretation.
type rawGroup struct {
	name     string
	line     int
	keywords []rawKeyword
}

func parsePVL(data []byte, path string) (*TranslationTable, error) {
	doc, err := pvl.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation table %s: %w", displayPath(path), err)
	}

	diags := &diagnostic.Diagnostics{Source: path}

	for _, kw := range doc.Keywords {
		diags.AddWarning("keyword_outside_group", "keyword outside any group is ignored", "", kw.Name)
	}

	var raws []rawGroup

	doc.Walk(func(o *pvl.Object) bool {
		if o.Kind != pvl.KindGroup {
			return true
		}

		raw := rawGroup{name: o.Name, line: o.Line}
		for _, kw := range o.Keywords {
			raw.keywords = append(raw.keywords, rawKeyword{name: kw.Name, values: kw.Texts()})
		}

		raws = append(raws, raw)

		return false
	})

	return buildTable(raws, path, diags)
}

func buildTable(raws []rawGroup, path string, diags *diagnostic.Diagnostics) (*TranslationTable, error) {
	groups := make([]*TranslationGroup, 0, len(raws))
	for _, raw := range raws {
		diags.AtLine(raw.line, func() {
			groups = append(groups, buildGroup(raw, diags))
		})
	}

	return newTable(path, groups, diags)
}

// canonicalKeyword maps a table keyword onto KnownKeywords.
func canonicalKeyword(name string) (string, bool) {
	for _, k := range KnownKeywords {
		if match.KeywordsEqual(k, name) {
			return k, true
		}
	}

	return "", false
}

// flagValue interprets a valueless or boolean-valued flag keyword.
func flagValue(values []string) bool {
	v, ok := common.First(values)
	if !ok {
		return true
	}

	switch strings.ToLower(v) {
	case "false", "no", "off", "0":
		return false
	default:
		return true
	}
}

func buildGroup(raw rawGroup, diags *diagnostic.Diagnostics) *TranslationGroup {
	g := &TranslationGroup{Name: raw.name, Line: raw.line}

	var legacy [][]string

	for _, kw := range raw.keywords {
		key, ok := canonicalKeyword(kw.name)
		if !ok {
			diags.AddWarning("unknown_keyword",
				fmt.Sprintf("unrecognized keyword %q is ignored", kw.name),
				raw.name, kw.name,
				match.Suggest(kw.name, KnownKeywords, match.DefaultMinScore, 1)...)

			continue
		}

		switch key {
		case KeyAuto:
			g.Auto = flagValue(kw.values)
		case KeyOptional:
			g.Optional = flagValue(kw.values)
		case KeyDebug:
			g.Debug = flagValue(kw.values)
		case KeyInputPosition:
			g.InputPositions = append(g.InputPositions, common.TrimAll(kw.values))
		case KeyInputGroup:
			diags.AddInfo("legacy_input_group",
				"InputGroup is the legacy form of InputPosition and is searched after it",
				raw.name, kw.name)

			for _, v := range kw.values {
				legacy = append(legacy, common.TrimAll(strings.Split(v, ",")))
			}
		case KeyInputKeyDependencies:
			g.InputKeyDependencies = append(g.InputKeyDependencies, kw.values...)
		case KeyOutputPosition:
			g.OutputPosition = common.TrimAll(kw.values)
		case KeyOutputAttributes:
			g.OutputAttributes = append(g.OutputAttributes, kw.values...)
		case KeyOutputSiblings:
			g.OutputSiblings = append(g.OutputSiblings, kw.values...)
		case KeyTranslation:
			if len(kw.values) != 2 {
				diags.AddError("malformed_translation",
					fmt.Sprintf("translation must have exactly two values (output, input), got %d", len(kw.values)),
					raw.name, kw.name)

				continue
			}

			g.Translations = append(g.Translations, TranslationPair{Output: kw.values[0], Input: kw.values[1]})
		default:
			setSingle(g, key, kw, diags, raw.name)
		}
	}

	g.InputPositions = append(g.InputPositions, legacy...)

	if g.OutputName == "" {
		g.OutputName = g.Name
	}

	return g
}

// setSingle assigns the single-valued keywords.
func setSingle(g *TranslationGroup, key string, kw rawKeyword, diags *diagnostic.Diagnostics, group string) {
	if len(kw.values) == 0 {
		diags.AddError("missing_value", fmt.Sprintf("keyword %q needs a value", kw.name), group, kw.name)
		return
	}

	if len(kw.values) > 1 {
		diags.AddWarning("extra_values", "only the first value is used", group, kw.name)
	}

	v := strings.TrimSpace(kw.values[0])

	switch key {
	case KeyInputKey:
		g.InputKey = v
	case KeyInputKeyAttribute:
		g.InputKeyAttribute = v
	case KeyInputDefault:
		g.InputDefault = &v
	case KeyOutputName:
		g.OutputName = v
	}
}

func displayPath(path string) string {
	if path == "" {
		return "<memory>"
	}

	return path
}
