package mapping

import (
	"errors"
	"strings"

	"label-translator/internal/diagnostic"
)

// Table keywords recognized inside a translation group.
const (
	KeyAuto                 = "Auto"
	KeyOptional             = "Optional"
	KeyDebug                = "Debug"
	KeyInputPosition        = "InputPosition"
	KeyInputGroup           = "InputGroup"
	KeyInputKey             = "InputKey"
	KeyInputKeyAttribute    = "InputKeyAttribute"
	KeyInputKeyDependencies = "InputKeyDependencies"
	KeyInputDefault         = "InputDefault"
	KeyOutputName           = "OutputName"
	KeyOutputPosition       = "OutputPosition"
	KeyOutputAttributes     = "OutputAttributes"
	KeyOutputSiblings       = "OutputSiblings"
	KeyTranslation          = "Translation"
)

// KnownKeywords lists every keyword a group may carry.
var KnownKeywords = []string{
	KeyAuto,
	KeyOptional,
	KeyDebug,
	KeyInputPosition,
	KeyInputGroup,
	KeyInputKey,
	KeyInputKeyAttribute,
	KeyInputKeyDependencies,
	KeyInputDefault,
	KeyOutputName,
	KeyOutputPosition,
	KeyOutputAttributes,
	KeyOutputSiblings,
	KeyTranslation,
}

// Wildcard matches any input value in a translation pair; as the output
// value it passes the input through unchanged.
const Wildcard = "*"

// ErrConfiguration is the sentinel wrapped by every table load failure.
var ErrConfiguration = errors.New("translation table configuration error")

// ConfigError carries the diagnostics that made a table unusable.
type ConfigError struct {
	Diagnostics *diagnostic.Diagnostics
}

func (e *ConfigError) Error() string {
	return "invalid translation table: " + e.Diagnostics.Error().Error()
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

// TranslationPair maps one input value to one output value.
type TranslationPair struct {
	Output string
	Input  string
}

// Matches reports whether the pair applies to the raw input value.
func (p TranslationPair) Matches(raw string, fold bool) bool {
	if p.Input == Wildcard {
		return true
	}

	if fold {
		return strings.EqualFold(p.Input, raw)
	}

	return p.Input == raw
}

// Apply returns the translated value for raw.
func (p TranslationPair) Apply(raw string) string {
	if p.Output == Wildcard {
		return raw
	}

	return p.Output
}

// TranslationGroup describes how one output keyword is produced.
type TranslationGroup struct {
	// Name is the group's name in the table.
	Name string

	// Auto marks the group for the automatic translation pass.
	Auto bool
	// Optional turns a failed resolution into a skipped group.
	Optional bool
	// Debug logs the group definition and its resolution.
	Debug bool

	// InputPositions are candidate container paths, tried in order.
	InputPositions [][]string
	// InputKey names the keyword or element holding the value.
	InputKey string
	// InputKeyAttribute reads an XML attribute instead of element text.
	InputKeyAttribute string
	// InputKeyDependencies are "tag@X|V" / "att@X|V" filters that must all hold.
	InputKeyDependencies []string
	// InputDefault substitutes for a missing input.
	InputDefault *string

	// OutputName is the produced keyword or element; "att@NAME" targets an attribute.
	OutputName string
	// OutputPosition is the container path of the produced keyword.
	OutputPosition []string
	// OutputAttributes are "name|value" attributes set on the produced node.
	OutputAttributes []string
	// OutputSiblings are "tag|value" elements added next to the produced node.
	OutputSiblings []string

	// Translations are tried in declaration order.
	Translations []TranslationPair

	// Line is where the group starts in its table file, 0 when the group
	// was built in memory. Diagnostics about the group carry it.
	Line int
}

// HasDefault reports whether an InputDefault is declared.
func (g *TranslationGroup) HasDefault() bool {
	return g.InputDefault != nil
}

// Dependencies parses InputKeyDependencies.
func (g *TranslationGroup) Dependencies() ([]Dependency, error) {
	deps := make([]Dependency, 0, len(g.InputKeyDependencies))

	for _, s := range g.InputKeyDependencies {
		d, err := ParseDependency(s)
		if err != nil {
			return nil, err
		}

		deps = append(deps, d)
	}

	return deps, nil
}

// OutputAttributePairs parses OutputAttributes.
func (g *TranslationGroup) OutputAttributePairs() ([]NameValue, error) {
	return parseNameValues(g.OutputAttributes)
}

// OutputSiblingPairs parses OutputSiblings.
func (g *TranslationGroup) OutputSiblingPairs() ([]NameValue, error) {
	return parseNameValues(g.OutputSiblings)
}

// Translate maps raw through the translation pairs, first match wins.
func (g *TranslationGroup) Translate(raw string, fold bool) (string, bool) {
	for _, p := range g.Translations {
		if p.Matches(raw, fold) {
			return p.Apply(raw), true
		}
	}

	return "", false
}

func parseNameValues(specs []string) ([]NameValue, error) {
	out := make([]NameValue, 0, len(specs))

	for _, s := range specs {
		nv, err := ParseNameValue(s)
		if err != nil {
			return nil, err
		}

		out = append(out, nv)
	}

	return out, nil
}

// TranslationTable is an immutable, ordered set of translation groups.
// It is safe for concurrent read-only use.
type TranslationTable struct {
	// Version of the table format, "1" unless stated.
	Version string

	path   string
	groups []*TranslationGroup
	index  map[string]*TranslationGroup
	diags  *diagnostic.Diagnostics
}

// NewTable builds and validates a table from groups already in memory.
func NewTable(path string, groups ...*TranslationGroup) (*TranslationTable, error) {
	diags := &diagnostic.Diagnostics{Source: path}

	for _, g := range groups {
		if g.OutputName == "" {
			g.OutputName = g.Name
		}
	}

	return newTable(path, groups, diags)
}

func newTable(path string, groups []*TranslationGroup, diags *diagnostic.Diagnostics) (*TranslationTable, error) {
	t := &TranslationTable{
		Version: "1",
		path:    path,
		groups:  groups,
		index:   make(map[string]*TranslationGroup, len(groups)),
		diags:   diags,
	}

	for _, g := range groups {
		key := strings.ToLower(g.Name)
		if _, dup := t.index[key]; dup {
			diags.AtLine(g.Line, func() {
				diags.AddError("duplicate_group", "group is defined more than once", g.Name, "")
			})

			continue
		}

		t.index[key] = g
	}

	diags.Merge(*Validate(t))

	if diags.HasErrors() {
		return nil, &ConfigError{Diagnostics: diags}
	}

	return t, nil
}

// Path returns the file the table was loaded from, if any.
func (t *TranslationTable) Path() string {
	return t.path
}

// Group returns the group named name (case-insensitive).
func (t *TranslationTable) Group(name string) (*TranslationGroup, bool) {
	g, ok := t.index[strings.ToLower(name)]
	return g, ok
}

// Groups returns every group in table order.
func (t *TranslationTable) Groups() []*TranslationGroup {
	return t.groups
}

// AutoGroups returns the groups flagged Auto, in table order.
func (t *TranslationTable) AutoGroups() []*TranslationGroup {
	var out []*TranslationGroup

	for _, g := range t.groups {
		if g.Auto {
			out = append(out, g)
		}
	}

	return out
}

// Diagnostics returns the warnings gathered while loading the table.
func (t *TranslationTable) Diagnostics() *diagnostic.Diagnostics {
	return t.diags
}
