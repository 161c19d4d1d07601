package resolve

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"label-translator/internal/mapping"
	"label-translator/internal/source"
)

// Value is the outcome of resolving one group.
type Value struct {
	// Name is the group's OutputName.
	Name  string
	Value string
	// Unit is the unit carried by the input value, empty when the value
	// came from InputDefault or the input had none.
	Unit string
}

// dumper prints groups flagged Debug without pointer noise.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Resolver resolves the groups of one table against one input label.
// It never mutates either, so one table may back many resolvers.
type Resolver struct {
	table  *mapping.TranslationTable
	src    source.Source
	config Config
}

// NewResolver creates a Resolver.
func NewResolver(table *mapping.TranslationTable, src source.Source, opts ...Option) *Resolver {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Resolver{table: table, src: src, config: config}
}

// Table returns the translation table.
func (r *Resolver) Table() *mapping.TranslationTable {
	return r.table
}

// Source returns the input label.
func (r *Resolver) Source() source.Source {
	return r.src
}

// Resolve resolves the first value of the named group.
func (r *Resolver) Resolve(group string) (Value, error) {
	return r.ResolveIndex(group, 0)
}

// ResolveIndex resolves the index-th value of a multi-valued input.
// Single-valued sources only have index 0.
func (r *Resolver) ResolveIndex(group string, index int) (Value, error) {
	g, err := r.group(group)
	if err != nil {
		return Value{}, err
	}

	if index < 0 {
		return Value{}, r.fail(g, ErrValueIndexOutOfRange, fmt.Sprintf("index %d", index))
	}

	if index > 0 && !r.src.MultiValued() {
		return Value{}, r.fail(g, ErrAmbiguousXmlAttributeMultiValue,
			fmt.Sprintf("index %d requested from a %s input", index, r.src.Kind()))
	}

	deps, err := g.Dependencies()
	if err != nil {
		return Value{}, r.fail(g, ErrMalformedDependencySpecification, err.Error())
	}

	if g.Debug && index == 0 {
		r.config.Logger.Debugf("translation group %s:\n%s", g.Name, dumper.Sdump(g))
	}

	raw, unit, err := r.input(g, deps, index)
	if err != nil {
		return Value{}, err
	}

	out, ok := g.Translate(raw, r.config.CaseInsensitiveMatch)
	if !ok {
		return Value{}, r.fail(g, ErrNoMatchingTranslationPair, fmt.Sprintf("input value %q", raw))
	}

	v := Value{Name: g.OutputName, Value: strings.TrimSpace(out), Unit: unit}

	if g.Debug {
		r.config.Logger.Debugf("translation group %s[%d] resolved to %s", g.Name, index, dumper.Sdump(v))
	}

	return v, nil
}

// ResolveAll resolves every value of the named group's input, one
// output value per input value. A missing input with a default yields
// one value.
func (r *Resolver) ResolveAll(group string) ([]Value, error) {
	n, err := r.InputValueCount(group)
	if err != nil {
		return nil, err
	}

	n = max(n, 1)
	out := make([]Value, 0, n)

	for i := range n {
		v, err := r.ResolveIndex(group, i)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// InputValueCount returns how many values the group's input provides:
// the value count of the located entry, 1 when only the default applies,
// or 0 when nothing is available.
func (r *Resolver) InputValueCount(group string) (int, error) {
	g, err := r.group(group)
	if err != nil {
		return 0, err
	}

	deps, err := g.Dependencies()
	if err != nil {
		return 0, r.fail(g, ErrMalformedDependencySpecification, err.Error())
	}

	if l := r.find(g, deps); l.status == statusFound {
		if n := len(r.rawValues(g, l.entry)); n > 0 {
			return n, nil
		}
	}

	if g.HasDefault() {
		return 1, nil
	}

	return 0, nil
}

func (r *Resolver) group(name string) (*mapping.TranslationGroup, error) {
	g, ok := r.table.Group(name)
	if !ok {
		return nil, &Error{Kind: ErrUnknownGroup, Group: name, Table: r.table.Path()}
	}

	return g, nil
}

func (r *Resolver) fail(g *mapping.TranslationGroup, kind error, detail string) error {
	return &Error{Kind: kind, Group: g.Name, Table: r.table.Path(), Detail: detail}
}

// input returns the raw value and unit, falling back to the default.
func (r *Resolver) input(g *mapping.TranslationGroup, deps []mapping.Dependency, index int) (string, string, error) {
	l := r.find(g, deps)

	if l.status == statusFound {
		if g.Debug {
			r.config.Logger.Debugf("translation group %s: %s found in [%s]", g.Name, g.InputKey, strings.Join(l.position, "/"))
		}

		values := r.rawValues(g, l.entry)

		var v source.Value

		switch {
		case index < len(values):
			v = values[index]
		case index > 0:
			return "", "", r.fail(g, ErrValueIndexOutOfRange,
				fmt.Sprintf("index %d of %d values of %s", index, len(values), g.InputKey))
		}

		text := strings.TrimSpace(v.Text)
		if text != "" || !g.HasDefault() {
			return text, v.Unit, nil
		}
	}

	if g.HasDefault() {
		return *g.InputDefault, "", nil
	}

	return "", "", r.missing(g, l.status)
}

func (r *Resolver) missing(g *mapping.TranslationGroup, status searchStatus) error {
	if g.InputKey == "" {
		return r.fail(g, ErrNoInputOrDefaultValue, "group has no InputKey")
	}

	where := formatPositions(g.InputPositions)

	if r.src.Kind() != source.KindPVL {
		return r.fail(g, ErrNoInputOrDefaultValue, fmt.Sprintf("%s not found in %s", g.InputKey, where))
	}

	if status == statusNoContainer {
		return r.fail(g, ErrMissingInputGroup, fmt.Sprintf("none of %s exist", where))
	}

	return r.fail(g, ErrMissingInputKeyword, fmt.Sprintf("%s not found in %s", g.InputKey, where))
}

// rawValues reads the entry's values, or the single attribute value when
// InputKeyAttribute is set.
func (r *Resolver) rawValues(g *mapping.TranslationGroup, e source.Entry) []source.Value {
	if g.InputKeyAttribute != "" {
		v, _ := e.Attribute(g.InputKeyAttribute)
		return []source.Value{{Text: v}}
	}

	return e.Values()
}

func formatPositions(positions [][]string) string {
	if len(positions) == 0 {
		return "[]"
	}

	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = "[" + strings.Join(p, "/") + "]"
	}

	return strings.Join(parts, ", ")
}
