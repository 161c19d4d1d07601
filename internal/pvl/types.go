package pvl

import (
	"strings"

	"label-translator/internal/common"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind distinguishes the three container flavours. String returns the
// PVL block keyword.
type Kind int

const (
	KindRoot Kind = iota
	KindObject
	KindGroup
)

// ParseKind maps "Object"/"Group" (any case) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch {
	case strings.EqualFold(s, "Object"):
		return KindObject, true
	case strings.EqualFold(s, "Group"):
		return KindGroup, true
	default:
		return KindRoot, false
	}
}

// Value is a single keyword value with its optional unit.
type Value struct {
	Text string
	Unit string
	// Quoted records that the value was quoted in the source.
	Quoted bool
}

// Keyword is a named, ordered list of values.
type Keyword struct {
	Name   string
	Values []Value
}

// NewKeyword creates a keyword from plain text values.
func NewKeyword(name string, values ...string) *Keyword {
	kw := &Keyword{Name: name}
	for _, v := range values {
		kw.Values = append(kw.Values, Value{Text: v})
	}

	return kw
}

// Texts returns the text of every value.
func (k *Keyword) Texts() []string {
	out := make([]string, len(k.Values))
	for i, v := range k.Values {
		out[i] = v.Text
	}

	return out
}

// First returns the first value's text, or "".
func (k *Keyword) First() string {
	if v, ok := common.First(k.Values); ok {
		return v.Text
	}

	return ""
}

// Object is a PVL container: the root, an Object block or a Group block.
type Object struct {
	Kind     Kind
	Name     string
	Keywords []*Keyword
	// Children holds nested objects and groups in document order.
	Children []*Object
	// Line is where the block starts in parsed text, 0 otherwise.
	Line int

	parent *Object
}

// NewDocument creates an empty root container.
func NewDocument() *Object {
	return &Object{Kind: KindRoot}
}

// Parent returns the enclosing container, or nil for the root.
func (o *Object) Parent() *Object {
	return o.parent
}

// FindKeyword returns the first keyword named name.
func (o *Object) FindKeyword(name string) (*Keyword, bool) {
	for _, kw := range o.Keywords {
		if strings.EqualFold(kw.Name, name) {
			return kw, true
		}
	}

	return nil, false
}

// KeywordsNamed returns every keyword named name in order. Translation
// tables repeat keywords such as InputPosition and Translation.
func (o *Object) KeywordsNamed(name string) []*Keyword {
	var out []*Keyword

	for _, kw := range o.Keywords {
		if strings.EqualFold(kw.Name, name) {
			out = append(out, kw)
		}
	}

	return out
}

// HasKeyword reports whether a keyword named name exists.
func (o *Object) HasKeyword(name string) bool {
	_, ok := o.FindKeyword(name)
	return ok
}

// AddKeyword appends kw.
func (o *Object) AddKeyword(kw *Keyword) {
	o.Keywords = append(o.Keywords, kw)
}

// SetKeyword replaces the first keyword with the same name, or appends kw.
func (o *Object) SetKeyword(kw *Keyword) {
	for i, existing := range o.Keywords {
		if strings.EqualFold(existing.Name, kw.Name) {
			o.Keywords[i] = kw
			return
		}
	}

	o.AddKeyword(kw)
}

// Child returns the first nested object or group named name.
func (o *Object) Child(name string) (*Object, bool) {
	for _, c := range o.Children {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}

	return nil, false
}

// ChildrenNamed returns every nested object or group named name in order.
func (o *Object) ChildrenNamed(name string) []*Object {
	var out []*Object

	for _, c := range o.Children {
		if strings.EqualFold(c.Name, name) {
			out = append(out, c)
		}
	}

	return out
}

// Groups returns the nested groups in order.
func (o *Object) Groups() []*Object {
	var out []*Object

	for _, c := range o.Children {
		if c.Kind == KindGroup {
			out = append(out, c)
		}
	}

	return out
}

// AddChild appends a new container of the given kind and returns it.
func (o *Object) AddChild(kind Kind, name string) *Object {
	c := &Object{Kind: kind, Name: name, parent: o}
	o.Children = append(o.Children, c)

	return c
}

// FindOrAddChild returns the first child named name, creating one of the
// given kind when none exists.
func (o *Object) FindOrAddChild(kind Kind, name string) *Object {
	if c, ok := o.Child(name); ok {
		return c
	}

	return o.AddChild(kind, name)
}

// Walk visits o and every nested container depth-first, pre-order.
// Returning false from fn stops the walk below that container.
func (o *Object) Walk(fn func(*Object) bool) {
	if !fn(o) {
		return
	}

	for _, c := range o.Children {
		c.Walk(fn)
	}
}
