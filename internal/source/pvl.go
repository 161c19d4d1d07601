package source

import (
	"label-translator/internal/pvl"
)

// PVL reads an object/group/keyword label.
type PVL struct {
	root *pvl.Object
}

// NewPVL wraps a parsed label.
func NewPVL(root *pvl.Object) *PVL {
	return &PVL{root: root}
}

// ParsePVL parses label text into a Source.
func ParsePVL(data []byte) (*PVL, error) {
	root, err := pvl.Parse(data)
	if err != nil {
		return nil, err
	}

	return NewPVL(root), nil
}

func (s *PVL) Kind() Kind        { return KindPVL }
func (s *PVL) MultiValued() bool { return true }

// Root returns the wrapped label.
func (s *PVL) Root() *pvl.Object {
	return s.root
}

// Locate matches objects and groups by name, case-insensitively. "ROOT"
// as the whole path addresses the label itself.
func (s *PVL) Locate(path []string) []Container {
	if s.root == nil {
		return nil
	}

	if isRootPath(path) {
		return []Container{pvlContainer{s.root}}
	}

	current := []*pvl.Object{s.root}

	for _, name := range path {
		var next []*pvl.Object
		for _, o := range current {
			next = append(next, o.ChildrenNamed(name)...)
		}

		if len(next) == 0 {
			return nil
		}

		current = next
	}

	out := make([]Container, len(current))
	for i, o := range current {
		out[i] = pvlContainer{o}
	}

	return out
}

type pvlContainer struct {
	obj *pvl.Object
}

func (c pvlContainer) Name() string { return c.obj.Name }

func (c pvlContainer) Entries(name string) []Entry {
	kws := c.obj.KeywordsNamed(name)

	out := make([]Entry, len(kws))
	for i, kw := range kws {
		out[i] = pvlEntry{kw}
	}

	return out
}

type pvlEntry struct {
	kw *pvl.Keyword
}

func (e pvlEntry) Name() string { return e.kw.Name }

func (e pvlEntry) Values() []Value {
	out := make([]Value, len(e.kw.Values))
	for i, v := range e.kw.Values {
		out[i] = Value{Text: v.Text, Unit: v.Unit}
	}

	return out
}

// Attribute always misses: PVL keywords carry no attributes.
func (e pvlEntry) Attribute(string) (string, bool) {
	return "", false
}
