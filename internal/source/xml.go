package source

import (
	"fmt"

	"github.com/beevik/etree"
)

// UnitAttribute is the attribute holding an element's unit.
const UnitAttribute = "unit"

// XML reads an etree document.
type XML struct {
	doc *etree.Document
}

// NewXML wraps a parsed document.
func NewXML(doc *etree.Document) *XML {
	return &XML{doc: doc}
}

// ParseXML parses XML text into a Source.
func ParseXML(data []byte) (*XML, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML label: %w", err)
	}

	if doc.Root() == nil {
		return nil, fmt.Errorf("failed to parse XML label: no root element")
	}

	return NewXML(doc), nil
}

func (s *XML) Kind() Kind        { return KindXML }
func (s *XML) MultiValued() bool { return false }

// Document returns the wrapped document.
func (s *XML) Document() *etree.Document {
	return s.doc
}

// Locate walks child elements by tag. A leading step naming the root
// element is consumed by the root itself. Names with a prefix
// ("cas:CASSIS") match the prefix too; bare names match any namespace.
func (s *XML) Locate(path []string) []Container {
	root := s.doc.Root()
	if root == nil {
		return nil
	}

	if isRootPath(path) {
		return []Container{xmlContainer{root}}
	}

	if tagMatches(root, path[0]) {
		path = path[1:]
	}

	current := []*etree.Element{root}

	for _, name := range path {
		var next []*etree.Element
		for _, el := range current {
			next = append(next, el.SelectElements(name)...)
		}

		if len(next) == 0 {
			return nil
		}

		current = next
	}

	out := make([]Container, len(current))
	for i, el := range current {
		out[i] = xmlContainer{el}
	}

	return out
}

func tagMatches(el *etree.Element, name string) bool {
	return el.FullTag() == name || el.Tag == name
}

type xmlContainer struct {
	el *etree.Element
}

func (c xmlContainer) Name() string { return c.el.FullTag() }

func (c xmlContainer) Entries(name string) []Entry {
	els := c.el.SelectElements(name)

	out := make([]Entry, len(els))
	for i, el := range els {
		out[i] = xmlEntry{el}
	}

	return out
}

type xmlEntry struct {
	el *etree.Element
}

func (e xmlEntry) Name() string { return e.el.FullTag() }

func (e xmlEntry) Values() []Value {
	return []Value{{Text: e.el.Text(), Unit: e.el.SelectAttrValue(UnitAttribute, "")}}
}

func (e xmlEntry) Attribute(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}

	return a.Value, true
}
