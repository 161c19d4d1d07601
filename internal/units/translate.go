package units

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"label-translator/internal/source"
)

// ErrUntranslatableUnit is wrapped by every UntranslatableUnitError.
var ErrUntranslatableUnit = errors.New("untranslatable unit")

// UntranslatableUnitError names a unit with no canonical spelling.
type UntranslatableUnitError struct {
	Unit string
	// Path is the element's path from the document root.
	Path string
}

func (e *UntranslatableUnitError) Error() string {
	return fmt.Sprintf("%s: %q on %s", ErrUntranslatableUnit, e.Unit, e.Path)
}

func (e *UntranslatableUnitError) Unwrap() error {
	return ErrUntranslatableUnit
}

// Translate rewrites every unit attribute of doc to its canonical
// spelling, depth-first and pre-order. It stops at the first unknown
// unit; the document is then partly rewritten and must be discarded.
func Translate(doc *etree.Document, m *Map) error {
	root := doc.Root()
	if root == nil {
		return nil
	}

	return translateElement(root, m)
}

func translateElement(el *etree.Element, m *Map) error {
	if attr := el.SelectAttr(source.UnitAttribute); attr != nil {
		canonical, ok := m.Lookup(attr.Value)
		if !ok {
			return &UntranslatableUnitError{Unit: attr.Value, Path: el.GetPath()}
		}

		attr.Value = canonical
	}

	for _, child := range el.ChildElements() {
		if err := translateElement(child, m); err != nil {
			return err
		}
	}

	return nil
}
