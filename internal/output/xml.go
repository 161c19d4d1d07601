package output

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"label-translator/internal/logger"
	"label-translator/internal/mapping"
	"label-translator/internal/resolve"
	"label-translator/internal/source"
)

// ErrNoRoot reports an output position that cannot start an empty document.
var ErrNoRoot = errors.New("output document has no root element")

// XMLBuilder writes resolved groups into an XML document.
type XMLBuilder struct {
	resolver *resolve.Resolver
	log      logger.ILogger
}

// NewXMLBuilder creates an XMLBuilder.
func NewXMLBuilder(r *resolve.Resolver, l logger.ILogger) *XMLBuilder {
	return &XMLBuilder{resolver: r, log: logger.OrNull(l)}
}

// Auto runs every Auto group into doc. On error the document may hold
// the groups already written and must be discarded.
func (b *XMLBuilder) Auto(doc *etree.Document) error {
	for _, g := range b.resolver.Table().AutoGroups() {
		if err := b.Translate(doc, g.Name); err != nil {
			if g.Optional && resolve.IsMissingInput(err) {
				b.log.Debugf("skipping optional group %s: %v", g.Name, err)
				continue
			}

			return err
		}
	}

	return nil
}

// Translate resolves one group and adds it to doc. Nothing is written
// unless resolution succeeds.
func (b *XMLBuilder) Translate(doc *etree.Document, group string) error {
	v, err := b.resolver.Resolve(group)
	if err != nil {
		return err
	}

	g, _ := b.resolver.Table().Group(group)

	attrs, err := g.OutputAttributePairs()
	if err != nil {
		return fmt.Errorf("translation group %q: %w", g.Name, err)
	}

	siblings, err := g.OutputSiblingPairs()
	if err != nil {
		return fmt.Errorf("translation group %q: %w", g.Name, err)
	}

	parent, err := XMLContainer(doc, g.OutputPosition)
	if err != nil {
		return fmt.Errorf("translation group %q: %w", g.Name, err)
	}

	node := parent

	if name, isAttr := mapping.AttributeTarget(g.OutputName); isAttr {
		parent.CreateAttr(name, v.Value)
	} else {
		node = parent.CreateElement(g.OutputName)
		node.SetText(v.Value)

		if v.Unit != "" {
			node.CreateAttr(source.UnitAttribute, v.Unit)
		}
	}

	for _, a := range attrs {
		node.CreateAttr(a.Name, a.Value)
	}

	for _, s := range siblings {
		if parent.SelectElement(s.Name) != nil {
			continue
		}

		parent.CreateElement(s.Name).SetText(s.Value)
	}

	return nil
}

// XMLContainer finds or creates the element at position. A leading token
// naming the root element is skipped; "new@NAME" always appends a fresh
// element; other names reuse the first matching child. An empty document
// takes its root from the first token.
func XMLContainer(doc *etree.Document, position []string) (*etree.Element, error) {
	tokens := mapping.ParsePosition(position)
	cur := doc.Root()

	switch {
	case cur == nil && len(tokens) == 0:
		return nil, ErrNoRoot
	case cur == nil:
		cur = doc.CreateElement(tokens[0].Name)
		tokens = tokens[1:]
	case len(tokens) > 0 && !tokens[0].New && (cur.FullTag() == tokens[0].Name || cur.Tag == tokens[0].Name):
		tokens = tokens[1:]
	}

	for _, t := range tokens {
		cur = xmlStep(cur, t)
	}

	return cur, nil
}

func xmlStep(cur *etree.Element, t mapping.PositionToken) *etree.Element {
	if !t.New {
		if c := cur.SelectElement(t.Name); c != nil {
			return c
		}
	}

	return cur.CreateElement(t.Name)
}

// InsertAfter places el immediately after ref under ref's parent.
func InsertAfter(ref, el *etree.Element) {
	parent := ref.Parent()
	if parent == nil {
		return
	}

	if p := el.Parent(); p != nil {
		p.RemoveChild(el)
	}

	parent.InsertChildAt(ref.Index()+1, el)
}
