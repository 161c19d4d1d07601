package export

import (
	"github.com/beevik/etree"

	"label-translator/internal/output"
)

// Reorder moves the root's children named in order to the front, in that
// order. Children not named keep their relative order after them.
func Reorder(doc *etree.Document, order []string) {
	root := doc.Root()
	if root == nil {
		return
	}

	var prev *etree.Element

	for _, name := range order {
		for _, el := range root.SelectElements(name) {
			if prev == nil {
				root.RemoveChild(el)
				root.InsertChildAt(0, el)
			} else {
				output.InsertAfter(prev, el)
			}

			prev = el
		}
	}
}
