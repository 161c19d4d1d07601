package resolve

import (
	"strings"

	"label-translator/internal/common"
	"label-translator/internal/mapping"
	"label-translator/internal/source"
)

type searchStatus int

const (
	// statusNoContainer: no candidate position located a container.
	statusNoContainer searchStatus = iota
	// statusNoEntry: a container was located but no entry was accepted.
	statusNoEntry
	statusFound
)

type lookup struct {
	status   searchStatus
	entry    source.Entry
	position []string
}

// find runs the candidate search. Candidates are tried in declaration
// order; inside one, containers in document order, and inside a container
// same-named entries in document order. The first accepted entry ends the
// search.
func (r *Resolver) find(g *mapping.TranslationGroup, deps []mapping.Dependency) lookup {
	res := lookup{status: statusNoContainer}

	if g.InputKey == "" {
		return res
	}

	for _, position := range g.InputPositions {
		containers := r.src.Locate(position)
		if common.IsEmpty(containers) {
			continue
		}

		res.status = statusNoEntry

		for _, c := range containers {
			for _, e := range c.Entries(g.InputKey) {
				if accepts(g, c, e, deps) {
					return lookup{status: statusFound, entry: e, position: position}
				}
			}
		}
	}

	return res
}

// accepts checks the requested attribute exists and every dependency holds.
func accepts(g *mapping.TranslationGroup, c source.Container, e source.Entry, deps []mapping.Dependency) bool {
	if g.InputKeyAttribute != "" {
		if _, ok := e.Attribute(g.InputKeyAttribute); !ok {
			return false
		}
	}

	for _, d := range deps {
		switch d.Kind {
		case mapping.DependencyAtt:
			v, ok := e.Attribute(d.Name)
			if !ok || strings.TrimSpace(v) != d.Value {
				return false
			}
		case mapping.DependencyTag:
			if !siblingHolds(c, d) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// siblingHolds checks the first entry named d.Name under the same parent.
func siblingHolds(c source.Container, d mapping.Dependency) bool {
	sibling, ok := common.First(c.Entries(d.Name))
	if !ok {
		return false
	}

	v, ok := common.First(sibling.Values())

	return ok && strings.TrimSpace(v.Text) == d.Value
}
