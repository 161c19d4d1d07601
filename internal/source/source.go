package source

import (
	"strings"

	"label-translator/internal/common"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the input dialect behind a Source.
type Kind int

const (
	KindPVL  Kind = iota // pvl
	KindXML              // xml
	KindJSON             // json
)

// Value is one raw input value and its unit, if the input carried one.
type Value struct {
	Text string
	Unit string
}

// Entry is a keyword (PVL), element (XML) or member (JSON) holding values.
type Entry interface {
	Name() string
	Values() []Value
	// Attribute returns the named attribute, if the entry has one.
	Attribute(name string) (string, bool)
}

// Container holds entries.
type Container interface {
	Name() string
	// Entries returns the entries named name in document order.
	Entries(name string) []Entry
}

// Source is an input label.
type Source interface {
	Kind() Kind
	// Locate follows path from the document root and returns every matching
	// container in document order. Repeated names along the path fan out,
	// so containers sharing a parent name ("cousins") are all returned.
	Locate(path []string) []Container
	// MultiValued reports whether one entry can carry several values.
	MultiValued() bool
}

// isRootPath reports whether path addresses the document root itself.
func isRootPath(path []string) bool {
	if common.IsEmpty(path) {
		return true
	}

	return common.IsSingle(path) && (path[0] == "" || strings.EqualFold(path[0], common.RootName))
}
