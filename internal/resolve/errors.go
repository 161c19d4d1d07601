package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds.
var (
	ErrUnknownGroup                     = errors.New("no such translation group")
	ErrMissingInputGroup                = errors.New("input group not found")
	ErrMissingInputKeyword              = errors.New("input keyword not found")
	ErrNoInputOrDefaultValue            = errors.New("no input or default value")
	ErrNoMatchingTranslationPair        = errors.New("value not found in translation table")
	ErrMalformedDependencySpecification = errors.New("malformed dependency specification")
	ErrAmbiguousXmlAttributeMultiValue  = errors.New("cannot read more than one value from a single-valued input")
	ErrValueIndexOutOfRange             = errors.New("value index out of range")
)

// Error describes a failed resolution of one group.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Group is the translation group being resolved.
	Group string
	// Table is the translation table path, empty for in-memory tables.
	Table string
	// Detail adds context such as the searched positions or raw value.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "translation group %q", e.Group)

	if e.Table != "" {
		fmt.Fprintf(&b, " in %s", e.Table)
	}

	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Unwrap exposes Kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// IsMissingInput reports whether err means the input value could not be
// found at all, as opposed to a table or programming problem.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInputGroup) ||
		errors.Is(err, ErrMissingInputKeyword) ||
		errors.Is(err, ErrNoInputOrDefaultValue)
}
