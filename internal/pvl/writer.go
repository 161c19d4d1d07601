package pvl

import (
	"strings"
)

const indentUnit = "  "

// Format renders a container tree as PVL text. The root is terminated
// with "End"; equals signs are aligned within each container.
func Format(o *Object) []byte {
	var b strings.Builder

	if o.Kind == KindRoot {
		writeBody(&b, o, 0)
		b.WriteString("End\n")
	} else {
		writeContainer(&b, o, 0)
	}

	return []byte(b.String())
}

// String renders the container as PVL text.
func (o *Object) String() string {
	return string(Format(o))
}

func writeContainer(b *strings.Builder, o *Object, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	b.WriteString(indent + o.Kind.String() + " = " + formatText(o.Name, false) + "\n")
	writeBody(b, o, depth+1)
	b.WriteString(indent + "End_" + o.Kind.String() + "\n")
}

func writeBody(b *strings.Builder, o *Object, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	width := 0
	for _, kw := range o.Keywords {
		width = max(width, len(kw.Name))
	}

	for _, kw := range o.Keywords {
		b.WriteString(indent)

		if len(kw.Values) == 0 {
			b.WriteString(kw.Name + "\n")
			continue
		}

		b.WriteString(kw.Name)
		b.WriteString(strings.Repeat(" ", width-len(kw.Name)))
		b.WriteString(" = ")
		b.WriteString(FormatValues(kw.Values))
		b.WriteString("\n")
	}

	for i, c := range o.Children {
		if i > 0 || len(o.Keywords) > 0 {
			b.WriteString("\n")
		}

		writeContainer(b, c, depth)
	}
}

// FormatValues renders a keyword's values: a scalar, or a parenthesised
// list. A unit shared by every element is written once after the list.
func FormatValues(values []Value) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return formatValue(values[0])
	}

	shared := values[0].Unit
	for _, v := range values[1:] {
		if v.Unit != shared {
			shared = ""
			break
		}
	}

	parts := make([]string, len(values))
	for i, v := range values {
		if shared != "" {
			parts[i] = formatText(v.Text, v.Quoted)
		} else {
			parts[i] = formatValue(v)
		}
	}

	out := "(" + strings.Join(parts, ", ") + ")"
	if shared != "" {
		out += " <" + shared + ">"
	}

	return out
}

func formatValue(v Value) string {
	s := formatText(v.Text, v.Quoted)
	if v.Unit != "" {
		s += " <" + v.Unit + ">"
	}

	return s
}

func formatText(s string, quoted bool) string {
	if !quoted && !needsQuotes(s) {
		return s
	}

	if strings.ContainsRune(s, '"') {
		return "'" + s + "'"
	}

	return `"` + s + `"`
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}

	for _, r := range s {
		if isDelimiter(r) || r == '#' {
			return true
		}
	}

	return strings.Contains(s, "/*")
}
