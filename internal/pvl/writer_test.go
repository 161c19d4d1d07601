package pvl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	doc := NewDocument()
	img := doc.AddChild(KindObject, "IMAGE")
	img.AddKeyword(NewKeyword("LINES", "2048"))
	img.AddKeyword(&Keyword{Name: "SCALING_FACTOR", Values: []Value{{Text: "0.5"}}})
	img.AddKeyword(&Keyword{Name: "EXPOSURE", Values: []Value{{Text: "1.5", Unit: "ms"}}})

	grp := img.AddChild(KindGroup, "Bands")
	grp.AddKeyword(&Keyword{Name: "Center", Values: []Value{{Text: "700", Unit: "nm"}, {Text: "500", Unit: "nm"}}})
	grp.AddKeyword(&Keyword{Name: "Name", Values: []Value{{Text: "RED"}, {Text: "BLUE GREEN"}}})
	grp.AddKeyword(&Keyword{Name: "Auto"})

	want := `Object = IMAGE
  LINES          = 2048
  SCALING_FACTOR = 0.5
  EXPOSURE       = 1.5 <ms>

  Group = Bands
    Center = (700, 500) <nm>
    Name   = (RED, "BLUE GREEN")
    Auto
  End_Group
End_Object
End
`
	assert.Equal(t, want, string(Format(doc)))
}

func TestFormatRoundTrip(t *testing.T) {
	doc, err := ParseString(cubeLabel)
	require.NoError(t, err)

	again, err := Parse(Format(doc))
	require.NoError(t, err)

	assert.Equal(t, doc.String(), again.String())
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "", FormatValues(nil))
	assert.Equal(t, `""`, FormatValues([]Value{{Text: ""}}))
	assert.Equal(t, `(1 <m>, 2 <km>)`, FormatValues([]Value{{Text: "1", Unit: "m"}, {Text: "2", Unit: "km"}}))
	assert.Equal(t, `'say "hi"'`, FormatValues([]Value{{Text: `say "hi"`}}))
}

func TestFindOrAddChildAndSetKeyword(t *testing.T) {
	doc := NewDocument()
	a := doc.FindOrAddChild(KindObject, "A")
	assert.Same(t, a, doc.FindOrAddChild(KindObject, "a"))

	a.SetKeyword(NewKeyword("K", "1"))
	a.SetKeyword(NewKeyword("k", "2"))
	require.Len(t, a.Keywords, 1)
	assert.Equal(t, "2", a.Keywords[0].First())

	var names []string
	doc.Walk(func(o *Object) bool {
		names = append(names, o.Name)
		return true
	})
	assert.Equal(t, []string{"", "A"}, names)
}
