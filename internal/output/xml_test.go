package output

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-translator/internal/resolve"
)

func xmlDoc(t *testing.T, text string) *etree.Document {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(text))

	return doc
}

func render(t *testing.T, el *etree.Element) string {
	t.Helper()

	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())

	s, err := doc.WriteToString()
	require.NoError(t, err)

	return s
}

func TestXMLAuto(t *testing.T) {
	r := resolver(t, `
Group = instrument_id
  Auto
  InputPosition  = (IsisCube, Instrument)
  InputKey       = InstrumentId
  OutputPosition = (Product_Observational, Observation_Area, Observing_System)
  OutputAttributes = "type|Instrument"
  Translation    = (*, *)
End_Group

Group = radius
  Auto
  InputPosition  = (IsisCube, Instrument)
  InputKey       = Radii
  OutputName     = a_axis_radius
  OutputPosition = (Product_Observational, Observation_Area, Observing_System)
  Translation    = (*, *)
End_Group

Group = observing_type
  Auto
  InputDefault   = Imaging
  OutputName     = att@kind
  OutputPosition = (Product_Observational, Observation_Area)
  OutputSiblings = ("comment|translated", "Observing_System|duplicate")
  Translation    = (*, *)
End_Group
`, pvlSource(t, cubeLabel))

	doc := xmlDoc(t, `<Product_Observational><Identification_Area/></Product_Observational>`)
	require.NoError(t, NewXMLBuilder(r, nil).Auto(doc))

	root := doc.Root()
	assert.Nil(t, root.SelectElement("Product_Observational"), "the root tag is never nested under itself")

	area := root.SelectElement("Observation_Area")
	require.NotNil(t, area)
	assert.Equal(t, "Imaging", area.SelectAttrValue("kind", ""))

	sys := area.SelectElements("Observing_System")
	require.Len(t, sys, 1, "siblings are not added when one of that name exists")

	id := sys[0].SelectElement("instrument_id")
	require.NotNil(t, id)
	assert.Equal(t, "HIRISE", id.Text())
	assert.Equal(t, "Instrument", id.SelectAttrValue("type", ""))

	radius := sys[0].SelectElement("a_axis_radius")
	require.NotNil(t, radius)
	assert.Equal(t, "3396.19", radius.Text())
	assert.Equal(t, "km", radius.SelectAttrValue("unit", ""))

	comment := area.SelectElement("comment")
	require.NotNil(t, comment)
	assert.Equal(t, "translated", comment.Text())
}

func TestXMLNewBins(t *testing.T) {
	r := resolver(t, `
Group = center
  Auto
  InputDefault   = 700
  OutputPosition = (Product_Observational, Band_Bin_Set, new@Band_Bin)
  Translation    = (*, *)
End_Group

Group = width
  Auto
  InputDefault   = 20
  OutputPosition = (Product_Observational, Band_Bin_Set, new@Band_Bin)
  Translation    = (*, *)
End_Group
`, pvlSource(t, ""))

	doc := etree.NewDocument()
	require.NoError(t, NewXMLBuilder(r, nil).Auto(doc))

	require.NotNil(t, doc.Root())
	assert.Equal(t, "Product_Observational", doc.Root().Tag)

	bins := doc.Root().SelectElement("Band_Bin_Set").SelectElements("Band_Bin")
	require.Len(t, bins, 2)
	assert.Equal(t, "700", bins[0].SelectElement("center").Text())
	assert.Equal(t, "20", bins[1].SelectElement("width").Text())
	assert.Nil(t, bins[0].SelectElement("width"))
}

func TestXMLOptional(t *testing.T) {
	text := `
Group = Foo
  Auto
  %s
  InputPosition  = (Instrument)
  InputKey       = Missing
  OutputPosition = (Product)
  OutputSiblings = "marker|set"
  Translation    = (*, *)
End_Group

Group = Bar
  Auto
  InputPosition  = (Instrument)
  InputKey       = Bar
  OutputPosition = (Product)
  Translation    = (*, *)
End_Group
`
	src := pvlSource(t, "Group = Instrument\n Bar = 1\nEnd_Group\n")

	t.Run("scenario E: optional group is absent", func(t *testing.T) {
		r := resolver(t, strings.Replace(text, "%s", "Optional", 1), src)

		doc := xmlDoc(t, "<Product/>")
		require.NoError(t, NewXMLBuilder(r, nil).Auto(doc))

		assert.Nil(t, doc.Root().SelectElement("Foo"))
		assert.Nil(t, doc.Root().SelectElement("marker"), "no siblings from a failed group")
		assert.NotNil(t, doc.Root().SelectElement("Bar"))
	})

	t.Run("scenario F: required group aborts", func(t *testing.T) {
		r := resolver(t, strings.Replace(text, "%s", "", 1), src)

		doc := xmlDoc(t, "<Product/>")
		err := NewXMLBuilder(r, nil).Auto(doc)
		require.ErrorIs(t, err, resolve.ErrMissingInputKeyword)
		assert.Contains(t, err.Error(), "Foo")
		assert.Nil(t, doc.Root().SelectElement("Bar"), "the pass stops at the failing group")
	})

	t.Run("unmappable value is fatal even when optional", func(t *testing.T) {
		r := resolver(t, `
Group = Foo
  Auto
  Optional
  InputPosition = (Instrument)
  InputKey = Bar
  Translation = (one, 2)
End_Group
`, src)

		err := NewXMLBuilder(r, nil).Auto(xmlDoc(t, "<Product/>"))
		require.ErrorIs(t, err, resolve.ErrNoMatchingTranslationPair)
	})
}

func TestXMLContainer(t *testing.T) {
	doc := xmlDoc(t, "<Root><A><B/></A></Root>")

	b, err := XMLContainer(doc, []string{"Root", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "B", b.Tag)
	assert.Equal(t, "A", b.Parent().Tag)

	again, err := XMLContainer(doc, []string{"A", "B"})
	require.NoError(t, err)
	assert.Same(t, b, again, "the root token is optional")

	fresh, err := XMLContainer(doc, []string{"A", "new@B"})
	require.NoError(t, err)
	assert.NotSame(t, b, fresh)
	assert.Len(t, doc.Root().SelectElement("A").SelectElements("B"), 2)

	deeper, err := XMLContainer(doc, []string{"Root", "Root"})
	require.NoError(t, err)
	assert.Equal(t, "Root", deeper.Parent().Tag, "only the leading token may name the root")

	_, err = XMLContainer(etree.NewDocument(), nil)
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestInsertAfter(t *testing.T) {
	doc := xmlDoc(t, "<Root><A/><B/><C/></Root>")
	root := doc.Root()

	InsertAfter(root.SelectElement("A"), root.SelectElement("C"))

	var tags []string
	for _, el := range root.ChildElements() {
		tags = append(tags, el.Tag)
	}

	assert.Equal(t, []string{"A", "C", "B"}, tags)
	assert.Equal(t, "<Root><A/><C/><B/></Root>", render(t, root))
}

func TestXMLDeterminism(t *testing.T) {
	table := `
Group = instrument_id
  Auto
  InputPosition  = (IsisCube, Instrument)
  InputKey       = InstrumentId
  OutputPosition = (Product, Observing_System)
  Translation    = (*, *)
End_Group
`

	var outputs []string

	for range 3 {
		r := resolver(t, table, pvlSource(t, cubeLabel))
		doc := xmlDoc(t, "<Product/>")
		require.NoError(t, NewXMLBuilder(r, nil).Auto(doc))

		data, err := FormatXML(doc)
		require.NoError(t, err)

		outputs = append(outputs, string(data))
	}

	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[1], outputs[2])
}
