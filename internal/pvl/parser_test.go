package pvl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeLabel = `
Object = IsisCube
  Object = Core
    Group = Dimensions
      Samples = 1024
      Lines   = 2048
      Bands   = 1
    End_Group
  End_Object

  /* Instrument settings */
  Group = Instrument
    SpacecraftName   = "MARS RECONNAISSANCE ORBITER"
    ExposureDuration = 1.5 <ms>
    FilterName       = (RED, "BLUE GREEN")
    CenterWavelength = (700.0 <nm>, 500.0 <nm>)
    Offsets          = (1, 2, 3) <pixels>
  End_Group
End_Object

# trailing comment
Group = Kernels
  NaifFrameCode = -74021
End_Group
End
`

func TestParse(t *testing.T) {
	doc, err := ParseString(cubeLabel)
	require.NoError(t, err)

	cube, ok := doc.Child("IsisCube")
	require.True(t, ok)
	assert.Equal(t, KindObject, cube.Kind)

	inst, ok := cube.Child("instrument")
	require.True(t, ok, "child lookup is case-insensitive")
	assert.Equal(t, KindGroup, inst.Kind)
	assert.Same(t, cube, inst.Parent())

	kw, ok := inst.FindKeyword("SpacecraftName")
	require.True(t, ok)
	assert.Equal(t, "MARS RECONNAISSANCE ORBITER", kw.First())
	assert.True(t, kw.Values[0].Quoted)

	kw, _ = inst.FindKeyword("ExposureDuration")
	assert.Equal(t, []Value{{Text: "1.5", Unit: "ms"}}, kw.Values)

	kw, _ = inst.FindKeyword("FilterName")
	assert.Equal(t, []string{"RED", "BLUE GREEN"}, kw.Texts())

	kw, _ = inst.FindKeyword("CenterWavelength")
	assert.Equal(t, "nm", kw.Values[1].Unit)

	kw, _ = inst.FindKeyword("Offsets")
	for _, v := range kw.Values {
		assert.Equal(t, "pixels", v.Unit, "list unit applies to every element")
	}

	kernels, ok := doc.Child("Kernels")
	require.True(t, ok)
	kw, _ = kernels.FindKeyword("NaifFrameCode")
	assert.Equal(t, "-74021", kw.First())
}

func TestParseValuelessAndRepeatedKeywords(t *testing.T) {
	doc, err := ParseString(`
Group = InstrumentId
  Auto
  Optional
  InputPosition = (IsisCube, Instrument)
  InputPosition = (Instrument)
  Translation   = (*, *)
End_Group
End`)
	require.NoError(t, err)

	g, ok := doc.Child("InstrumentId")
	require.True(t, ok)

	auto, ok := g.FindKeyword("Auto")
	require.True(t, ok)
	assert.Empty(t, auto.Values)
	assert.True(t, g.HasKeyword("Optional"))

	positions := g.KeywordsNamed("InputPosition")
	require.Len(t, positions, 2)
	assert.Equal(t, []string{"IsisCube", "Instrument"}, positions[0].Texts())
	assert.Equal(t, []string{"Instrument"}, positions[1].Texts())

	tr, _ := g.FindKeyword("Translation")
	assert.Equal(t, []string{"*", "*"}, tr.Texts())
}

func TestParseSpecificationStrings(t *testing.T) {
	doc, err := ParseString(`
InputKeyDependencies = ("att@type|B", "tag@name|cas:focal_length")
OutputName = att@xmlns:cas
`)
	require.NoError(t, err)

	kw, _ := doc.FindKeyword("InputKeyDependencies")
	assert.Equal(t, []string{"att@type|B", "tag@name|cas:focal_length"}, kw.Texts())

	kw, _ = doc.FindKeyword("OutputName")
	assert.Equal(t, "att@xmlns:cas", kw.First())
}

func TestParseContinuationAndMultilineString(t *testing.T) {
	doc, err := ParseString("Note = \"first line\n    second line\"\nPath = /usgs/cpkgs/-\n  isis3/data\n")
	require.NoError(t, err)

	kw, _ := doc.FindKeyword("Note")
	assert.Equal(t, "first line second line", kw.First())

	kw, _ = doc.FindKeyword("Path")
	assert.Equal(t, "/usgs/cpkgs/isis3/data", kw.First())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"unterminated object", "Object = A\n  B = 1\n", 3},
		{"mismatched end", "Object = A\nEnd_Group\n", 2},
		{"missing value", "A =\n", 2},
		{"unterminated string", "A = \"abc\n", 1},
		{"bad list", "A = (1 2)\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.text)
			require.Error(t, err)

			var syn *SyntaxError
			require.ErrorAs(t, err, &syn)
			assert.Equal(t, tt.line, syn.Line)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Root", KindRoot.String())
	assert.Equal(t, "Object", KindObject.String())
	assert.Equal(t, "Group", KindGroup.String())

	k, ok := ParseKind(KindGroup.String())
	require.True(t, ok)
	assert.Equal(t, KindGroup, k)
}

func TestParseRecordsBlockLines(t *testing.T) {
	doc, err := ParseString("A = 1\nObject = IsisCube\n  Group = Instrument\n    B = 2\n  End_Group\nEnd_Object\nEnd\n")
	require.NoError(t, err)

	cube, ok := doc.Child("IsisCube")
	require.True(t, ok)
	assert.Equal(t, 2, cube.Line)

	inst, ok := cube.Child("Instrument")
	require.True(t, ok)
	assert.Equal(t, 3, inst.Line)
	assert.Equal(t, 0, NewDocument().Line)
}
