package output

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-translator/internal/logger"
	"label-translator/internal/mapping"
	"label-translator/internal/pvl"
	"label-translator/internal/resolve"
	"label-translator/internal/source"
)

func resolver(t *testing.T, tableText string, src source.Source) *resolve.Resolver {
	t.Helper()

	tbl, err := mapping.ParsePVL([]byte(tableText))
	require.NoError(t, err)

	return resolve.NewResolver(tbl, src)
}

func pvlSource(t *testing.T, text string) source.Source {
	t.Helper()

	src, err := source.ParsePVL([]byte(text))
	require.NoError(t, err)

	return src
}

const cubeLabel = `
Object = IsisCube
  Group = Instrument
    InstrumentId = HIRISE
    Radii        = (3396.19 <km>, 3376200 <m>)
  End_Group
End_Object
End
`

func TestFlatAuto(t *testing.T) {
	r := resolver(t, `
Group = INSTRUMENT_ID
  Auto
  InputPosition  = (IsisCube, Instrument)
  InputKey       = InstrumentId
  OutputPosition = (Object, IMAGE_MAP_PROJECTION)
  Translation    = (*, *)
End_Group

Group = RADII
  Auto
  InputPosition  = (IsisCube, Instrument)
  InputKey       = Radii
  OutputPosition = ROOT
  Translation    = (*, *)
End_Group

Group = Manual
  InputPosition = (IsisCube, Instrument)
  InputKey      = InstrumentId
  Translation   = (*, *)
End_Group
End
`, pvlSource(t, cubeLabel))

	root := pvl.NewDocument()
	require.NoError(t, NewFlatBuilder(r, nil).Auto(root))

	img, ok := root.Child("IMAGE_MAP_PROJECTION")
	require.True(t, ok)
	assert.Equal(t, pvl.KindObject, img.Kind)
	assert.Equal(t, "HIRISE", img.Keywords[0].First())

	radii, ok := root.FindKeyword("RADII")
	require.True(t, ok)
	assert.Equal(t, []pvl.Value{{Text: "3396.19", Unit: "km"}, {Text: "3376200", Unit: "m"}}, radii.Values)

	assert.False(t, root.HasKeyword("Manual"), "manual groups are not part of the Auto pass")

	kw, err := NewFlatBuilder(r, nil).Keyword("Manual")
	require.NoError(t, err)
	assert.Equal(t, "HIRISE", kw.First())
}

func TestFlatAutoReplacesKeyword(t *testing.T) {
	r := resolver(t, `
Group = TARGET
  Auto
  InputDefault = MARS
  Translation  = (*, *)
End_Group
`, pvlSource(t, ""))

	root := pvl.NewDocument()
	root.AddKeyword(pvl.NewKeyword("TARGET", "UNK"))

	require.NoError(t, NewFlatBuilder(r, nil).Auto(root))
	require.Len(t, root.Keywords, 1)
	assert.Equal(t, "MARS", root.Keywords[0].First())
}

func TestFlatOptional(t *testing.T) {
	text := `
Group = Foo
  Auto
  %s
  InputPosition = (Instrument)
  InputKey = Missing
  Translation = (*, *)
End_Group

Group = Bar
  Auto
  InputPosition = (Instrument)
  InputKey = Bar
  Translation = (*, *)
End_Group
`
	src := pvlSource(t, "Group = Instrument\n Bar = 1\nEnd_Group\n")

	t.Run("optional is skipped", func(t *testing.T) {
		log := &logger.MemoryLogger{}
		r := resolver(t, fmt.Sprintf(text, "Optional"), src)

		root := pvl.NewDocument()
		require.NoError(t, NewFlatBuilder(r, log).Auto(root))
		assert.False(t, root.HasKeyword("Foo"))
		assert.True(t, root.HasKeyword("Bar"))
		assert.Len(t, log.Logs(), 1)
	})

	t.Run("required aborts", func(t *testing.T) {
		r := resolver(t, fmt.Sprintf(text, ""), src)

		err := NewFlatBuilder(r, nil).Auto(pvl.NewDocument())
		require.ErrorIs(t, err, resolve.ErrMissingInputKeyword)
	})
}

func TestFlatContainer(t *testing.T) {
	tests := []struct {
		name     string
		position []string
		want     []string
		kinds    []pvl.Kind
	}{
		{"root", []string{"ROOT"}, nil, nil},
		{"empty", nil, nil, nil},
		{"pairs", []string{"Object", "IsisCube", "Group", "Instrument"}, []string{"IsisCube", "Instrument"}, []pvl.Kind{pvl.KindObject, pvl.KindGroup}},
		{"plain names", []string{"IsisCube", "Instrument"}, []string{"IsisCube", "Instrument"}, []pvl.Kind{pvl.KindObject, pvl.KindGroup}},
		{"single group", []string{"Mapping"}, []string{"Mapping"}, []pvl.Kind{pvl.KindGroup}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := pvl.NewDocument()
			c := FlatContainer(root, tt.position)

			var names []string
			var kinds []pvl.Kind

			for o := c; o != root; o = o.Parent() {
				names = append([]string{o.Name}, names...)
				kinds = append([]pvl.Kind{o.Kind}, kinds...)
			}

			assert.Equal(t, tt.want, names)
			assert.Equal(t, tt.kinds, kinds)
		})
	}

	root := pvl.NewDocument()
	a := FlatContainer(root, []string{"Object", "IsisCube", "Group", "BandBin"})
	b := FlatContainer(root, []string{"Object", "IsisCube", "Group", "BandBin"})
	c := FlatContainer(root, []string{"Object", "IsisCube", "Group", "new@BandBin"})

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Len(t, root.Children, 1)
	assert.Len(t, root.Children[0].ChildrenNamed("BandBin"), 2)
}
