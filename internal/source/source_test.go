package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeLabel = `
Object = IsisCube
  Group = Instrument
    SpacecraftName = "MARS RECONNAISSANCE ORBITER"
    InstrumentId   = HIRISE
    Radii          = (3396.19, 3376.2) <km>
  End_Group

  Group = BandBin
    Center = 700 <nm>
  End_Group

  Group = BandBin
    Center = 900 <nm>
  End_Group
End_Object
End
`

func names(cs []Container) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name()
	}

	return out
}

func TestPVLLocate(t *testing.T) {
	src, err := ParsePVL([]byte(cubeLabel))
	require.NoError(t, err)

	assert.Equal(t, KindPVL, src.Kind())
	assert.True(t, src.MultiValued())

	tests := []struct {
		name string
		path []string
		want []string
	}{
		{"root", []string{"ROOT"}, []string{""}},
		{"empty path is root", nil, []string{""}},
		{"object", []string{"IsisCube"}, []string{"IsisCube"}},
		{"nested group", []string{"IsisCube", "Instrument"}, []string{"Instrument"}},
		{"case-insensitive", []string{"isiscube", "INSTRUMENT"}, []string{"Instrument"}},
		{"cousins", []string{"IsisCube", "BandBin"}, []string{"BandBin", "BandBin"}},
		{"missing", []string{"IsisCube", "Kernels"}, []string{}},
		{"missing parent", []string{"Nope", "Instrument"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(src.Locate(tt.path)))
		})
	}
}

func TestPVLEntries(t *testing.T) {
	src, err := ParsePVL([]byte(cubeLabel))
	require.NoError(t, err)

	inst := src.Locate([]string{"IsisCube", "Instrument"})
	require.Len(t, inst, 1)

	entries := inst[0].Entries("radii")
	require.Len(t, entries, 1)
	assert.Equal(t, "Radii", entries[0].Name())
	assert.Equal(t, []Value{{Text: "3396.19", Unit: "km"}, {Text: "3376.2", Unit: "km"}}, entries[0].Values())

	_, ok := entries[0].Attribute("unit")
	assert.False(t, ok)

	assert.Empty(t, inst[0].Entries("Missing"))

	bands := src.Locate([]string{"IsisCube", "BandBin"})
	require.Len(t, bands, 2)
	assert.Equal(t, "900", bands[1].Entries("Center")[0].Values()[0].Text)
}

const productXML = `<?xml version="1.0" encoding="UTF-8"?>
<Product_Observational xmlns:cas="http://pds.nasa.gov/pds4/mission/cas/v1">
  <Observation_Area>
    <Parent>
      <Item type="A">1</Item>
      <Item type="B">2</Item>
      <Label>first</Label>
    </Parent>
    <Parent>
      <Item type="C" unit="km">3</Item>
    </Parent>
    <cas:CASSIS>
      <cas:focal_length unit="mm">880</cas:focal_length>
    </cas:CASSIS>
  </Observation_Area>
</Product_Observational>
`

func TestXMLLocate(t *testing.T) {
	src, err := ParseXML([]byte(productXML))
	require.NoError(t, err)

	assert.Equal(t, KindXML, src.Kind())
	assert.False(t, src.MultiValued())

	tests := []struct {
		name string
		path []string
		want []string
	}{
		{"root", []string{"ROOT"}, []string{"Product_Observational"}},
		{"root tag consumed", []string{"Product_Observational", "Observation_Area"}, []string{"Observation_Area"}},
		{"without root tag", []string{"Observation_Area", "Parent"}, []string{"Parent", "Parent"}},
		{"prefixed", []string{"Observation_Area", "cas:CASSIS"}, []string{"cas:CASSIS"}},
		{"bare name matches any namespace", []string{"Observation_Area", "CASSIS"}, []string{"cas:CASSIS"}},
		{"missing", []string{"Observation_Area", "Nope"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(src.Locate(tt.path)))
		})
	}
}

func TestXMLEntries(t *testing.T) {
	src, err := ParseXML([]byte(productXML))
	require.NoError(t, err)

	parents := src.Locate([]string{"Observation_Area", "Parent"})
	require.Len(t, parents, 2)

	items := parents[0].Entries("Item")
	require.Len(t, items, 2)

	typ, ok := items[1].Attribute("type")
	require.True(t, ok)
	assert.Equal(t, "B", typ)
	assert.Equal(t, []Value{{Text: "2"}}, items[1].Values())

	_, ok = items[1].Attribute("missing")
	assert.False(t, ok)

	assert.Equal(t, []Value{{Text: "3", Unit: "km"}}, parents[1].Entries("Item")[0].Values())

	cassis := src.Locate([]string{"Observation_Area", "cas:CASSIS"})
	require.Len(t, cassis, 1)
	assert.Equal(t, []Value{{Text: "880", Unit: "mm"}}, cassis[0].Entries("cas:focal_length")[0].Values())
}

func TestParseXMLErrors(t *testing.T) {
	_, err := ParseXML([]byte("<a><b></a>"))
	require.Error(t, err)

	_, err = ParseXML([]byte("   "))
	require.Error(t, err)
}

const productJSON = `{
  "Instrument": {
    "InstrumentId": "HIRISE",
    "Radii": [3396.19, 3376.2],
    "ExposureDuration": {"value": 1.5, "unit": "ms"},
    "Filter": [{"value": "RED", "type": "A"}, {"value": "IR", "type": "B"}]
  },
  "Bands": [{"Center": 700}, {"Center": 900}]
}`

func TestJSONSource(t *testing.T) {
	src, err := ParseJSON([]byte(productJSON))
	require.NoError(t, err)

	assert.Equal(t, KindJSON, src.Kind())
	assert.True(t, src.MultiValued())

	inst := src.Locate([]string{"Instrument"})
	require.Len(t, inst, 1)

	assert.Equal(t, []Value{{Text: "HIRISE"}}, inst[0].Entries("InstrumentId")[0].Values())
	assert.Equal(t, []Value{{Text: "3396.19"}, {Text: "3376.2"}}, inst[0].Entries("Radii")[0].Values())
	assert.Equal(t, []Value{{Text: "1.5", Unit: "ms"}}, inst[0].Entries("ExposureDuration")[0].Values())

	filters := inst[0].Entries("Filter")
	require.Len(t, filters, 2)

	typ, ok := filters[1].Attribute("type")
	require.True(t, ok)
	assert.Equal(t, "B", typ)
	assert.Equal(t, []Value{{Text: "IR"}}, filters[1].Values())

	bands := src.Locate([]string{"Bands"})
	require.Len(t, bands, 2, "arrays of objects are cousins")
	assert.Equal(t, "900", bands[1].Entries("Center")[0].Values()[0].Text)

	assert.Empty(t, src.Locate([]string{"Kernels"}))
	assert.Len(t, src.Locate([]string{"ROOT"}), 1)
}

func TestJSONPathLocate(t *testing.T) {
	src, err := ParseJSON([]byte(productJSON))
	require.NoError(t, err)

	bands := src.Locate([]string{"$.Bands[*]"})
	require.Len(t, bands, 2)
	assert.Equal(t, "700", bands[0].Entries("Center")[0].Values()[0].Text)

	assert.Empty(t, src.Locate([]string{"$.Nope[*]"}))
}

func TestDetectAndLoad(t *testing.T) {
	tests := []struct {
		path string
		data string
		want Kind
	}{
		{"a.xml", "", KindXML},
		{"a.json", "", KindJSON},
		{"a.lbl", "<x/>", KindPVL},
		{"a", "  <x/>", KindXML},
		{"a", "\n{}", KindJSON},
		{"a", "Object = A", KindPVL},
		{"a", "", KindPVL},
	}

	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.data, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.path, []byte(tt.data)))
		})
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "product.xml")
	require.NoError(t, os.WriteFile(p, []byte(productXML), 0o644))

	src, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, KindXML, src.Kind())

	_, err = LoadFile(filepath.Join(dir, "missing.lbl"))
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pvl", KindPVL.String())
	assert.Equal(t, "xml", KindXML.String())
	assert.Equal(t, "json", KindJSON.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
