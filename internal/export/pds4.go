package export

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"label-translator/internal/logger"
	"label-translator/internal/output"
	"label-translator/internal/source"
	"label-translator/internal/units"
)

// Pds4Exporter builds PDS4 XML labels.
type Pds4Exporter struct {
	*pipeline
}

// NewPds4Exporter loads every table and the unit config of cfg.
func NewPds4Exporter(cfg *Config, l logger.ILogger) (*Pds4Exporter, error) {
	p, err := newPipeline(cfg, l)
	if err != nil {
		return nil, err
	}

	return &Pds4Exporter{pipeline: p}, nil
}

// Label builds the label of cube. imageFile names the data file the
// label describes.
func (e *Pds4Exporter) Label(cube Cube, imageFile string) (*etree.Document, error) {
	settings, err := e.cfg.PixelSettings(cube)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to choose pixel settings")
	}

	doc := e.newDocument()
	src := source.NewPVL(cube.Label())

	err = e.run(func(s stageTable) error {
		return output.NewXMLBuilder(e.resolver(s, src), e.log).Auto(doc)
	})
	if err != nil {
		return nil, err
	}

	if err := e.fileArea(doc, cube, settings, imageFile); err != nil {
		return nil, errors.Wrap(err, "Unable to translate and export file area")
	}

	Reorder(doc, e.cfg.AreaOrder())

	if e.units != nil {
		if err := units.Translate(doc, e.units); err != nil {
			return nil, errors.Wrap(err, "Unable to translate units")
		}
	}

	return doc, nil
}

// Export builds the label and writes it to path. Nothing is written when
// any step fails.
func (e *Pds4Exporter) Export(cube Cube, imageFile, path string) error {
	doc, err := e.Label(cube, imageFile)
	if err != nil {
		return err
	}

	if err := output.WriteXML(path, doc); err != nil {
		return errors.Wrap(err, "Unable to write PDS4 label")
	}

	e.log.Infof("wrote PDS4 label %s", path)

	return nil
}

func (e *Pds4Exporter) newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement(e.cfg.RootName())
	root.CreateAttr("xmlns", DefaultNamespace)

	for _, prefix := range e.cfg.NamespacePrefixes() {
		root.CreateAttr("xmlns:"+prefix, e.cfg.Namespaces[prefix])
	}

	if e.cfg.SchemaLocation != "" {
		root.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
		root.CreateAttr("xsi:schemaLocation", e.cfg.SchemaLocation)
	}

	return doc
}

// fileArea describes the stored image: file name, array layout and the
// scaling that maps stored values back to the input range.
func (e *Pds4Exporter) fileArea(doc *etree.Document, cube Cube, settings PixelSettings, imageFile string) error {
	multiplier, base, err := settings.Scaling()
	if err != nil {
		return err
	}

	area, err := output.XMLContainer(doc, []string{e.cfg.RootName(), "File_Area_Observational"})
	if err != nil {
		return err
	}

	area.CreateElement("File").CreateElement("file_name").SetText(imageFile)

	img := area.CreateElement("Array_3D_Image")

	offset := img.CreateElement("offset")
	offset.CreateAttr(source.UnitAttribute, "byte")
	offset.SetText("0")

	img.CreateElement("axes").SetText("3")
	img.CreateElement("axis_index_order").SetText("Last Index Fastest")

	elements := img.CreateElement("Element_Array")
	elements.CreateElement("data_type").SetText(settings.Pds4DataType())
	elements.CreateElement("scaling_factor").SetText(formatFloat(multiplier))
	elements.CreateElement("value_offset").SetText(formatFloat(base))

	for i, axis := range []struct {
		name string
		n    int
	}{
		{"Band", cube.Bands()},
		{"Line", cube.Lines()},
		{"Sample", cube.Samples()},
	} {
		a := img.CreateElement("Axis_Array")
		a.CreateElement("axis_name").SetText(axis.name)
		a.CreateElement("elements").SetText(strconv.Itoa(axis.n))
		a.CreateElement("sequence_number").SetText(strconv.Itoa(i + 1))
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
