package export

import (
	"strconv"

	"github.com/pkg/errors"

	"label-translator/internal/logger"
	"label-translator/internal/output"
	"label-translator/internal/pvl"
	"label-translator/internal/source"
)

// Pds3ImageObject is the object describing the stored image.
const Pds3ImageObject = "IMAGE"

// Pds3Exporter builds flat PDS3 labels.
type Pds3Exporter struct {
	*pipeline
}

// NewPds3Exporter loads every table of cfg. The unit config does not
// apply to flat labels and is ignored.
func NewPds3Exporter(cfg *Config, l logger.ILogger) (*Pds3Exporter, error) {
	p, err := newPipeline(cfg, l)
	if err != nil {
		return nil, err
	}

	return &Pds3Exporter{pipeline: p}, nil
}

// Label builds the label of cube.
func (e *Pds3Exporter) Label(cube Cube) (*pvl.Object, error) {
	settings, err := e.cfg.PixelSettings(cube)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to choose pixel settings")
	}

	label := pvl.NewDocument()
	src := source.NewPVL(cube.Label())

	err = e.run(func(s stageTable) error {
		return output.NewFlatBuilder(e.resolver(s, src), e.log).Auto(label)
	})
	if err != nil {
		return nil, err
	}

	if err := imageObject(label, cube, settings); err != nil {
		return nil, errors.Wrap(err, "Unable to translate and export image information")
	}

	return label, nil
}

// Export builds the label and writes it to path.
func (e *Pds3Exporter) Export(cube Cube, path string) error {
	label, err := e.Label(cube)
	if err != nil {
		return err
	}

	if err := output.WritePVL(path, label); err != nil {
		return errors.Wrap(err, "Unable to write PDS3 label")
	}

	e.log.Infof("wrote PDS3 label %s", path)

	return nil
}

func imageObject(label *pvl.Object, cube Cube, settings PixelSettings) error {
	multiplier, base, err := settings.Scaling()
	if err != nil {
		return err
	}

	img := label.FindOrAddChild(pvl.KindObject, Pds3ImageObject)

	for _, kw := range []*pvl.Keyword{
		pvl.NewKeyword("LINES", strconv.Itoa(cube.Lines())),
		pvl.NewKeyword("LINE_SAMPLES", strconv.Itoa(cube.Samples())),
		pvl.NewKeyword("BANDS", strconv.Itoa(cube.Bands())),
		pvl.NewKeyword("SAMPLE_TYPE", settings.Pds3SampleType()),
		pvl.NewKeyword("SAMPLE_BITS", strconv.Itoa(settings.Type.Bits())),
		pvl.NewKeyword("SCALING_FACTOR", formatFloat(multiplier)),
		pvl.NewKeyword("OFFSET", formatFloat(base)),
	} {
		img.SetKeyword(kw)
	}

	return nil
}
