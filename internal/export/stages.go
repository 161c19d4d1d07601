package export

import (
	"github.com/pkg/errors"

	"label-translator/internal/logger"
	"label-translator/internal/mapping"
	"label-translator/internal/resolve"
	"label-translator/internal/source"
	"label-translator/internal/units"
)

type stageTable struct {
	Stage
	table *mapping.TranslationTable
}

// pipeline holds what both exporters load up front: every table and the
// unit map, so configuration errors surface before any translation.
type pipeline struct {
	cfg    *Config
	log    logger.ILogger
	stages []stageTable
	units  *units.Map
}

func newPipeline(cfg *Config, l logger.ILogger) (*pipeline, error) {
	p := &pipeline{cfg: cfg, log: logger.OrNull(l)}

	for _, s := range cfg.Stages {
		tbl, err := mapping.LoadFile(cfg.Resolve(s.Table))
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to load translation table for stage %s", s.Name)
		}

		for _, w := range tbl.Diagnostics().Warnings {
			p.log.Infof("%s: %s", s.Name, w.String())
		}

		p.stages = append(p.stages, stageTable{Stage: s, table: tbl})
	}

	if cfg.Units != "" {
		m, err := units.LoadFile(cfg.Resolve(cfg.Units))
		if err != nil {
			return nil, errors.Wrap(err, "Unable to load unit config")
		}

		p.units = m
	}

	return p, nil
}

func (p *pipeline) resolver(s stageTable, src source.Source) *resolve.Resolver {
	return resolve.NewResolver(s.table, src,
		resolve.WithLogger(p.log),
		resolve.WithCaseInsensitiveMatch(p.cfg.CaseInsensitiveMatch))
}

// run calls fn for every stage in order and wraps the first failure with
// the stage message.
func (p *pipeline) run(fn func(stageTable) error) error {
	for _, s := range p.stages {
		p.log.Debugf("running export stage %s", s.Name)

		if err := fn(s); err != nil {
			return errors.Wrap(err, s.ErrorMessage())
		}
	}

	return nil
}
