package units

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"label-translator/internal/mapping"
	"label-translator/internal/pvl"
)

// Unit config keywords.
const (
	KeyPDS4Unit = "PDS4_Unit"
	KeyISISUnit = "ISIS_Units"
)

// ErrConfig reports a malformed unit config.
var ErrConfig = errors.New("invalid unit config")

// Map is an insertion-ordered lookup from lowercased unit spelling to
// canonical unit. It is read-only once built.
type Map struct {
	keys      []string
	canonical map[string]string
}

func newMap() *Map {
	return &Map{canonical: make(map[string]string)}
}

func fold(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// add maps spelling to canonical. The first definition of a spelling wins.
func (m *Map) add(spelling, canonical string) {
	key := fold(spelling)
	if key == "" {
		return
	}

	if _, exists := m.canonical[key]; exists {
		return
	}

	m.keys = append(m.keys, key)
	m.canonical[key] = canonical
}

// define adds a canonical unit and its aliases.
func (m *Map) define(canonical string, aliases []string) {
	canonical = strings.TrimSpace(canonical)

	m.add(canonical, canonical)

	for _, a := range aliases {
		m.add(a, canonical)
	}
}

// Lookup returns the canonical spelling of unit, ignoring case.
func (m *Map) Lookup(unit string) (string, bool) {
	c, ok := m.canonical[fold(unit)]
	return c, ok
}

// Len returns the number of known spellings.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the known lowercased spellings in definition order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// BuildMap builds a Map from a PVL unit config. Every group must carry
// PDS4_Unit; ISIS_Units is optional and may hold several aliases.
func BuildMap(cfg *pvl.Object) (*Map, error) {
	m := newMap()

	var err error

	cfg.Walk(func(o *pvl.Object) bool {
		if err != nil || o.Kind != pvl.KindGroup {
			return err == nil
		}

		unit, ok := o.FindKeyword(KeyPDS4Unit)
		if !ok || unit.First() == "" {
			err = fmt.Errorf("%w: group %s has no %s", ErrConfig, o.Name, KeyPDS4Unit)
			return false
		}

		var aliases []string
		for _, kw := range o.KeywordsNamed(KeyISISUnit) {
			aliases = append(aliases, kw.Texts()...)
		}

		m.define(unit.First(), aliases)

		return true
	})

	if err != nil {
		return nil, err
	}

	return m, nil
}

type yamlConfig struct {
	Units []yamlUnit `yaml:"units"`
}

type yamlUnit struct {
	PDS4Unit  string                `yaml:"pds4_unit"`
	ISISUnits mapping.StringOrArray `yaml:"isis_units"`
}

// ParseYAML builds a Map from a YAML unit config.
func ParseYAML(data []byte) (*Map, error) {
	var cfg yamlConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	m := newMap()

	for i, u := range cfg.Units {
		if strings.TrimSpace(u.PDS4Unit) == "" {
			return nil, fmt.Errorf("%w: entry %d has no pds4_unit", ErrConfig, i+1)
		}

		m.define(u.PDS4Unit, u.ISISUnits)
	}

	return m, nil
}

// LoadFile reads a unit config, YAML for ".yaml"/".yml" and PVL otherwise.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit config %s: %w", path, err)
	}

	var m *Map

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = ParseYAML(data)
	default:
		var cfg *pvl.Object

		cfg, err = pvl.Parse(data)
		if err == nil {
			m, err = BuildMap(cfg)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("unit config %s: %w", path, err)
	}

	return m, nil
}
