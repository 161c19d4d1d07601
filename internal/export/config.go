package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultOrder is the required order of the top-level PDS4 areas.
var DefaultOrder = []string{
	"Identification_Area",
	"Observation_Area",
	"Reference_List",
	"File_Area_Observational",
}

// DefaultRoot is the PDS4 product element.
const DefaultRoot = "Product_Observational"

// DefaultNamespace is the PDS4 common namespace.
const DefaultNamespace = "http://pds.nasa.gov/pds4/pds/v1"

// Stage is one named translation of an export.
type Stage struct {
	Name string `yaml:"name"`
	// Table is the translation table path, relative to the config file.
	Table string `yaml:"table"`
	// Message replaces the default "Unable to translate and export <name>".
	Message string `yaml:"message,omitempty"`
}

// ErrorMessage returns the message wrapping a failure of the stage.
func (s Stage) ErrorMessage() string {
	if s.Message != "" {
		return s.Message
	}

	return "Unable to translate and export " + s.Name
}

// PixelConfig selects the stored pixel format.
type PixelConfig struct {
	Type   string `yaml:"type,omitempty"`
	Endian string `yaml:"endian,omitempty"`
}

// Config is an export pipeline definition.
type Config struct {
	Stages []Stage `yaml:"stages"`
	// Units is the unit config path; empty skips unit normalization.
	Units string `yaml:"units,omitempty"`
	// Order lists the top-level PDS4 areas in output order.
	Order []string `yaml:"order,omitempty"`
	// Root is the PDS4 product element name.
	Root string `yaml:"root,omitempty"`
	// Namespaces maps prefixes to URIs declared on the root element.
	Namespaces     map[string]string `yaml:"namespaces,omitempty"`
	SchemaLocation string            `yaml:"schema_location,omitempty"`
	Pixel          PixelConfig       `yaml:"pixel,omitempty"`
	// CaseInsensitiveMatch folds case in translation pair matching.
	CaseInsensitiveMatch bool `yaml:"case_insensitive_match,omitempty"`

	baseDir string
}

// ParseConfig parses a YAML export config. Relative paths resolve
// against baseDir.
func ParseConfig(data []byte, baseDir string) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse export config: %w", err)
	}

	cfg.baseDir = baseDir

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfig reads a YAML export config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("export config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("export config has no stages")
	}

	seen := make(map[string]bool, len(c.Stages))

	for i, s := range c.Stages {
		if s.Name == "" {
			return fmt.Errorf("stage %d has no name", i+1)
		}

		if s.Table == "" {
			return fmt.Errorf("stage %s has no table", s.Name)
		}

		if seen[s.Name] {
			return fmt.Errorf("stage %s is listed twice", s.Name)
		}

		seen[s.Name] = true
	}

	if _, err := ParsePixelType(c.pixelTypeName()); err != nil {
		return err
	}

	if _, err := ParseEndian(c.Pixel.Endian); err != nil {
		return err
	}

	return nil
}

func (c *Config) pixelTypeName() string {
	if c.Pixel.Type == "" {
		return Real.String()
	}

	return c.Pixel.Type
}

// Resolve returns path relative to the config file.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}

	return filepath.Join(c.baseDir, path)
}

// RootName returns Root or DefaultRoot.
func (c *Config) RootName() string {
	if c.Root != "" {
		return c.Root
	}

	return DefaultRoot
}

// AreaOrder returns Order or DefaultOrder.
func (c *Config) AreaOrder() []string {
	if len(c.Order) > 0 {
		return c.Order
	}

	return DefaultOrder
}

// NamespacePrefixes returns the declared prefixes sorted.
func (c *Config) NamespacePrefixes() []string {
	out := make([]string, 0, len(c.Namespaces))
	for p := range c.Namespaces {
		out = append(out, p)
	}

	sort.Strings(out)

	return out
}

// PixelSettings combines the configured format with the cube's range.
func (c *Config) PixelSettings(cube Cube) (PixelSettings, error) {
	t, err := ParsePixelType(c.pixelTypeName())
	if err != nil {
		return PixelSettings{}, err
	}

	e, err := ParseEndian(c.Pixel.Endian)
	if err != nil {
		return PixelSettings{}, err
	}

	lo, hi := cube.Statistics()

	return PixelSettings{Type: t, Endian: e, Min: lo, Max: hi}, nil
}
