package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Detect picks the dialect of a label from its extension, falling back to
// the first non-blank byte of its content.
func Detect(path string, data []byte) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return KindXML
	case ".json":
		return KindJSON
	case ".lbl", ".pvl", ".cub", ".trn":
		return KindPVL
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return KindPVL
	}

	switch trimmed[0] {
	case '<':
		return KindXML
	case '{', '[':
		return KindJSON
	default:
		return KindPVL
	}
}

// LoadFile reads and parses a label file.
func LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input label %s: %w", path, err)
	}

	src, err := Parse(Detect(path, data), data)
	if err != nil {
		return nil, fmt.Errorf("input label %s: %w", path, err)
	}

	return src, nil
}

// Parse parses data as the given dialect.
func Parse(kind Kind, data []byte) (Source, error) {
	switch kind {
	case KindXML:
		return ParseXML(data)
	case KindJSON:
		return ParseJSON(data)
	default:
		return ParsePVL(data)
	}
}
