package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"

	"label-translator/internal/pvl"
)

// filePerm is the mode of written labels.
const filePerm = 0o644

// XMLIndent is the indentation used when writing XML labels.
const XMLIndent = 2

// WriteAtomic writes data next to path and renames it into place, so a
// failed write never leaves a truncated file at path.
func WriteAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}

// FormatXML serializes doc with the standard indentation.
func FormatXML(doc *etree.Document) ([]byte, error) {
	doc.Indent(XMLIndent)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializing XML label: %w", err)
	}

	return data, nil
}

// WriteXML writes doc to path.
func WriteXML(path string, doc *etree.Document) error {
	data, err := FormatXML(doc)
	if err != nil {
		return err
	}

	if err := WriteAtomic(path, data); err != nil {
		return fmt.Errorf("writing XML label %s: %w", path, err)
	}

	return nil
}

// WritePVL writes label to path.
func WritePVL(path string, label *pvl.Object) error {
	if err := WriteAtomic(path, pvl.Format(label)); err != nil {
		return fmt.Errorf("writing PVL label %s: %w", path, err)
	}

	return nil
}
