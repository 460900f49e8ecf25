package output

import (
	"fmt"
	"io"
	"os"
)

// Writer writes a redacted document in a specific format.
type Writer interface {
	Write(w io.Writer, doc any) error
}

// ForFormat returns a writer for the named format.
func ForFormat(format string, indent bool) (Writer, error) {
	switch format {
	case "json":
		return &JSONWriter{Indent: indent}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteDoc writes doc to outPath, or stdout when outPath is empty.
func WriteDoc(doc any, format, outPath string, indent bool) error {
	writer, err := ForFormat(format, indent)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, doc)
}
