package output

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// JSONWriter outputs the redacted document as JSON.
type JSONWriter struct {
	Indent bool
}

func (j *JSONWriter) Write(w io.Writer, doc any) error {
	var (
		data []byte
		err  error
	)
	if j.Indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
