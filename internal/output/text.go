package output

import (
	"fmt"
	"io"

	"github.com/dshills/veil/classification"
)

// WritePolicyTable renders the registry's classifications and their
// policies in sorted order.
func WritePolicyTable(w io.Writer, reg *classification.Registry) error {
	classes := reg.Classifications()
	width := 0
	for _, c := range classes {
		if len(c) > width {
			width = len(c)
		}
	}
	for _, c := range classes {
		pol, ok := reg.Resolve(c)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, c, pol); err != nil {
			return fmt.Errorf("writing policy table: %w", err)
		}
	}
	return nil
}
