package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/internal/output"
	"github.com/dshills/veil/internal/rules"
)

var (
	flagRules  string
	flagIn     string
	flagOut    string
	flagIndent bool
)

var redactCmd = &cobra.Command{
	Use:   "redact",
	Short: "Redact a JSON document according to a rules file",
	Long: `Redact reads a JSON document, applies the redaction rules from the
rules file, and writes the redacted document as JSON.

The rules file maps dot-separated document paths to classifications.
Input comes from --in or stdin; output goes to --out or stdout.`,
	Run: runRedact,
}

func init() {
	redactCmd.Flags().StringVar(&flagRules, "rules", "", "path to the YAML rules file (required)")
	redactCmd.Flags().StringVar(&flagIn, "in", "", "input JSON file (default stdin)")
	redactCmd.Flags().StringVar(&flagOut, "out", "", "output file (default stdout)")
	redactCmd.Flags().BoolVar(&flagIndent, "indent", false, "indent JSON output")
}

func runRedact(cmd *cobra.Command, args []string) {
	logger := newLogger()

	if flagRules == "" {
		fmt.Fprintln(os.Stderr, "Error: --rules is required")
		exitCode = ExitUsageError
		return
	}

	f, err := rules.Load(flagRules)
	if err != nil {
		logger.Error("loading rules", "err", err)
		exitCode = ExitUsageError
		return
	}

	reg := classification.NewRegistry()
	compiled, err := rules.Compile(f, reg)
	if err != nil {
		logger.Error("compiling rules", "err", err)
		exitCode = ExitUsageError
		return
	}
	logger.Debug("rules compiled", "policies", len(f.Policies), "rules", len(compiled))

	doc, err := readDocument(flagIn)
	if err != nil {
		logger.Error("reading input", "err", err)
		exitCode = ExitRuntimeError
		return
	}

	redacted := rules.Apply(doc, compiled)

	if err := output.WriteDoc(redacted, "json", flagOut, flagIndent); err != nil {
		logger.Error("writing output", "err", err)
		exitCode = ExitRuntimeError
		return
	}
}

// readDocument decodes a JSON document from path, or stdin when path is
// empty.
func readDocument(path string) (any, error) {
	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON document: %w", err)
	}
	return doc, nil
}
