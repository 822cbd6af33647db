package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"

	"github.com/hmezali/iacscan/scanner"
	"github.com/hmezali/iacscan/types"
)

// NotInstalledMessage is printed when the checkov binary is missing from PATH.
const NotInstalledMessage = "Error: Checkov executable not found. Please ensure Checkov is installed and in your PATH."

const licenseWarning = "Warning: License compatibility checks are not yet fully implemented."

// Render writes the outcome of one scan to w. Scan failures are reported on
// the same writer as results, never on a separate error channel: callers
// inspect logs, not the exit status, for diagnostics.
func Render(w io.Writer, res scanner.Result, format types.Format) {
	if res.ExitCode != 0 {
		log.Errorf("checkov analysis failed with exit code %d", res.ExitCode)
		log.Errorf("checkov stdout: %s", res.Stdout)
		log.Errorf("checkov stderr: %s", res.Stderr)
		fmt.Fprintf(w, "Checkov analysis failed. See logs for details. Stdout: %s, Stderr: %s\n", res.Stdout, res.Stderr)
		return
	}

	if format == types.FormatJSON {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(res.Stdout), "", "  "); err != nil {
			// Malformed JSON from the scanner is not fatal; fall back to raw output.
			log.Errorf("error decoding JSON output: %v", err)
			fmt.Fprintln(w, res.Stdout)
			return
		}
		fmt.Fprintln(w, buf.String())
		return
	}

	fmt.Fprintln(w, res.Stdout)
}

// LicenseWarning emits the fixed notice for the unimplemented license check.
func LicenseWarning(w io.Writer) {
	log.Warn("license compatibility checks are not yet fully implemented")
	fmt.Fprintln(w, licenseWarning)
}

// Summary renders a severity breakdown of failed checks.
func Summary(w io.Writer, reports []scanner.Report) {
	counts := scanner.FailedBySeverity(reports)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Severity", "Failed"})

	total := 0
	for i := len(types.Severities) - 1; i >= 0; i-- {
		sev := string(types.Severities[i])
		if n := counts[sev]; n > 0 {
			t.AppendRow(table.Row{sev, n})
			total += n
		}
	}
	if n := counts["UNKNOWN"]; n > 0 {
		t.AppendRow(table.Row{"UNKNOWN", n})
		total += n
	}
	t.AppendFooter(table.Row{"Total", total})
	t.Render()
}
