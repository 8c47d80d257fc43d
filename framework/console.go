package framework

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// PrintFilterDescription explains any active test filters to the user before
// the run starts.
func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if desc := filters.Describe(); desc != "" {
		fmt.Fprintf(w, "Test filters: %s\n", desc)
	}
}

// PrintResults writes the end-of-run summary: counts, and each failed test
// with its errors.
func PrintResults(w io.Writer, results Results) {
	executed := 0
	skipped := 0
	for _, t := range results.Tests {
		if len(t.TestID.Path) == 0 {
			continue // root context, not a test of its own
		}
		if t.Skipped {
			skipped++
		} else {
			executed++
		}
	}

	if results.OK() {
		passColor.Fprintf(w, "All tests passed (%d run, %d skipped)\n", executed, skipped)
		return
	}

	failColor.Fprintf(w, "FAILED TESTS (%d/%d):\n", len(results.Failures), executed)
	for _, f := range results.Failures {
		fmt.Fprintf(w, "* %s (%dms)\n", f.TestID, f.Duration.Milliseconds())
		for _, err := range f.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
	}
}
