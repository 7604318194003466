package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/taechang-erp/webtest/pkg/models"
)

// PrintSummary writes a human-readable summary of the run to w
func PrintSummary(w io.Writer, report *models.Report) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Run %s finished in %v\n", report.RunID, report.EndTime.Sub(report.StartTime).Round(10 * time.Millisecond))
	fmt.Fprintf(w, "Base URL: %s\n", report.BaseURL)

	passed := color.GreenString("%d passed", report.Passed)
	failed := fmt.Sprintf("%d failed", report.Failed)
	if report.Failed > 0 {
		failed = color.RedString("%d failed", report.Failed)
	}
	fmt.Fprintf(w, "Pages: %d total, %s, %s\n", report.TotalTests, passed, failed)

	for _, result := range report.Results {
		if result.Passed {
			continue
		}
		fmt.Fprintf(w, "  %s %s (%s): %s\n", color.RedString("✗"), result.PageName, result.URL, result.Error)
		for _, check := range result.Checks {
			fmt.Fprintf(w, "      %s\n", check)
		}
	}
}
