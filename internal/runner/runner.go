package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/taechang-erp/webtest/internal/browser"
	"github.com/taechang-erp/webtest/internal/extract"
	"github.com/taechang-erp/webtest/pkg/models"
)

// Runner checks each page of a test plan sequentially against a browser.
// A failure on one page is recorded and the run moves on to the next page.
type Runner struct {
	Browser       browser.Browser
	ScreenshotDir string
	Out           io.Writer
}

// New creates a runner. If out is nil, progress is written to stdout.
func New(b browser.Browser, screenshotDir string, out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		Browser:       b,
		ScreenshotDir: screenshotDir,
		Out:           out,
	}
}

// RunPlan checks every page in the plan and returns the aggregated report
func (r *Runner) RunPlan(plan *models.TestPlan) *models.Report {
	report := &models.Report{
		RunID:      uuid.NewString(),
		BaseURL:    plan.BaseURL,
		StartTime:  time.Now(),
		TotalTests: len(plan.TestPages),
	}

	for _, entry := range plan.TestPages {
		result := r.testPage(entry)
		report.Results = append(report.Results, result)

		if result.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	report.EndTime = time.Now()
	return report
}

// testPage runs the check sequence for a single page. Any error along the
// way marks the page failed with the error message; it never aborts the
// run.
func (r *Runner) testPage(entry models.PlanEntry) models.Result {
	start := time.Now()
	result := models.Result{
		PageName: entry.Name,
		URL:      entry.URL,
		Checks:   []string{},
	}

	fmt.Fprintf(r.Out, "  checking %s (%s)\n", entry.Name, entry.URL)

	if err := r.checkPage(entry, &result); err != nil {
		result.Error = err.Error()
		fmt.Fprintf(r.Out, "    %s %s failed: %v\n", color.RedString("✗"), entry.Name, err)
	} else {
		result.Passed = true
		fmt.Fprintf(r.Out, "    %s %s passed\n", color.GreenString("✓"), entry.Name)
	}

	result.Duration = time.Since(start)
	result.Timestamp = time.Now()
	return result
}

// checkPage navigates, snapshots, matches the expected fragments, and
// takes a screenshot
func (r *Runner) checkPage(entry models.PlanEntry, result *models.Result) error {
	if err := r.Browser.Navigate(entry.URL); err != nil {
		return err
	}

	snapshot, err := r.Browser.Snapshot()
	if err != nil {
		return err
	}

	pageText := extract.PageText(snapshot)
	for _, element := range entry.ExpectedElements {
		if extract.Contains(pageText, element) {
			result.Checks = append(result.Checks, fmt.Sprintf("✓ found %q", element))
		} else {
			result.Checks = append(result.Checks, fmt.Sprintf("✗ missing %q", element))
		}
	}

	path := filepath.Join(r.ScreenshotDir, screenshotName(entry.Name, time.Now()))
	saved, err := r.Browser.Screenshot(path)
	if err != nil {
		return err
	}
	result.ScreenshotPath = saved

	return nil
}

// screenshotName derives a filename from the page name and capture time
func screenshotName(page string, t time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(page, " ", "-"))
	return fmt.Sprintf("test-%s-%s.png", slug, t.Format("20060102-150405"))
}
