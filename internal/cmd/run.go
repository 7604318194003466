package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taechang-erp/webtest/internal/browser"
	"github.com/taechang-erp/webtest/internal/plan"
	"github.com/taechang-erp/webtest/internal/report"
	"github.com/taechang-erp/webtest/internal/runner"
	"github.com/taechang-erp/webtest/pkg/models"
)

// NewRunCommand builds the "run" subcommand, which checks every page of
// the plan against a live ERP instance
func NewRunCommand() *cobra.Command {
	var (
		configFile    string
		baseURL       string
		planFile      string
		reportFile    string
		screenshotDir string
		noBrowser     bool
		headful       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the page checks against a live ERP instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if noBrowser {
				cfg.Browser.Enabled = false
			}
			if headful {
				cfg.Browser.Headless = false
			}
			if screenshotDir != "" {
				cfg.Browser.ScreenshotDir = screenshotDir
			}

			var testPlan *models.TestPlan
			if planFile != "" {
				testPlan, err = plan.Load(planFile)
			} else {
				testPlan, err = plan.Build(cfg.ResolveBaseURL(baseURL), cfg.Pages)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Testing %d pages against %s\n", len(testPlan.TestPages), testPlan.BaseURL)

			b, err := browser.New(cfg)
			if err != nil {
				return fmt.Errorf("starting browser: %w", err)
			}
			defer b.Close()

			rep := runner.New(b, cfg.Browser.ScreenshotDir, out).RunPlan(testPlan)

			if reportFile == "" {
				reportFile = cfg.Output.ReportFile
			}
			if err := report.NewWriter(reportFile).SaveToFile(rep); err != nil {
				return fmt.Errorf("saving report: %w", err)
			}

			report.PrintSummary(out, rep)
			fmt.Fprintf(out, "Report saved to %s\n", reportFile)

			if rep.Failed > 0 {
				return fmt.Errorf("%d of %d pages failed", rep.Failed, rep.TotalTests)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to YAML configuration file")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "base URL of the ERP instance (overrides TEST_BASE_URL)")
	cmd.Flags().StringVarP(&planFile, "plan", "p", "", "run a previously generated test plan instead of the configured pages")
	cmd.Flags().StringVar(&reportFile, "report", "", "file to write the JSON report to")
	cmd.Flags().StringVar(&screenshotDir, "screenshot-dir", "", "directory to save screenshots in")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "fetch pages over plain HTTP instead of a headless browser")
	cmd.Flags().BoolVar(&headful, "headful", false, "run the browser with a visible window")

	return cmd
}
