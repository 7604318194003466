package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taechang-erp/webtest/internal/plan"
)

// NewPlanCommand builds the "plan" subcommand, which generates the static
// JSON test plan consumed by the browser-automation runner
func NewPlanCommand() *cobra.Command {
	var (
		configFile string
		baseURL    string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the JSON test plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			testPlan, err := plan.Build(cfg.ResolveBaseURL(baseURL), cfg.Pages)
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Output.PlanFile
			}
			if err := plan.NewWriter(output).SaveToFile(testPlan); err != nil {
				return fmt.Errorf("saving test plan: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s test plan saved: %s (%d pages)\n",
				color.GreenString("✓"), output, len(testPlan.TestPages))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to YAML configuration file")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "base URL of the ERP instance (overrides TEST_BASE_URL)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the test plan to")

	return cmd
}
