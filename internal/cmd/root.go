// Package cmd wires the webtest CLI together.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taechang-erp/webtest/internal/config"
)

// NewRootCommand builds the webtest command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "webtest",
		Short: "Smoke-tests the pages of the Taechang ERP web application",
		Long: `webtest enumerates the major pages of the ERP web application and
checks each one in a headless browser: navigate, wait for the page to
settle, verify the expected text fragments, and take a screenshot.

It can also emit the page list as a static JSON test plan for external
browser-automation runners.`,
		SilenceUsage: true,
	}

	root.AddCommand(NewPlanCommand())
	root.AddCommand(NewRunCommand())

	return root
}

// loadConfig loads the given config file, or the built-in defaults when
// no file is specified
func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		return config.CreateDefault(), nil
	}
	return config.Load(path)
}
