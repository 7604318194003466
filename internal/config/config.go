package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/taechang-erp/webtest/pkg/models"
)

// AppConfig holds the complete application configuration
type AppConfig struct {
	BaseURL string            `yaml:"base_url"`
	Pages   []models.PageTest `yaml:"pages"`
	Browser BrowserConfig     `yaml:"browser"`
	Output  OutputConfig      `yaml:"output"`
}

// BrowserConfig holds the headless browser configuration
type BrowserConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Headless      bool          `yaml:"headless"`
	UserAgent     string        `yaml:"user_agent"`
	SettleWait    time.Duration `yaml:"settle_wait"`
	Timeout       time.Duration `yaml:"timeout"`
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// OutputConfig holds the output file locations
type OutputConfig struct {
	PlanFile   string `yaml:"plan_file"`
	ReportFile string `yaml:"report_file"`
}

// Load loads the configuration from a YAML file
func Load(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := CreateDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return config, nil
}

// CreateDefault creates a default configuration
func CreateDefault() *AppConfig {
	return &AppConfig{
		BaseURL: "",
		Pages:   DefaultPages,
		Browser: BrowserConfig{
			Enabled:       true,
			Headless:      true,
			SettleWait:    2 * time.Second,
			Timeout:       30 * time.Second,
			ScreenshotDir: DefaultScreenshotDir,
		},
		Output: OutputConfig{
			PlanFile:   DefaultPlanFile,
			ReportFile: DefaultReportFile,
		},
	}
}

// applyDefaults fills in zero values left by a partial config file
func (c *AppConfig) applyDefaults() {
	if len(c.Pages) == 0 {
		c.Pages = DefaultPages
	}
	if c.Browser.SettleWait == 0 {
		c.Browser.SettleWait = 2 * time.Second
	}
	if c.Browser.Timeout == 0 {
		c.Browser.Timeout = 30 * time.Second
	}
	if c.Browser.ScreenshotDir == "" {
		c.Browser.ScreenshotDir = DefaultScreenshotDir
	}
	if c.Output.PlanFile == "" {
		c.Output.PlanFile = DefaultPlanFile
	}
	if c.Output.ReportFile == "" {
		c.Output.ReportFile = DefaultReportFile
	}
}

// ResolveBaseURL picks the base URL of the ERP instance under test.
// Precedence: explicit flag, config file, TEST_BASE_URL, then the
// localhost default.
func (c *AppConfig) ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.BaseURL != "" {
		return c.BaseURL
	}

	// A .env file next to the working directory is optional
	_ = godotenv.Load()

	if v := os.Getenv(BaseURLEnvVar); v != "" {
		return v
	}
	return DefaultBaseURL
}
