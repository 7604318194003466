package models

import (
	"time"
)

// PageTest describes a single page of the ERP application to check.
type PageTest struct {
	Name             string   `yaml:"name" json:"name"`
	Path             string   `yaml:"path" json:"path"`
	ExpectedElements []string `yaml:"expected_elements,omitempty" json:"expected_elements,omitempty"`
}

// PlanEntry is one page in a generated test plan, with its path already
// resolved against the base URL.
type PlanEntry struct {
	Name             string   `json:"name"`
	URL              string   `json:"url"`
	ExpectedElements []string `json:"expected_elements"`
}

// TestPlan is the JSON artifact consumed by the browser-automation runner.
type TestPlan struct {
	BaseURL   string      `json:"base_url"`
	TestPages []PlanEntry `json:"test_pages"`
	CreatedAt time.Time   `json:"created_at"`
}

// Result represents the outcome of checking a single page.
type Result struct {
	PageName       string        `json:"page_name"`
	URL            string        `json:"url"`
	Passed         bool          `json:"passed"`
	Error          string        `json:"error,omitempty"`
	ScreenshotPath string        `json:"screenshot_path,omitempty"`
	Duration       time.Duration `json:"duration"`
	Checks         []string      `json:"checks"`
	Timestamp      time.Time     `json:"timestamp"`
}

// Report aggregates the results of one full test run.
type Report struct {
	RunID      string    `json:"run_id"`
	BaseURL    string    `json:"base_url"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	TotalTests int       `json:"total_tests"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	Results    []Result  `json:"results"`
}
