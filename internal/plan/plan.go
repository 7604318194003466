package plan

import (
	"fmt"
	"time"

	"github.com/taechang-erp/webtest/pkg/models"
)

// Build assembles a test plan from the configured pages. Each page yields
// exactly one entry with its path resolved against baseURL. Page names must
// be unique across the plan.
func Build(baseURL string, pages []models.PageTest) (*models.TestPlan, error) {
	seen := make(map[string]bool, len(pages))
	entries := make([]models.PlanEntry, 0, len(pages))

	for _, page := range pages {
		if page.Name == "" {
			return nil, fmt.Errorf("page with path %q has no name", page.Path)
		}
		if seen[page.Name] {
			return nil, fmt.Errorf("duplicate page name: %q", page.Name)
		}
		seen[page.Name] = true

		expected := page.ExpectedElements
		if expected == nil {
			expected = []string{}
		}

		entries = append(entries, models.PlanEntry{
			Name:             page.Name,
			URL:              baseURL + page.Path,
			ExpectedElements: expected,
		})
	}

	return &models.TestPlan{
		BaseURL:   baseURL,
		TestPages: entries,
		CreatedAt: time.Now(),
	}, nil
}
