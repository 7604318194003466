package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/taechang-erp/webtest/pkg/models"
)

// Load reads a previously generated test plan from a JSON file
func Load(path string) (*models.TestPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p models.TestPlan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing test plan %s: %w", path, err)
	}

	if len(p.TestPages) == 0 {
		return nil, fmt.Errorf("test plan %s contains no pages", path)
	}

	return &p, nil
}
