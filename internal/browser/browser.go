package browser

import (
	"github.com/taechang-erp/webtest/internal/config"
)

// Browser is the set of automation primitives the runner drives for each
// page: navigate to a URL, capture a snapshot of the rendered document,
// and take a screenshot.
type Browser interface {
	Navigate(url string) error
	Snapshot() (string, error)
	Screenshot(path string) (string, error)
	Close() error
}

// New creates a browser based on the configuration. When the headless
// browser is disabled the pages are fetched over plain HTTP instead, which
// skips screenshots but still allows text checks.
func New(config *config.AppConfig) (Browser, error) {
	if config.Browser.Enabled {
		return NewChrome(&config.Browser)
	}
	return NewHTTP(&config.Browser), nil
}
