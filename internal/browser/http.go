package browser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/taechang-erp/webtest/internal/config"
)

// HTTP fetches pages with a plain HTTP client. It renders no JavaScript
// and cannot take screenshots, but is useful against server-rendered
// pages or when no Chrome binary is available.
type HTTP struct {
	Config *config.BrowserConfig
	Client *http.Client

	body string
}

// NewHTTP creates an HTTP-based page fetcher
func NewHTTP(config *config.BrowserConfig) *HTTP {
	return &HTTP{
		Config: config,
		Client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Navigate fetches the URL and keeps the response body for the next
// Snapshot call
func (h *HTTP) Navigate(url string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if h.Config.UserAgent != "" {
		req.Header.Set("User-Agent", h.Config.UserAgent)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	h.body = string(body)

	return nil
}

// Snapshot returns the body of the last fetched page
func (h *HTTP) Snapshot() (string, error) {
	if h.body == "" {
		return "", fmt.Errorf("no page fetched yet")
	}
	return h.body, nil
}

// Screenshot is not supported over plain HTTP; the page is recorded
// without one
func (h *HTTP) Screenshot(path string) (string, error) {
	return "", nil
}

// Close releases idle connections
func (h *HTTP) Close() error {
	h.Client.CloseIdleConnections()
	return nil
}
