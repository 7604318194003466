package browser

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"

	"github.com/taechang-erp/webtest/internal/config"
)

// Chrome drives a headless Chrome instance over the DevTools protocol.
// One browser is launched per test run and reused for every page.
type Chrome struct {
	Config *config.BrowserConfig

	browserCtx  context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// NewChrome launches a headless browser and returns it ready for
// navigation
func NewChrome(config *config.BrowserConfig) (*Chrome, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", config.Headless),
	)
	if config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(config.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	c := &Chrome{
		Config:      config,
		browserCtx:  browserCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
	}

	// Start the browser process now so launch failures surface here
	// instead of on the first page
	if err := c.run(); err != nil {
		c.cancel()
		c.allocCancel()
		return nil, err
	}

	return c, nil
}

// run executes browser actions with the configured per-operation timeout
func (c *Chrome) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(c.browserCtx, c.Config.Timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads the URL and waits for the page to settle before
// returning
func (c *Chrome) Navigate(url string) error {
	return c.run(
		chromedp.Navigate(url),
		chromedp.Sleep(c.Config.SettleWait),
	)
}

// Snapshot returns the rendered outer HTML of the current page
func (c *Chrome) Snapshot() (string, error) {
	var html string
	if err := c.run(chromedp.OuterHTML("html", &html)); err != nil {
		return "", err
	}
	return html, nil
}

// Screenshot captures the viewport and writes it to path, creating the
// parent directory as needed. It returns the path the image was saved to.
func (c *Chrome) Screenshot(path string) (string, error) {
	var buf []byte
	if err := c.run(chromedp.CaptureScreenshot(&buf)); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// Close shuts the browser down
func (c *Chrome) Close() error {
	c.cancel()
	c.allocCancel()
	return nil
}
