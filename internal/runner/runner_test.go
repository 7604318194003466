package runner

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taechang-erp/webtest/pkg/models"
)

// fakeBrowser scripts the automation primitives so the harness can be
// exercised without a real browser.
type fakeBrowser struct {
	snapshots   map[string]string
	navErr      map[string]error
	snapshotErr error
	shotErr     error

	current     string
	navigated   []string
	screenshots []string
}

func (f *fakeBrowser) Navigate(url string) error {
	f.navigated = append(f.navigated, url)
	if err := f.navErr[url]; err != nil {
		return err
	}
	f.current = url
	return nil
}

func (f *fakeBrowser) Snapshot() (string, error) {
	if f.snapshotErr != nil {
		return "", f.snapshotErr
	}
	return f.snapshots[f.current], nil
}

func (f *fakeBrowser) Screenshot(path string) (string, error) {
	if f.shotErr != nil {
		return "", f.shotErr
	}
	f.screenshots = append(f.screenshots, path)
	return path, nil
}

func (f *fakeBrowser) Close() error { return nil }

func planOf(entries ...models.PlanEntry) *models.TestPlan {
	return &models.TestPlan{
		BaseURL:   "http://localhost:5000",
		TestPages: entries,
		CreatedAt: time.Now(),
	}
}

func TestRunPlan_AllFragmentsFound(t *testing.T) {
	fake := &fakeBrowser{
		snapshots: map[string]string{
			"http://localhost:5000/login": `<html><body><h1>로그인</h1><label>아이디</label></body></html>`,
		},
	}
	var out bytes.Buffer
	r := New(fake, t.TempDir(), &out)

	report := r.RunPlan(planOf(models.PlanEntry{
		Name:             "로그인",
		URL:              "http://localhost:5000/login",
		ExpectedElements: []string{"로그인", "아이디"},
	}))

	assert.Equal(t, 1, report.TotalTests)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 0, report.Failed)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.EndTime.Before(report.StartTime))

	require.Len(t, report.Results, 1)
	result := report.Results[0]
	assert.True(t, result.Passed)
	assert.Empty(t, result.Error)
	require.Len(t, result.Checks, 2)
	assert.Contains(t, result.Checks[0], "found")
	assert.Contains(t, result.Checks[1], "found")
	assert.NotEmpty(t, result.ScreenshotPath)
	assert.Contains(t, out.String(), "passed")
}

func TestRunPlan_MissingFragmentIsRecordedNotFatal(t *testing.T) {
	fake := &fakeBrowser{
		snapshots: map[string]string{
			"http://localhost:5000/stock": `<html><body>재고</body></html>`,
		},
	}
	r := New(fake, t.TempDir(), &bytes.Buffer{})

	report := r.RunPlan(planOf(models.PlanEntry{
		Name:             "재고 현황",
		URL:              "http://localhost:5000/stock",
		ExpectedElements: []string{"재고", "현황"},
	}))

	require.Len(t, report.Results, 1)
	result := report.Results[0]

	// A missing fragment is noted in the checks; only errors fail a page
	assert.True(t, result.Passed)
	require.Len(t, result.Checks, 2)
	assert.Contains(t, result.Checks[0], "found")
	assert.Contains(t, result.Checks[1], "missing")
}

func TestRunPlan_ErrorOnOnePageContinues(t *testing.T) {
	fake := &fakeBrowser{
		snapshots: map[string]string{
			"http://localhost:5000/":      `<html><body>대시보드</body></html>`,
			"http://localhost:5000/sales": `<html><body>매출 관리</body></html>`,
		},
		navErr: map[string]error{
			"http://localhost:5000/login": errors.New("net::ERR_CONNECTION_REFUSED"),
		},
	}
	var out bytes.Buffer
	r := New(fake, t.TempDir(), &out)

	report := r.RunPlan(planOf(
		models.PlanEntry{Name: "로그인", URL: "http://localhost:5000/login", ExpectedElements: []string{"로그인"}},
		models.PlanEntry{Name: "메인 대시보드", URL: "http://localhost:5000/", ExpectedElements: []string{"대시보드"}},
		models.PlanEntry{Name: "매출 관리", URL: "http://localhost:5000/sales", ExpectedElements: []string{"매출"}},
	))

	assert.Equal(t, 3, report.TotalTests)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)

	// All three pages were attempted despite the first failing
	assert.Len(t, fake.navigated, 3)

	failed := report.Results[0]
	assert.False(t, failed.Passed)
	assert.Contains(t, failed.Error, "ERR_CONNECTION_REFUSED")
	assert.Empty(t, failed.ScreenshotPath)
}

func TestRunPlan_SnapshotErrorFailsPage(t *testing.T) {
	fake := &fakeBrowser{
		snapshotErr: errors.New("browser timeout"),
	}
	r := New(fake, t.TempDir(), &bytes.Buffer{})

	report := r.RunPlan(planOf(models.PlanEntry{
		Name: "공정 작업", URL: "http://localhost:5000/process", ExpectedElements: []string{"공정"},
	}))

	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Passed)
	assert.Equal(t, "browser timeout", report.Results[0].Error)
}

func TestRunPlan_ScreenshotErrorFailsPage(t *testing.T) {
	fake := &fakeBrowser{
		snapshots: map[string]string{
			"http://localhost:5000/contracts": `<html><body>계약 관리</body></html>`,
		},
		shotErr: errors.New("screenshot failed"),
	}
	r := New(fake, t.TempDir(), &bytes.Buffer{})

	report := r.RunPlan(planOf(models.PlanEntry{
		Name: "계약 관리", URL: "http://localhost:5000/contracts", ExpectedElements: []string{"계약"},
	}))

	require.Len(t, report.Results, 1)
	result := report.Results[0]
	assert.False(t, result.Passed)
	assert.Equal(t, "screenshot failed", result.Error)

	// The text checks had already run before the screenshot failed
	require.Len(t, result.Checks, 1)
	assert.Contains(t, result.Checks[0], "found")
}

func TestRunPlan_ScreenshotPathUnderConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeBrowser{
		snapshots: map[string]string{
			"http://localhost:5000/stock": `<html><body>재고 현황</body></html>`,
		},
	}
	r := New(fake, dir, &bytes.Buffer{})

	report := r.RunPlan(planOf(models.PlanEntry{
		Name: "재고 현황", URL: "http://localhost:5000/stock",
	}))

	require.Len(t, fake.screenshots, 1)
	path := fake.screenshots[0]
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "test-재고-현황-"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Equal(t, path, report.Results[0].ScreenshotPath)
}

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "test-메인-대시보드-20260830-140509.png", screenshotName("메인 대시보드", ts))
	assert.Equal(t, "test-bom-관리-20260830-140509.png", screenshotName("BOM 관리", ts))
}
