package config

import (
	"github.com/taechang-erp/webtest/pkg/models"
)

// Default locations for generated artifacts
const (
	DefaultBaseURL       = "http://localhost:5000"
	DefaultPlanFile      = "tests/e2e/mcp-test-plan.json"
	DefaultReportFile    = "tests/e2e/mcp-test-report.json"
	DefaultScreenshotDir = "tests/e2e/screenshots"
)

// BaseURLEnvVar selects the base URL of the ERP instance under test
const BaseURLEnvVar = "TEST_BASE_URL"

// DefaultPages lists every major page of the ERP application with the text
// fragments each one is expected to render.
var DefaultPages = []models.PageTest{
	{
		Name:             "로그인",
		Path:             "/login",
		ExpectedElements: []string{"로그인", "아이디", "비밀번호"},
	},
	{
		Name:             "메인 대시보드",
		Path:             "/",
		ExpectedElements: []string{"대시보드", "태창 ERP"},
	},
	{
		Name:             "품목 관리",
		Path:             "/master/items",
		ExpectedElements: []string{"품목", "관리"},
	},
	{
		Name:             "거래처 관리",
		Path:             "/master/companies",
		ExpectedElements: []string{"거래처", "관리"},
	},
	{
		Name:             "BOM 관리",
		Path:             "/master/bom",
		ExpectedElements: []string{"BOM", "관리"},
	},
	{
		Name:             "월별 단가 관리",
		Path:             "/price-management",
		ExpectedElements: []string{"단가", "관리"},
	},
	{
		Name:             "입고 관리",
		Path:             "/inventory?tab=receiving",
		ExpectedElements: []string{"입고", "관리"},
	},
	{
		Name:             "생산 관리",
		Path:             "/inventory?tab=production",
		ExpectedElements: []string{"생산", "관리"},
	},
	{
		Name:             "출고 관리",
		Path:             "/inventory?tab=shipping",
		ExpectedElements: []string{"출고", "관리"},
	},
	{
		Name:             "재고 현황",
		Path:             "/stock",
		ExpectedElements: []string{"재고", "현황"},
	},
	{
		Name:             "재고 이력",
		Path:             "/stock/history",
		ExpectedElements: []string{"재고", "이력"},
	},
	{
		Name:             "재고 보고서",
		Path:             "/stock/reports",
		ExpectedElements: []string{"재고", "보고서"},
	},
	{
		Name:             "공정 작업",
		Path:             "/process",
		ExpectedElements: []string{"공정", "작업"},
	},
	{
		Name:             "추적성 조회",
		Path:             "/traceability",
		ExpectedElements: []string{"추적성", "조회"},
	},
	{
		Name:             "매출 관리",
		Path:             "/sales",
		ExpectedElements: []string{"매출", "관리"},
	},
	{
		Name:             "매입 관리",
		Path:             "/purchases",
		ExpectedElements: []string{"매입", "관리"},
	},
	{
		Name:             "수금 관리",
		Path:             "/collections",
		ExpectedElements: []string{"수금", "관리"},
	},
	{
		Name:             "지급 관리",
		Path:             "/payments",
		ExpectedElements: []string{"지급", "관리"},
	},
	{
		Name:             "회계 요약",
		Path:             "/accounting/summary",
		ExpectedElements: []string{"회계", "요약"},
	},
	{
		Name:             "계약 관리",
		Path:             "/contracts",
		ExpectedElements: []string{"계약", "관리"},
	},
}
