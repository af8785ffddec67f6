package handlers

import (
	"thoth-hr/internal/core/services"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles dashboard and report endpoints
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary returns the dashboard headline numbers
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.Summary())
}

// LoanStatusDistribution returns loan counts per status
func (h *ReportHandler) LoanStatusDistribution(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.LoanStatusDistribution())
}

// PayrollStatusDistribution returns payroll counts per status
func (h *ReportHandler) PayrollStatusDistribution(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.PayrollStatusDistribution())
}

// PayrollTrend returns the 12-month payroll trend
func (h *ReportHandler) PayrollTrend(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.MonthlyPayrollTrend())
}

// SavingTrend returns the 12-month saving trend
func (h *ReportHandler) SavingTrend(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.MonthlySavingTrend())
}

// reportInput builds report filters from query params
func reportInput(c *fiber.Ctx) services.MemberReportInput {
	return services.MemberReportInput{
		Search:        c.Query("search"),
		LoanStatus:    c.Query("loanStatus"),
		PayrollStatus: c.Query("payrollStatus"),
		StartDate:     c.Query("start"),
		EndDate:       c.Query("end"),
		SortKey:       c.Query("sort"),
		SortDesc:      c.Query("order") == "desc",
	}
}

// MemberReport returns one aggregate row per matching member
func (h *ReportHandler) MemberReport(c *fiber.Ctx) error {
	return response.Success(c, "", h.reports.MemberReport(reportInput(c)))
}

// ExportMemberReport streams the member report as a CSV download
func (h *ReportHandler) ExportMemberReport(c *fiber.Ctx) error {
	csv, err := h.reports.ExportMemberReportCSV(reportInput(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to render report")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="member-report.csv"`)
	return c.SendString(csv)
}
