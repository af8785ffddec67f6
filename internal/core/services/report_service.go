package services

import (
	"sort"

	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/csvutil"
)

// monthLabels are the fixed trend bucket labels, Jan..Dec
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ReportService produces the aggregate views behind the dashboard and
// reports surfaces. All computation happens over an immutable snapshot
// copy, so a report is internally consistent even while mutations land.
type ReportService struct {
	store *store.Store
}

// NewReportService creates a new report service
func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// ============================================================
// Summary
// ============================================================

// SummaryData represents the dashboard headline numbers
type SummaryData struct {
	TotalMembers    int     `json:"total_members"`
	ActiveMembers   int     `json:"active_members"`
	TotalLoans      float64 `json:"total_loans"`
	AverageLoan     float64 `json:"average_loan"`
	ActiveLoans     int     `json:"active_loans"`
	TotalSavings    float64 `json:"total_savings"`
	TotalPayroll    float64 `json:"total_payroll"`
	AveragePayroll  float64 `json:"average_payroll"`
	PendingPayrolls int     `json:"pending_payrolls"`
	TotalContracts  int     `json:"total_contracts"`
}

// Summary returns the dashboard headline numbers
func (s *ReportService) Summary() SummaryData {
	snap := s.store.Snapshot()
	data := SummaryData{
		TotalMembers:   len(snap.Members),
		TotalContracts: len(snap.Contracts),
	}

	for _, m := range snap.Members {
		if m.Status == domain.MemberActive {
			data.ActiveMembers++
		}
	}
	for _, l := range snap.Loans {
		data.TotalLoans += l.Amount
		if l.Status == domain.LoanActive {
			data.ActiveLoans++
		}
	}
	if len(snap.Loans) > 0 {
		data.AverageLoan = data.TotalLoans / float64(len(snap.Loans))
	}
	for _, sv := range snap.Savings {
		data.TotalSavings += sv.Amount
	}
	for _, p := range snap.Payrolls {
		data.TotalPayroll += p.Salary
		if p.Status == domain.PayrollPending {
			data.PendingPayrolls++
		}
	}
	if len(snap.Payrolls) > 0 {
		data.AveragePayroll = data.TotalPayroll / float64(len(snap.Payrolls))
	}

	return data
}

// ============================================================
// Distributions & trend
// ============================================================

// StatusDistribution pairs status labels with their counts in a fixed order
type StatusDistribution struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// LoanStatusDistribution counts loans per status
func (s *ReportService) LoanStatusDistribution() StatusDistribution {
	counts := views.LoanStatusCounts(s.store.Loans())
	order := []domain.LoanStatus{
		domain.LoanActive, domain.LoanRepaid, domain.LoanDefaulted, domain.LoanPending,
	}
	dist := StatusDistribution{}
	for _, st := range order {
		dist.Labels = append(dist.Labels, string(st))
		dist.Counts = append(dist.Counts, counts[st])
	}
	return dist
}

// PayrollStatusDistribution counts payrolls per status
func (s *ReportService) PayrollStatusDistribution() StatusDistribution {
	counts := views.PayrollStatusCounts(s.store.Payrolls())
	order := []domain.PayrollStatus{domain.PayrollPaid, domain.PayrollPending}
	dist := StatusDistribution{}
	for _, st := range order {
		dist.Labels = append(dist.Labels, string(st))
		dist.Counts = append(dist.Counts, counts[st])
	}
	return dist
}

// TrendData represents a 12-month trend line
type TrendData struct {
	Labels []string  `json:"labels"`
	Totals []float64 `json:"totals"`
}

// MonthlyPayrollTrend buckets payroll salaries into calendar months
func (s *ReportService) MonthlyPayrollTrend() TrendData {
	totals := views.MonthlyPayrollTotals(s.store.Payrolls())
	return TrendData{Labels: monthLabels[:], Totals: totals[:]}
}

// MonthlySavingTrend buckets saving amounts into calendar months
func (s *ReportService) MonthlySavingTrend() TrendData {
	totals := views.MonthlySavingTotals(s.store.Savings())
	return TrendData{Labels: monthLabels[:], Totals: totals[:]}
}

// ============================================================
// Member report
// ============================================================

// MemberReportInput represents member report filters
type MemberReportInput struct {
	Search        string
	LoanStatus    string // "" or "All" disables the filter
	PayrollStatus string
	StartDate     string
	EndDate       string
	SortKey       string // "name", "loans", "payroll", "savings"
	SortDesc      bool
}

// MemberReportRow represents one member's aggregate line
type MemberReportRow struct {
	MemberID     string  `json:"member_id"`
	Name         string  `json:"name"`
	TotalLoans   float64 `json:"total_loans"`
	TotalPayroll float64 `json:"total_payroll"`
	TotalSavings float64 `json:"total_savings"`
}

// MemberReport joins each member against their loans, payrolls and savings
// and returns one aggregate row per matching member.
func (s *ReportService) MemberReport(input MemberReportInput) []MemberReportRow {
	snap := s.store.Snapshot()

	loanTotals := views.TotalLoansByMember(snap.Members, snap.Loans)
	payrollTotals := views.TotalPayrollByMember(snap.Members, snap.Payrolls)
	savingTotals := views.TotalSavingsByMember(snap.Members, snap.Savings)

	rows := make([]MemberReportRow, 0, len(snap.Members))
	for _, m := range snap.Members {
		if !memberMatches(m, snap, input) {
			continue
		}
		rows = append(rows, MemberReportRow{
			MemberID:     m.ID,
			Name:         m.Name,
			TotalLoans:   loanTotals[m.ID],
			TotalPayroll: payrollTotals[m.ID],
			TotalSavings: savingTotals[m.ID],
		})
	}

	sortRows(rows, input.SortKey, input.SortDesc)
	return rows
}

// memberMatches applies the report filters to one member
func memberMatches(m domain.Member, snap domain.Snapshot, input MemberReportInput) bool {
	if input.Search != "" {
		if len(views.FilterMembers([]domain.Member{m}, input.Search)) == 0 {
			return false
		}
	}

	if input.LoanStatus != "" && input.LoanStatus != "All" {
		found := false
		for _, l := range snap.Loans {
			if l.MemberID == m.ID && string(l.Status) == input.LoanStatus {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if input.PayrollStatus != "" && input.PayrollStatus != "All" {
		found := false
		for _, p := range snap.Payrolls {
			if p.MemberID == m.ID && string(p.Status) == input.PayrollStatus {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if input.StartDate != "" || input.EndDate != "" {
		found := false
		for _, l := range snap.Loans {
			if l.MemberID == m.ID && views.InDateRange(l.Date, input.StartDate, input.EndDate) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// sortRows orders report rows stably by the given key
func sortRows(rows []MemberReportRow, key string, desc bool) {
	less := func(a, b MemberReportRow) bool {
		switch key {
		case "loans":
			return a.TotalLoans < b.TotalLoans
		case "payroll":
			return a.TotalPayroll < b.TotalPayroll
		case "savings":
			return a.TotalSavings < b.TotalSavings
		default:
			return a.Name < b.Name
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// ExportMemberReportCSV renders the member report as CSV text
func (s *ReportService) ExportMemberReportCSV(input MemberReportInput) (string, error) {
	rows := s.MemberReport(input)

	table := csvutil.Table{
		Header: []string{"Member", "Total Loans", "Total Payroll Paid", "Total Savings"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Name,
			csvutil.FormatAmount(r.TotalLoans),
			csvutil.FormatAmount(r.TotalPayroll),
			csvutil.FormatAmount(r.TotalSavings),
		})
	}
	return table.Render()
}
