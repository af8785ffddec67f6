package services

import (
	"context"
	"strings"
	"testing"

	"thoth-hr/internal/adapters/persistence/snapshots"
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportService(t *testing.T, snap domain.Snapshot) *ReportService {
	t.Helper()
	ctx := context.Background()
	repo := snapshots.NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, snap))
	st, err := store.New(ctx, repo)
	require.NoError(t, err)
	return NewReportService(st)
}

func reportFixture() domain.Snapshot {
	return domain.Snapshot{
		Members: []domain.Member{
			{ID: "m1", Name: "Alice Johnson", Status: domain.MemberActive},
			{ID: "m2", Name: "Bob Stone", Status: domain.MemberInactive},
			{ID: "m3", Name: "Carol White", Status: domain.MemberActive},
		},
		Loans: []domain.Loan{
			{ID: "l1", MemberID: "m1", Amount: 500, Date: "2025-01-10", Status: domain.LoanActive},
			{ID: "l2", MemberID: "m1", Amount: 300, Date: "2025-02-10", Status: domain.LoanRepaid},
			{ID: "l3", MemberID: "m2", Amount: 200, Date: "2025-03-10", Status: domain.LoanActive},
		},
		Savings: []domain.Saving{
			{ID: "s1", MemberID: "m1", Amount: 150, Date: "2025-01-05"},
			{ID: "s2", MemberID: "m2", Amount: 50, Date: "2025-02-05"},
		},
		Payrolls: []domain.Payroll{
			{ID: "p1", MemberID: "m1", Salary: 4000, NetPay: 3800, Date: "2025-01-31", Status: domain.PayrollPaid},
			{ID: "p2", MemberID: "m2", Salary: 3000, NetPay: 2900, Date: "2025-02-28", Status: domain.PayrollPending},
		},
		Contracts: []domain.Contract{
			{ID: "c1", MemberID: "m1", Title: "Full-time", StartDate: "2024-01-01", EndDate: "2026-01-01", Status: domain.ContractActive},
		},
	}
}

func TestSummary(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	got := svc.Summary()

	assert.Equal(t, 3, got.TotalMembers)
	assert.Equal(t, 2, got.ActiveMembers)
	assert.Equal(t, 1000.0, got.TotalLoans)
	assert.InDelta(t, 1000.0/3, got.AverageLoan, 0.001)
	assert.Equal(t, 2, got.ActiveLoans)
	assert.Equal(t, 200.0, got.TotalSavings)
	assert.Equal(t, 7000.0, got.TotalPayroll)
	assert.Equal(t, 3500.0, got.AveragePayroll)
	assert.Equal(t, 1, got.PendingPayrolls)
	assert.Equal(t, 1, got.TotalContracts)
}

func TestSummaryEmptyStoreHasNoDivisionByZero(t *testing.T) {
	svc := newTestReportService(t, domain.Snapshot{})

	got := svc.Summary()

	assert.Zero(t, got.AverageLoan)
	assert.Zero(t, got.AveragePayroll)
}

func TestLoanStatusDistributionOrder(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	got := svc.LoanStatusDistribution()

	assert.Equal(t, []string{"Active", "Repaid", "Defaulted", "Pending"}, got.Labels)
	assert.Equal(t, []int{2, 1, 0, 0}, got.Counts)
}

func TestMonthlyPayrollTrendShape(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	got := svc.MonthlyPayrollTrend()

	require.Len(t, got.Labels, 12)
	require.Len(t, got.Totals, 12)
	assert.Equal(t, "Jan", got.Labels[0])
	assert.Equal(t, 4000.0, got.Totals[0])
	assert.Equal(t, 3000.0, got.Totals[1])
}

func TestMemberReportAggregates(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	rows := svc.MemberReport(MemberReportInput{})

	require.Len(t, rows, 3)
	// Default sort is by name ascending
	assert.Equal(t, "Alice Johnson", rows[0].Name)
	assert.Equal(t, 800.0, rows[0].TotalLoans)
	assert.Equal(t, 4000.0, rows[0].TotalPayroll)
	assert.Equal(t, 150.0, rows[0].TotalSavings)

	assert.Equal(t, "Carol White", rows[2].Name)
	assert.Zero(t, rows[2].TotalLoans, "members without records still get a zero row")
}

func TestMemberReportFilters(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	byStatus := svc.MemberReport(MemberReportInput{LoanStatus: "Repaid"})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Alice Johnson", byStatus[0].Name)

	bySearch := svc.MemberReport(MemberReportInput{Search: "bob"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Bob Stone", bySearch[0].Name)

	byDate := svc.MemberReport(MemberReportInput{StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.Len(t, byDate, 1)
	assert.Equal(t, "Bob Stone", byDate[0].Name)

	all := svc.MemberReport(MemberReportInput{LoanStatus: "All"})
	assert.Len(t, all, 3, `"All" disables the status filter`)
}

func TestMemberReportSortDesc(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	rows := svc.MemberReport(MemberReportInput{SortKey: "loans", SortDesc: true})

	require.Len(t, rows, 3)
	assert.Equal(t, 800.0, rows[0].TotalLoans)
	assert.Zero(t, rows[2].TotalLoans)
}

func TestExportMemberReportCSV(t *testing.T) {
	svc := newTestReportService(t, reportFixture())

	csv, err := svc.ExportMemberReportCSV(MemberReportInput{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Member,Total Loans,Total Payroll Paid,Total Savings", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Alice Johnson,800.00,4000.00,150.00", strings.TrimSpace(lines[1]))
}
