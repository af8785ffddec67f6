package views

import (
	"testing"

	"thoth-hr/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

var testMembers = []domain.Member{
	{ID: "m1", Name: "Alice Johnson", Position: "Engineer", Department: "Platform", Status: domain.MemberActive},
	{ID: "m2", Name: "Bob Stone", Position: "Analyst", Department: "Finance", Status: domain.MemberInactive},
	{ID: "m3", Name: "Carol White", Position: "Manager", Department: "Platform", Status: domain.MemberActive},
}

func TestMemberNameFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, "Alice Johnson", MemberName(testMembers, "m1"))
	assert.Equal(t, UnknownMember, MemberName(testMembers, "m9"))
	assert.Equal(t, UnknownMember, MemberName(nil, "m1"))
}

func TestTotalLoansByMember(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", MemberID: "m1", Amount: 500},
		{ID: "l2", MemberID: "m1", Amount: 300},
		{ID: "l3", MemberID: "m2", Amount: 250},
		{ID: "l4", MemberID: "ghost", Amount: 9999},
	}

	totals := TotalLoansByMember(testMembers, loans)

	assert.Equal(t, 800.0, totals["m1"])
	assert.Equal(t, 250.0, totals["m2"])
	assert.Equal(t, 0.0, totals["m3"], "members without loans appear with an explicit zero")
	assert.NotContains(t, totals, "ghost", "dangling owners do not create rows")
}

func TestTotalSavingsByMemberZeroNotOmission(t *testing.T) {
	totals := TotalSavingsByMember(testMembers, nil)

	assert.Len(t, totals, 3)
	for id, v := range totals {
		assert.Zero(t, v, "member %s should start at zero", id)
	}
}

func TestLoanStatusCountsBucketsUnknownAsPending(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", Status: domain.LoanActive},
		{ID: "l2", Status: domain.LoanActive},
		{ID: "l3", Status: domain.LoanRepaid},
		{ID: "l4", Status: ""},
		{ID: "l5", Status: "Weird"},
	}

	counts := LoanStatusCounts(loans)

	assert.Equal(t, 2, counts[domain.LoanActive])
	assert.Equal(t, 1, counts[domain.LoanRepaid])
	assert.Equal(t, 0, counts[domain.LoanDefaulted])
	assert.Equal(t, 2, counts[domain.LoanPending], "missing and unrecognized statuses land in Pending")
}

func TestPayrollStatusCountsCoversFullDomain(t *testing.T) {
	counts := PayrollStatusCounts(nil)

	assert.Equal(t, 0, counts[domain.PayrollPaid])
	assert.Equal(t, 0, counts[domain.PayrollPending])
}

func TestFilterLoansMatchesMemberNameAndStatus(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", MemberID: "m1", Status: domain.LoanActive},
		{ID: "l2", MemberID: "m2", Status: domain.LoanRepaid},
		{ID: "l3", MemberID: "ghost", Status: domain.LoanPending},
	}

	assert.Len(t, FilterLoans(loans, testMembers, "alice"), 1)
	assert.Len(t, FilterLoans(loans, testMembers, "REPAID"), 1)
	assert.Len(t, FilterLoans(loans, testMembers, ""), 3, "empty query matches everything")
	assert.Len(t, FilterLoans(loans, testMembers, "unknown"), 1, "dangling owners are searchable by their Unknown label")
	assert.Empty(t, FilterLoans(loans, testMembers, "zzz"))
}

func TestFilterMembers(t *testing.T) {
	assert.Len(t, FilterMembers(testMembers, "platform"), 2)
	assert.Len(t, FilterMembers(testMembers, "Inactive"), 1)
	assert.Len(t, FilterMembers(testMembers, "active"), 3, "substring match means active hits Inactive too")
	assert.Len(t, FilterMembers(testMembers, "analyst"), 1)
}

func TestInDateRangeBoundsAreInclusive(t *testing.T) {
	assert.True(t, InDateRange("2025-03-15", "2025-03-15", "2025-03-15"))
	assert.True(t, InDateRange("2025-03-15", "", ""))
	assert.True(t, InDateRange("2025-03-15", "2025-03-01", ""))
	assert.False(t, InDateRange("2025-03-15", "2025-03-16", ""))
	assert.False(t, InDateRange("2025-03-15", "", "2025-03-14"))
}

func TestInDateRangeMixedLayouts(t *testing.T) {
	// RFC3339 timestamps compare against plain dates on the calendar day
	assert.True(t, InDateRange("2025-03-15T09:30:00Z", "2025-03-15", "2025-03-15"))
	assert.False(t, InDateRange("2025-03-16T00:00:01Z", "", "2025-03-15"))
}

func TestFilterLoansByDate(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", Date: "2025-01-10"},
		{ID: "l2", Date: "2025-02-20"},
		{ID: "l3", Date: "2025-03-30"},
	}

	got := FilterLoansByDate(loans, "2025-02-01", "2025-03-01")
	assert.Len(t, got, 1)
	assert.Equal(t, "l2", got[0].ID)
}

func TestSortLoansByAmount(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", Amount: 300},
		{ID: "l2", Amount: 100},
		{ID: "l3", Amount: 200},
	}

	asc := SortLoans(loans, nil, "amount", false)
	assert.Equal(t, []string{"l2", "l3", "l1"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc := SortLoans(loans, nil, "amount", true)
	assert.Equal(t, []string{"l1", "l3", "l2"}, []string{desc[0].ID, desc[1].ID, desc[2].ID})

	assert.Equal(t, "l1", loans[0].ID, "input order is not mutated")
}

func TestSortIsStableOnTies(t *testing.T) {
	loans := []domain.Loan{
		{ID: "l1", Amount: 100, Date: "2025-01-01"},
		{ID: "l2", Amount: 100, Date: "2025-01-02"},
		{ID: "l3", Amount: 100, Date: "2025-01-03"},
	}

	got := SortLoans(loans, nil, "amount", false)
	assert.Equal(t, []string{"l1", "l2", "l3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSortMembersCaseInsensitive(t *testing.T) {
	members := []domain.Member{
		{ID: "m1", Name: "bob"},
		{ID: "m2", Name: "Alice"},
	}

	got := SortMembers(members, "name", false)
	assert.Equal(t, "m2", got[0].ID)
}

func TestSortPayrollsUnknownKeyFallsBackToDate(t *testing.T) {
	payrolls := []domain.Payroll{
		{ID: "p1", Date: "2025-06-01"},
		{ID: "p2", Date: "2025-01-01"},
	}

	got := SortPayrolls(payrolls, nil, "bogus", false)
	assert.Equal(t, "p2", got[0].ID)
}

func TestMonthlyPayrollTotals(t *testing.T) {
	payrolls := []domain.Payroll{
		{ID: "p1", Salary: 1000, Date: "2025-01-31"},
		{ID: "p2", Salary: 2000, Date: "2025-01-15T12:00:00Z"},
		{ID: "p3", Salary: 500, Date: "2024-12-31"},
		{ID: "p4", Salary: 700, Date: "2023-12-01"},
		{ID: "p5", Salary: 9999, Date: "not-a-date"},
	}

	totals := MonthlyPayrollTotals(payrolls)

	assert.Equal(t, 3000.0, totals[0], "January sums across layouts")
	assert.Equal(t, 1200.0, totals[11], "December sums across years")
	assert.Equal(t, 0.0, totals[5])
}

func TestMonthlySavingTotals(t *testing.T) {
	savings := []domain.Saving{
		{ID: "s1", Amount: 100, Date: "2025-04-01"},
		{ID: "s2", Amount: 150, Date: "2025-04-20"},
	}

	totals := MonthlySavingTotals(savings)
	assert.Equal(t, 250.0, totals[3])
}
