// Package views holds the derived view computations: pure, stateless
// functions over snapshot slices that produce the aggregates, filters and
// orderings consumed by the reporting surface. Nothing here mutates state
// or touches persistence, so every function is referentially transparent.
package views

import (
	"sort"
	"strings"
	"time"

	"thoth-hr/internal/core/domain"
)

// UnknownMember is the sentinel owner name for a dangling memberId.
// Any cross-entity lookup that misses resolves to it instead of failing.
const UnknownMember = "Unknown"

// MemberName resolves a member id to its name, or UnknownMember when the
// id is absent from the members list.
func MemberName(members []domain.Member, id string) string {
	for _, m := range members {
		if m.ID == id {
			return m.Name
		}
	}
	return UnknownMember
}

// ============================================================
// Per-member aggregates
// ============================================================

// TotalLoansByMember sums loan amounts per member. Every member appears in
// the result, with zero when no loans match.
func TotalLoansByMember(members []domain.Member, loans []domain.Loan) map[string]float64 {
	totals := make(map[string]float64, len(members))
	for _, m := range members {
		totals[m.ID] = 0
	}
	for _, l := range loans {
		if _, ok := totals[l.MemberID]; ok {
			totals[l.MemberID] += l.Amount
		}
	}
	return totals
}

// TotalSavingsByMember sums saving amounts per member
func TotalSavingsByMember(members []domain.Member, savings []domain.Saving) map[string]float64 {
	totals := make(map[string]float64, len(members))
	for _, m := range members {
		totals[m.ID] = 0
	}
	for _, s := range savings {
		if _, ok := totals[s.MemberID]; ok {
			totals[s.MemberID] += s.Amount
		}
	}
	return totals
}

// TotalPayrollByMember sums payroll salaries per member
func TotalPayrollByMember(members []domain.Member, payrolls []domain.Payroll) map[string]float64 {
	totals := make(map[string]float64, len(members))
	for _, m := range members {
		totals[m.ID] = 0
	}
	for _, p := range payrolls {
		if _, ok := totals[p.MemberID]; ok {
			totals[p.MemberID] += p.Salary
		}
	}
	return totals
}

// ============================================================
// Status distributions
// ============================================================

// LoanStatusCounts counts loans per status over the fixed status domain.
// Unrecognized or missing statuses are bucketed under Pending.
func LoanStatusCounts(loans []domain.Loan) map[domain.LoanStatus]int {
	counts := map[domain.LoanStatus]int{
		domain.LoanActive:    0,
		domain.LoanPending:   0,
		domain.LoanRepaid:    0,
		domain.LoanDefaulted: 0,
	}
	for _, l := range loans {
		if _, ok := counts[l.Status]; !ok {
			counts[domain.LoanPending]++
			continue
		}
		counts[l.Status]++
	}
	return counts
}

// PayrollStatusCounts counts payrolls per status. Unrecognized or missing
// statuses are bucketed under Pending.
func PayrollStatusCounts(payrolls []domain.Payroll) map[domain.PayrollStatus]int {
	counts := map[domain.PayrollStatus]int{
		domain.PayrollPaid:    0,
		domain.PayrollPending: 0,
	}
	for _, p := range payrolls {
		if _, ok := counts[p.Status]; !ok {
			counts[domain.PayrollPending]++
			continue
		}
		counts[p.Status]++
	}
	return counts
}

// ============================================================
// Search filters
// ============================================================

// matchesQuery reports whether the query is a case-insensitive substring
// of any of the fields. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterLoans keeps loans whose member name or status matches the query
func FilterLoans(loans []domain.Loan, members []domain.Member, query string) []domain.Loan {
	out := make([]domain.Loan, 0, len(loans))
	for _, l := range loans {
		if matchesQuery(query, MemberName(members, l.MemberID), string(l.Status)) {
			out = append(out, l)
		}
	}
	return out
}

// FilterPayrolls keeps payrolls whose member name, status or month matches the query
func FilterPayrolls(payrolls []domain.Payroll, members []domain.Member, query string) []domain.Payroll {
	out := make([]domain.Payroll, 0, len(payrolls))
	for _, p := range payrolls {
		if matchesQuery(query, MemberName(members, p.MemberID), string(p.Status), p.Month) {
			out = append(out, p)
		}
	}
	return out
}

// FilterContracts keeps contracts whose member name, status or title matches the query
func FilterContracts(contracts []domain.Contract, members []domain.Member, query string) []domain.Contract {
	out := make([]domain.Contract, 0, len(contracts))
	for _, c := range contracts {
		if matchesQuery(query, MemberName(members, c.MemberID), string(c.Status), c.Title) {
			out = append(out, c)
		}
	}
	return out
}

// FilterTransactions keeps transactions whose member name, type or
// description matches the query
func FilterTransactions(txs []domain.Transaction, members []domain.Member, query string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if matchesQuery(query, MemberName(members, t.MemberID), string(t.Type), t.Description) {
			out = append(out, t)
		}
	}
	return out
}

// FilterMembers keeps members whose name, status, position or department
// matches the query
func FilterMembers(members []domain.Member, query string) []domain.Member {
	out := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if matchesQuery(query, m.Name, string(m.Status), m.Position, m.Department) {
			out = append(out, m)
		}
	}
	return out
}

// ============================================================
// Date range filters
// ============================================================

// dateKey truncates a timestamp to its calendar-day prefix so plain dates
// and RFC3339 timestamps compare consistently.
func dateKey(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// InDateRange reports whether date falls within the inclusive bounds.
// An empty bound imposes no constraint on that side.
func InDateRange(date, start, end string) bool {
	d := dateKey(date)
	if start != "" && d < dateKey(start) {
		return false
	}
	if end != "" && d > dateKey(end) {
		return false
	}
	return true
}

// FilterLoansByDate keeps loans whose date falls within the bounds
func FilterLoansByDate(loans []domain.Loan, start, end string) []domain.Loan {
	out := make([]domain.Loan, 0, len(loans))
	for _, l := range loans {
		if InDateRange(l.Date, start, end) {
			out = append(out, l)
		}
	}
	return out
}

// FilterPayrollsByDate keeps payrolls whose date falls within the bounds
func FilterPayrollsByDate(payrolls []domain.Payroll, start, end string) []domain.Payroll {
	out := make([]domain.Payroll, 0, len(payrolls))
	for _, p := range payrolls {
		if InDateRange(p.Date, start, end) {
			out = append(out, p)
		}
	}
	return out
}

// ============================================================
// Sorting
// ============================================================

// sortKey is the comparable projection of one record for one sort key.
// Numeric keys compare numerically, everything else case-insensitively.
type sortKey struct {
	num     float64
	str     string
	numeric bool
}

func numKey(v float64) sortKey { return sortKey{num: v, numeric: true} }
func strKey(v string) sortKey  { return sortKey{str: strings.ToLower(v)} }

func (a sortKey) less(b sortKey) bool {
	if a.numeric && b.numeric {
		return a.num < b.num
	}
	return a.str < b.str
}

// stableSort returns a new slice ordered by the key projection. Ties keep
// their input order.
func stableSort[T any](items []T, desc bool, key func(T) sortKey) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return key(out[j]).less(key(out[i]))
		}
		return key(out[i]).less(key(out[j]))
	})
	return out
}

// SortLoans orders loans by the given key ("amount", "interestRate",
// "date", "status", "repaymentTerm", "member"). Unknown keys fall back to
// date ordering.
func SortLoans(loans []domain.Loan, members []domain.Member, key string, desc bool) []domain.Loan {
	return stableSort(loans, desc, func(l domain.Loan) sortKey {
		switch key {
		case "amount":
			return numKey(l.Amount)
		case "interestRate":
			return numKey(l.InterestRate)
		case "status":
			return strKey(string(l.Status))
		case "repaymentTerm":
			return strKey(l.RepaymentTerm)
		case "member":
			return strKey(MemberName(members, l.MemberID))
		default:
			return strKey(l.Date)
		}
	})
}

// SortPayrolls orders payrolls by the given key ("salary", "netPay",
// "date", "status", "month", "member"). Unknown keys fall back to date.
func SortPayrolls(payrolls []domain.Payroll, members []domain.Member, key string, desc bool) []domain.Payroll {
	return stableSort(payrolls, desc, func(p domain.Payroll) sortKey {
		switch key {
		case "salary":
			return numKey(p.Salary)
		case "netPay":
			return numKey(p.NetPay)
		case "status":
			return strKey(string(p.Status))
		case "month":
			return strKey(p.Month)
		case "member":
			return strKey(MemberName(members, p.MemberID))
		default:
			return strKey(p.Date)
		}
	})
}

// SortMembers orders members by the given key ("name", "status",
// "position", "department", "hireDate"). Unknown keys fall back to name.
func SortMembers(members []domain.Member, key string, desc bool) []domain.Member {
	return stableSort(members, desc, func(m domain.Member) sortKey {
		switch key {
		case "status":
			return strKey(string(m.Status))
		case "position":
			return strKey(m.Position)
		case "department":
			return strKey(m.Department)
		case "hireDate":
			return strKey(m.HireDate)
		default:
			return strKey(m.Name)
		}
	})
}

// SortContracts orders contracts by the given key ("title", "status",
// "startDate", "endDate", "member"). Unknown keys fall back to startDate.
func SortContracts(contracts []domain.Contract, members []domain.Member, key string, desc bool) []domain.Contract {
	return stableSort(contracts, desc, func(c domain.Contract) sortKey {
		switch key {
		case "title":
			return strKey(c.Title)
		case "status":
			return strKey(string(c.Status))
		case "endDate":
			return strKey(c.EndDate)
		case "member":
			return strKey(MemberName(members, c.MemberID))
		default:
			return strKey(c.StartDate)
		}
	})
}

// ============================================================
// Monthly trend
// ============================================================

// recordMonth parses the calendar month (0..11) out of a date string,
// irrespective of year. The second return is false when the date cannot
// be parsed; callers skip such records rather than fail.
func recordMonth(date string) (int, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return int(t.Month()) - 1, true
		}
	}
	return 0, false
}

// MonthlyPayrollTotals buckets payroll salaries into 12 calendar-month
// totals (Jan..Dec), summing across years.
func MonthlyPayrollTotals(payrolls []domain.Payroll) [12]float64 {
	var totals [12]float64
	for _, p := range payrolls {
		if m, ok := recordMonth(p.Date); ok {
			totals[m] += p.Salary
		}
	}
	return totals
}

// MonthlySavingTotals buckets saving amounts into 12 calendar-month totals
func MonthlySavingTotals(savings []domain.Saving) [12]float64 {
	var totals [12]float64
	for _, s := range savings {
		if m, ok := recordMonth(s.Date); ok {
			totals[m] += s.Amount
		}
	}
	return totals
}
