package store

import (
	"time"

	"thoth-hr/internal/core/domain"

	"github.com/google/uuid"
)

// timestamp returns the creation-time default for date fields
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Every add path goes through one of these constructors so default-value
// application cannot diverge between call sites.

func newUser(input domain.User) domain.User {
	input.ID = uuid.New().String()
	return input
}

func newMember(input domain.Member) domain.Member {
	input.ID = uuid.New().String()
	if input.Status == "" {
		input.Status = domain.MemberActive
	}
	return input
}

func newLoan(input domain.Loan) domain.Loan {
	input.ID = uuid.New().String()
	if input.RepaymentTerm == "" {
		input.RepaymentTerm = "6 months"
	}
	if input.Status == "" {
		input.Status = domain.LoanPending
	}
	if input.Date == "" {
		input.Date = timestamp()
	}
	return input
}

func newSaving(input domain.Saving) domain.Saving {
	input.ID = uuid.New().String()
	if input.Date == "" {
		input.Date = timestamp()
	}
	return input
}

func newPayroll(input domain.Payroll) domain.Payroll {
	input.ID = uuid.New().String()
	if input.Status == "" {
		input.Status = domain.PayrollPending
	}
	if input.Date == "" {
		input.Date = timestamp()
	}
	return input
}

func newTransaction(input domain.Transaction) domain.Transaction {
	input.ID = uuid.New().String()
	if input.Date == "" {
		input.Date = timestamp()
	}
	return input
}

func newContract(input domain.Contract) domain.Contract {
	input.ID = uuid.New().String()
	return input
}

// normalizePayrolls backfills fields that older persisted snapshots and the
// seed dataset may omit: status, date and the salary derived from net pay.
func normalizePayrolls(payrolls []domain.Payroll) []domain.Payroll {
	out := make([]domain.Payroll, len(payrolls))
	for i, p := range payrolls {
		if p.Status == "" {
			p.Status = domain.PayrollPending
		}
		if p.Date == "" {
			p.Date = timestamp()
		}
		if p.Salary == 0 {
			p.Salary = p.NetPay
		}
		out[i] = p
	}
	return out
}
