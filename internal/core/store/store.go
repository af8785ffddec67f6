package store

import (
	"context"
	"errors"
	"sync"

	"thoth-hr/internal/adapters/persistence/snapshots"
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/pkg/logger"
)

// Store is the single source of truth for all domain collections. Every
// mutation replaces the affected collection copy-on-write and persists the
// whole snapshot through the repository. A failed save is logged and
// swallowed: the in-memory state remains authoritative for the session.
type Store struct {
	mu   sync.RWMutex
	repo snapshots.SnapshotRepository
	snap domain.Snapshot
}

// New builds a store hydrated from the repository. On the first-ever load
// (repository reports no snapshot) it falls back to the bundled seed
// dataset and persists it.
func New(ctx context.Context, repo snapshots.SnapshotRepository) (*Store, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil, err
		}
		snap = snapshots.Seed()
		logger.Info(ctx, "no persisted snapshot, seeding store from bundled dataset")
	}

	snap.Payrolls = normalizePayrolls(snap.Payrolls)

	s := &Store{repo: repo, snap: snap}
	s.mu.Lock()
	s.commit(ctx, snap)
	s.mu.Unlock()
	return s, nil
}

// commit replaces the in-memory snapshot and writes it through the
// repository. Callers must hold the write lock.
func (s *Store) commit(ctx context.Context, snap domain.Snapshot) {
	s.snap = snap
	if err := s.repo.Save(ctx, snap); err != nil {
		logger.Warn(ctx, "snapshot save failed, in-memory state stays authoritative: %v", err)
	}
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// ============================================================
// Users
// ============================================================

// AddUser appends a user record and returns it with its assigned id
func (s *Store) AddUser(ctx context.Context, input domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := newUser(input)
	next := s.snap.Clone()
	next.Users = append(next.Users, user)
	s.commit(ctx, next)
	return user
}

// Users returns all user records in insertion order
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.snap.Users))
	copy(out, s.snap.Users)
	return out
}

// ============================================================
// Members
// ============================================================

// MemberPatch is a partial member update; nil fields are left unchanged
type MemberPatch struct {
	Name           *string              `json:"name"`
	Email          *string              `json:"email"`
	Position       *string              `json:"position"`
	Department     *string              `json:"department"`
	Phone          *string              `json:"phone"`
	HireDate       *string              `json:"hireDate"`
	Status         *domain.MemberStatus `json:"status"`
	ProfilePicture *string              `json:"profilePicture"`
}

// AddMember appends a member record, defaulting status to Active
func (s *Store) AddMember(ctx context.Context, input domain.Member) domain.Member {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := newMember(input)
	next := s.snap.Clone()
	next.Members = append(next.Members, member)
	s.commit(ctx, next)
	return member
}

// Members returns all member records in insertion order
func (s *Store) Members() []domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Member, len(s.snap.Members))
	copy(out, s.snap.Members)
	return out
}

// UpdateMember merges the patch into the member with the given id.
// A missing id is a silent no-op.
func (s *Store) UpdateMember(ctx context.Context, id string, patch MemberPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, m := range next.Members {
		if m.ID != id {
			continue
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Position != nil {
			m.Position = *patch.Position
		}
		if patch.Department != nil {
			m.Department = *patch.Department
		}
		if patch.Phone != nil {
			m.Phone = *patch.Phone
		}
		if patch.HireDate != nil {
			m.HireDate = *patch.HireDate
		}
		if patch.Status != nil {
			m.Status = *patch.Status
		}
		if patch.ProfilePicture != nil {
			m.ProfilePicture = *patch.ProfilePicture
		}
		next.Members[i] = m
		s.commit(ctx, next)
		return
	}
}

// DeleteMember removes the member with the given id. Dependent loans,
// savings, payrolls, transactions and contracts are NOT cascaded; their
// memberId dangles and consumers resolve the owner as "Unknown".
func (s *Store) DeleteMember(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	members := next.Members[:0:0]
	for _, m := range next.Members {
		if m.ID != id {
			members = append(members, m)
		}
	}
	if len(members) == len(next.Members) {
		return
	}
	next.Members = members
	s.commit(ctx, next)
}

// ============================================================
// Loans
// ============================================================

// LoanPatch is a partial loan update; nil fields are left unchanged
type LoanPatch struct {
	MemberID      *string            `json:"memberId"`
	Amount        *float64           `json:"amount"`
	Date          *string            `json:"date"`
	InterestRate  *float64           `json:"interestRate"`
	RepaymentTerm *string            `json:"repaymentTerm"`
	Status        *domain.LoanStatus `json:"status"`
}

// AddLoan appends a loan record, defaulting rate, term, status and date
func (s *Store) AddLoan(ctx context.Context, input domain.Loan) domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan := newLoan(input)
	next := s.snap.Clone()
	next.Loans = append(next.Loans, loan)
	s.commit(ctx, next)
	return loan
}

// Loans returns all loan records in insertion order
func (s *Store) Loans() []domain.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Loan, len(s.snap.Loans))
	copy(out, s.snap.Loans)
	return out
}

// UpdateLoan merges the patch into the loan with the given id
func (s *Store) UpdateLoan(ctx context.Context, id string, patch LoanPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, l := range next.Loans {
		if l.ID != id {
			continue
		}
		if patch.MemberID != nil {
			l.MemberID = *patch.MemberID
		}
		if patch.Amount != nil {
			l.Amount = *patch.Amount
		}
		if patch.Date != nil {
			l.Date = *patch.Date
		}
		if patch.InterestRate != nil {
			l.InterestRate = *patch.InterestRate
		}
		if patch.RepaymentTerm != nil {
			l.RepaymentTerm = *patch.RepaymentTerm
		}
		if patch.Status != nil {
			l.Status = *patch.Status
		}
		next.Loans[i] = l
		s.commit(ctx, next)
		return
	}
}

// DeleteLoan removes the loan with the given id
func (s *Store) DeleteLoan(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	loans := next.Loans[:0:0]
	for _, l := range next.Loans {
		if l.ID != id {
			loans = append(loans, l)
		}
	}
	if len(loans) == len(next.Loans) {
		return
	}
	next.Loans = loans
	s.commit(ctx, next)
}

// ============================================================
// Savings
// ============================================================

// SavingPatch is a partial saving update; nil fields are left unchanged
type SavingPatch struct {
	MemberID *string  `json:"memberId"`
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
}

// AddSaving appends a saving record, defaulting date to creation time
func (s *Store) AddSaving(ctx context.Context, input domain.Saving) domain.Saving {
	s.mu.Lock()
	defer s.mu.Unlock()

	saving := newSaving(input)
	next := s.snap.Clone()
	next.Savings = append(next.Savings, saving)
	s.commit(ctx, next)
	return saving
}

// Savings returns all saving records in insertion order
func (s *Store) Savings() []domain.Saving {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Saving, len(s.snap.Savings))
	copy(out, s.snap.Savings)
	return out
}

// UpdateSaving merges the patch into the saving with the given id
func (s *Store) UpdateSaving(ctx context.Context, id string, patch SavingPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, sv := range next.Savings {
		if sv.ID != id {
			continue
		}
		if patch.MemberID != nil {
			sv.MemberID = *patch.MemberID
		}
		if patch.Amount != nil {
			sv.Amount = *patch.Amount
		}
		if patch.Date != nil {
			sv.Date = *patch.Date
		}
		next.Savings[i] = sv
		s.commit(ctx, next)
		return
	}
}

// DeleteSaving removes the saving with the given id
func (s *Store) DeleteSaving(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	savings := next.Savings[:0:0]
	for _, sv := range next.Savings {
		if sv.ID != id {
			savings = append(savings, sv)
		}
	}
	if len(savings) == len(next.Savings) {
		return
	}
	next.Savings = savings
	s.commit(ctx, next)
}

// ============================================================
// Payrolls
// ============================================================

// PayrollPatch is a partial payroll update; nil fields are left unchanged
type PayrollPatch struct {
	MemberID   *string               `json:"memberId"`
	Salary     *float64              `json:"salary"`
	Basic      *float64              `json:"basic"`
	Allowances *float64              `json:"allowances"`
	Deductions *float64              `json:"deductions"`
	NetPay     *float64              `json:"netPay"`
	Month      *string               `json:"month"`
	Date       *string               `json:"date"`
	Status     *domain.PayrollStatus `json:"status"`
}

// AddPayroll appends a payroll record, defaulting status and date
func (s *Store) AddPayroll(ctx context.Context, input domain.Payroll) domain.Payroll {
	s.mu.Lock()
	defer s.mu.Unlock()

	payroll := newPayroll(input)
	next := s.snap.Clone()
	next.Payrolls = append(next.Payrolls, payroll)
	s.commit(ctx, next)
	return payroll
}

// Payrolls returns all payroll records in insertion order
func (s *Store) Payrolls() []domain.Payroll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Payroll, len(s.snap.Payrolls))
	copy(out, s.snap.Payrolls)
	return out
}

// UpdatePayroll merges the patch into the payroll with the given id
func (s *Store) UpdatePayroll(ctx context.Context, id string, patch PayrollPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, p := range next.Payrolls {
		if p.ID != id {
			continue
		}
		if patch.MemberID != nil {
			p.MemberID = *patch.MemberID
		}
		if patch.Salary != nil {
			p.Salary = *patch.Salary
		}
		if patch.Basic != nil {
			p.Basic = *patch.Basic
		}
		if patch.Allowances != nil {
			p.Allowances = *patch.Allowances
		}
		if patch.Deductions != nil {
			p.Deductions = *patch.Deductions
		}
		if patch.NetPay != nil {
			p.NetPay = *patch.NetPay
		}
		if patch.Month != nil {
			p.Month = *patch.Month
		}
		if patch.Date != nil {
			p.Date = *patch.Date
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		next.Payrolls[i] = p
		s.commit(ctx, next)
		return
	}
}

// DeletePayroll removes the payroll with the given id
func (s *Store) DeletePayroll(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	payrolls := next.Payrolls[:0:0]
	for _, p := range next.Payrolls {
		if p.ID != id {
			payrolls = append(payrolls, p)
		}
	}
	if len(payrolls) == len(next.Payrolls) {
		return
	}
	next.Payrolls = payrolls
	s.commit(ctx, next)
}

// MarkPayrollAsPaid sets the payroll status to Paid and, in the same
// commit, transitions every Active loan of the same member to Repaid.
// A payroll cannot be marked Paid without resolving its member's Active
// loans. No-op when the payroll is missing or already Paid.
func (s *Store) MarkPayrollAsPaid(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payroll *domain.Payroll
	for i := range s.snap.Payrolls {
		if s.snap.Payrolls[i].ID == id {
			payroll = &s.snap.Payrolls[i]
			break
		}
	}
	if payroll == nil || payroll.Status == domain.PayrollPaid {
		return
	}

	next := s.snap.Clone()
	for i, p := range next.Payrolls {
		if p.ID == id {
			p.Status = domain.PayrollPaid
			next.Payrolls[i] = p
		}
	}
	for i, l := range next.Loans {
		if l.MemberID == payroll.MemberID && l.Status == domain.LoanActive {
			l.Status = domain.LoanRepaid
			next.Loans[i] = l
		}
	}
	s.commit(ctx, next)
}

// ============================================================
// Transactions
// ============================================================

// TransactionPatch is a partial transaction update; nil fields are left unchanged
type TransactionPatch struct {
	MemberID    *string                 `json:"memberId"`
	Description *string                 `json:"description"`
	Type        *domain.TransactionType `json:"type"`
	Amount      *float64                `json:"amount"`
	Date        *string                 `json:"date"`
}

// AddTransaction appends a transaction record, defaulting date to creation time
func (s *Store) AddTransaction(ctx context.Context, input domain.Transaction) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTransaction(input)
	next := s.snap.Clone()
	next.Transactions = append(next.Transactions, tx)
	s.commit(ctx, next)
	return tx
}

// Transactions returns all transaction records in insertion order
func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.snap.Transactions))
	copy(out, s.snap.Transactions)
	return out
}

// UpdateTransaction merges the patch into the transaction with the given id
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, t := range next.Transactions {
		if t.ID != id {
			continue
		}
		if patch.MemberID != nil {
			t.MemberID = *patch.MemberID
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		next.Transactions[i] = t
		s.commit(ctx, next)
		return
	}
}

// DeleteTransaction removes the transaction with the given id
func (s *Store) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	txs := next.Transactions[:0:0]
	for _, t := range next.Transactions {
		if t.ID != id {
			txs = append(txs, t)
		}
	}
	if len(txs) == len(next.Transactions) {
		return
	}
	next.Transactions = txs
	s.commit(ctx, next)
}

// ============================================================
// Contracts
// ============================================================

// ContractPatch is a partial contract update; nil fields are left unchanged
type ContractPatch struct {
	MemberID  *string                `json:"memberId"`
	Title     *string                `json:"title"`
	StartDate *string                `json:"startDate"`
	EndDate   *string                `json:"endDate"`
	Status    *domain.ContractStatus `json:"status"`
}

// AddContract appends a contract record
func (s *Store) AddContract(ctx context.Context, input domain.Contract) domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract := newContract(input)
	next := s.snap.Clone()
	next.Contracts = append(next.Contracts, contract)
	s.commit(ctx, next)
	return contract
}

// Contracts returns all contract records in insertion order
func (s *Store) Contracts() []domain.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contract, len(s.snap.Contracts))
	copy(out, s.snap.Contracts)
	return out
}

// UpdateContract merges the patch into the contract with the given id
func (s *Store) UpdateContract(ctx context.Context, id string, patch ContractPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	for i, c := range next.Contracts {
		if c.ID != id {
			continue
		}
		if patch.MemberID != nil {
			c.MemberID = *patch.MemberID
		}
		if patch.Title != nil {
			c.Title = *patch.Title
		}
		if patch.StartDate != nil {
			c.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			c.EndDate = *patch.EndDate
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		next.Contracts[i] = c
		s.commit(ctx, next)
		return
	}
}

// DeleteContract removes the contract with the given id
func (s *Store) DeleteContract(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	contracts := next.Contracts[:0:0]
	for _, c := range next.Contracts {
		if c.ID != id {
			contracts = append(contracts, c)
		}
	}
	if len(contracts) == len(next.Contracts) {
		return
	}
	next.Contracts = contracts
	s.commit(ctx, next)
}
