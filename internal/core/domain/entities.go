package domain

// MemberStatus represents member employment status
type MemberStatus string

const (
	MemberActive     MemberStatus = "Active"
	MemberInactive   MemberStatus = "Inactive"
	MemberTerminated MemberStatus = "Terminated"
)

// LoanStatus represents loan status
type LoanStatus string

const (
	LoanActive    LoanStatus = "Active"
	LoanRepaid    LoanStatus = "Repaid"
	LoanDefaulted LoanStatus = "Defaulted"
	LoanPending   LoanStatus = "Pending"
)

// PayrollStatus represents payroll status
type PayrollStatus string

const (
	PayrollPaid    PayrollStatus = "Paid"
	PayrollPending PayrollStatus = "Pending"
)

// ContractStatus represents contract status
type ContractStatus string

const (
	ContractActive     ContractStatus = "Active"
	ContractExpired    ContractStatus = "Expired"
	ContractTerminated ContractStatus = "Terminated"
)

// TransactionType represents transaction direction
type TransactionType string

const (
	TransactionCredit TransactionType = "Credit"
	TransactionDebit  TransactionType = "Debit"
)

// User represents a dashboard user held in the domain snapshot
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Member represents an employee record
type Member struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Position       string       `json:"position,omitempty"`
	Department     string       `json:"department,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	HireDate       string       `json:"hireDate,omitempty"`
	Status         MemberStatus `json:"status"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
}

// Loan represents a loan issued to a member.
// Amount is the principal, not an outstanding balance.
type Loan struct {
	ID            string     `json:"id"`
	MemberID      string     `json:"memberId"`
	Amount        float64    `json:"amount"`
	Date          string     `json:"date"`
	InterestRate  float64    `json:"interestRate,omitempty"`
	RepaymentTerm string     `json:"repaymentTerm,omitempty"`
	Status        LoanStatus `json:"status"`
}

// Saving represents a member savings deposit
type Saving struct {
	ID       string  `json:"id"`
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// Payroll represents a payroll entry for a member
type Payroll struct {
	ID         string        `json:"id"`
	MemberID   string        `json:"memberId"`
	Salary     float64       `json:"salary"`
	Basic      float64       `json:"basic,omitempty"`
	Allowances float64       `json:"allowances,omitempty"`
	Deductions float64       `json:"deductions,omitempty"`
	NetPay     float64       `json:"netPay,omitempty"`
	Month      string        `json:"month,omitempty"`
	Date       string        `json:"date"`
	Status     PayrollStatus `json:"status"`
}

// Transaction represents a credit/debit movement.
// MemberID may be empty; consumers must resolve the owner defensively.
type Transaction struct {
	ID          string          `json:"id"`
	MemberID    string          `json:"memberId"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type,omitempty"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
}

// Contract represents an employment contract.
// Status is set manually; there is no automatic expiry transition.
type Contract struct {
	ID        string         `json:"id"`
	MemberID  string         `json:"memberId"`
	Title     string         `json:"title"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Status    ContractStatus `json:"status"`
}

// Snapshot is the complete set of all collection contents at a point in time.
// It is the unit of persistence: the whole snapshot is serialized after
// every mutation and rehydrated on startup.
type Snapshot struct {
	Users        []User        `json:"users"`
	Members      []Member      `json:"members"`
	Loans        []Loan        `json:"loans"`
	Savings      []Saving      `json:"savings"`
	Payrolls     []Payroll     `json:"payrolls"`
	Transactions []Transaction `json:"transactions"`
	Contracts    []Contract    `json:"contracts"`
}

// Clone returns a deep copy of the snapshot so callers can hold it
// without observing later mutations.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Users:        make([]User, len(s.Users)),
		Members:      make([]Member, len(s.Members)),
		Loans:        make([]Loan, len(s.Loans)),
		Savings:      make([]Saving, len(s.Savings)),
		Payrolls:     make([]Payroll, len(s.Payrolls)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Contracts:    make([]Contract, len(s.Contracts)),
	}
	copy(out.Users, s.Users)
	copy(out.Members, s.Members)
	copy(out.Loans, s.Loans)
	copy(out.Savings, s.Savings)
	copy(out.Payrolls, s.Payrolls)
	copy(out.Transactions, s.Transactions)
	copy(out.Contracts, s.Contracts)
	return out
}
