package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	store *store.Store
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(st *store.Store) *LoanHandler {
	return &LoanHandler{store: st}
}

// CreateLoanRequest represents loan creation request body
type CreateLoanRequest struct {
	MemberID      string  `json:"memberId"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	InterestRate  float64 `json:"interestRate"`
	RepaymentTerm string  `json:"repaymentTerm"`
	Status        string  `json:"status"`
}

// Create handles loan creation
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == "" {
		return response.BadRequest(c, "Member is required")
	}
	if req.Amount < 0 {
		return response.BadRequest(c, "Amount must not be negative")
	}

	loan := h.store.AddLoan(c.Context(), domain.Loan{
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		Date:          req.Date,
		InterestRate:  req.InterestRate,
		RepaymentTerm: req.RepaymentTerm,
		Status:        domain.LoanStatus(req.Status),
	})

	return response.Created(c, "Loan created", loan)
}

// LoanView is a loan joined with its owner's name for table rendering
type LoanView struct {
	domain.Loan
	MemberName string `json:"memberName"`
}

// List handles loan listing with search, status, date-range and sort controls
func (h *LoanHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()
	loans := h.store.Loans()

	if q := c.Query("search"); q != "" {
		loans = views.FilterLoans(loans, members, q)
	}
	if status := c.Query("status"); status != "" && status != "All" {
		filtered := loans[:0:0]
		for _, l := range loans {
			if string(l.Status) == status {
				filtered = append(filtered, l)
			}
		}
		loans = filtered
	}
	loans = views.FilterLoansByDate(loans, c.Query("start"), c.Query("end"))
	if key := c.Query("sort"); key != "" {
		loans = views.SortLoans(loans, members, key, c.Query("order") == "desc")
	}

	out := make([]LoanView, len(loans))
	for i, l := range loans {
		out[i] = LoanView{Loan: l, MemberName: views.MemberName(members, l.MemberID)}
	}
	return response.Success(c, "", out)
}

// Update handles loan update. Unknown ids leave the store unchanged.
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	var patch store.LoanPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdateLoan(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Loan updated", nil)
}

// Delete handles loan deletion
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteLoan(c.Context(), c.Params("id"))
	return response.Success(c, "Loan deleted", nil)
}
