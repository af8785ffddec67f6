package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PayrollHandler handles payroll endpoints
type PayrollHandler struct {
	store *store.Store
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(st *store.Store) *PayrollHandler {
	return &PayrollHandler{store: st}
}

// CreatePayrollRequest represents payroll creation request body
type CreatePayrollRequest struct {
	MemberID   string  `json:"memberId"`
	Salary     float64 `json:"salary"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
	Month      string  `json:"month"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
}

// Create handles payroll creation
func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var req CreatePayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == "" {
		return response.BadRequest(c, "Member is required")
	}
	if req.NetPay < 0 {
		return response.BadRequest(c, "Net pay must not be negative")
	}

	payroll := h.store.AddPayroll(c.Context(), domain.Payroll{
		MemberID:   req.MemberID,
		Salary:     req.Salary,
		Basic:      req.Basic,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		NetPay:     req.NetPay,
		Month:      req.Month,
		Date:       req.Date,
		Status:     domain.PayrollStatus(req.Status),
	})

	return response.Created(c, "Payroll created", payroll)
}

// PayrollView is a payroll joined with its member's name
type PayrollView struct {
	domain.Payroll
	MemberName string `json:"memberName"`
}

// List handles payroll listing with search, status, date-range and sort controls
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()
	payrolls := h.store.Payrolls()

	if q := c.Query("search"); q != "" {
		payrolls = views.FilterPayrolls(payrolls, members, q)
	}
	if status := c.Query("status"); status != "" && status != "All" {
		filtered := payrolls[:0:0]
		for _, p := range payrolls {
			if string(p.Status) == status {
				filtered = append(filtered, p)
			}
		}
		payrolls = filtered
	}
	payrolls = views.FilterPayrollsByDate(payrolls, c.Query("start"), c.Query("end"))
	if key := c.Query("sort"); key != "" {
		payrolls = views.SortPayrolls(payrolls, members, key, c.Query("order") == "desc")
	}

	out := make([]PayrollView, len(payrolls))
	for i, p := range payrolls {
		out[i] = PayrollView{Payroll: p, MemberName: views.MemberName(members, p.MemberID)}
	}
	return response.Success(c, "", out)
}

// Update handles payroll update
func (h *PayrollHandler) Update(c *fiber.Ctx) error {
	var patch store.PayrollPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdatePayroll(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Payroll updated", nil)
}

// Pay marks a payroll as paid and settles the member's active loans.
// Payrolls that are missing or already paid are left untouched.
func (h *PayrollHandler) Pay(c *fiber.Ctx) error {
	h.store.MarkPayrollAsPaid(c.Context(), c.Params("id"))
	return response.Success(c, "Payroll marked as paid", nil)
}

// Delete handles payroll deletion
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	h.store.DeletePayroll(c.Context(), c.Params("id"))
	return response.Success(c, "Payroll deleted", nil)
}
