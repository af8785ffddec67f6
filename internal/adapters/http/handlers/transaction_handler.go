package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(st *store.Store) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// CreateTransactionRequest represents transaction creation request body
type CreateTransactionRequest struct {
	MemberID    string  `json:"memberId"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// Create handles transaction creation
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == "" {
		return response.BadRequest(c, "Member is required")
	}
	if req.Type == "" {
		return response.BadRequest(c, "Type is required")
	}

	tx := h.store.AddTransaction(c.Context(), domain.Transaction{
		MemberID:    req.MemberID,
		Description: req.Description,
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Date:        req.Date,
	})

	return response.Created(c, "Transaction created", tx)
}

// TransactionView is a transaction joined with its member's name
type TransactionView struct {
	domain.Transaction
	MemberName string `json:"memberName"`
}

// List handles transaction listing with search and type filters
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()
	transactions := h.store.Transactions()

	if q := c.Query("search"); q != "" {
		transactions = views.FilterTransactions(transactions, members, q)
	}
	if typ := c.Query("type"); typ != "" && typ != "All" {
		filtered := transactions[:0:0]
		for _, t := range transactions {
			if string(t.Type) == typ {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	out := make([]TransactionView, len(transactions))
	for i, t := range transactions {
		out[i] = TransactionView{Transaction: t, MemberName: views.MemberName(members, t.MemberID)}
	}
	return response.Success(c, "", out)
}

// Update handles transaction update
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var patch store.TransactionPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdateTransaction(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Transaction updated", nil)
}

// Delete handles transaction deletion
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteTransaction(c.Context(), c.Params("id"))
	return response.Success(c, "Transaction deleted", nil)
}
