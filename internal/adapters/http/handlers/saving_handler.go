package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SavingHandler handles saving endpoints
type SavingHandler struct {
	store *store.Store
}

// NewSavingHandler creates a new saving handler
func NewSavingHandler(st *store.Store) *SavingHandler {
	return &SavingHandler{store: st}
}

// CreateSavingRequest represents saving creation request body
type CreateSavingRequest struct {
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// Create handles saving creation
func (h *SavingHandler) Create(c *fiber.Ctx) error {
	var req CreateSavingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == "" {
		return response.BadRequest(c, "Member is required")
	}
	if req.Amount < 0 {
		return response.BadRequest(c, "Amount must not be negative")
	}

	saving := h.store.AddSaving(c.Context(), domain.Saving{
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Date:     req.Date,
	})

	return response.Created(c, "Saving created", saving)
}

// SavingView is a saving joined with its owner's name
type SavingView struct {
	domain.Saving
	MemberName string `json:"memberName"`
}

// List handles saving listing
func (h *SavingHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()
	savings := h.store.Savings()

	out := make([]SavingView, len(savings))
	for i, s := range savings {
		out[i] = SavingView{Saving: s, MemberName: views.MemberName(members, s.MemberID)}
	}
	return response.Success(c, "", out)
}

// Update handles saving update
func (h *SavingHandler) Update(c *fiber.Ctx) error {
	var patch store.SavingPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdateSaving(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Saving updated", nil)
}

// Delete handles saving deletion
func (h *SavingHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteSaving(c.Context(), c.Params("id"))
	return response.Success(c, "Saving deleted", nil)
}
