package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContractHandler handles contract endpoints
type ContractHandler struct {
	store *store.Store
}

// NewContractHandler creates a new contract handler
func NewContractHandler(st *store.Store) *ContractHandler {
	return &ContractHandler{store: st}
}

// CreateContractRequest represents contract creation request body
type CreateContractRequest struct {
	MemberID  string `json:"memberId"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// Create handles contract creation
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.MemberID == "" {
		return response.BadRequest(c, "Member is required")
	}
	if req.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	contract := h.store.AddContract(c.Context(), domain.Contract{
		MemberID:  req.MemberID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.ContractStatus(req.Status),
	})

	return response.Created(c, "Contract created", contract)
}

// ContractView is a contract joined with its member's name
type ContractView struct {
	domain.Contract
	MemberName string `json:"memberName"`
}

// List handles contract listing with search and sort controls
func (h *ContractHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()
	contracts := h.store.Contracts()

	if q := c.Query("search"); q != "" {
		contracts = views.FilterContracts(contracts, members, q)
	}
	if key := c.Query("sort"); key != "" {
		contracts = views.SortContracts(contracts, members, key, c.Query("order") == "desc")
	}

	out := make([]ContractView, len(contracts))
	for i, ct := range contracts {
		out[i] = ContractView{Contract: ct, MemberName: views.MemberName(members, ct.MemberID)}
	}
	return response.Success(c, "", out)
}

// Update handles contract update
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var patch store.ContractPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdateContract(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Contract updated", nil)
}

// Delete handles contract deletion
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteContract(c.Context(), c.Params("id"))
	return response.Success(c, "Contract deleted", nil)
}
