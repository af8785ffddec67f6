package handlers

import (
	"thoth-hr/internal/core/domain"
	"thoth-hr/internal/core/store"
	"thoth-hr/internal/core/views"
	"thoth-hr/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	store *store.Store
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(st *store.Store) *MemberHandler {
	return &MemberHandler{store: st}
}

// CreateMemberRequest represents member creation request body
type CreateMemberRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	Phone          string `json:"phone"`
	HireDate       string `json:"hireDate"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profilePicture"`
}

// Create handles member creation
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	member := h.store.AddMember(c.Context(), domain.Member{
		Name:           req.Name,
		Email:          req.Email,
		Position:       req.Position,
		Department:     req.Department,
		Phone:          req.Phone,
		HireDate:       req.HireDate,
		Status:         domain.MemberStatus(req.Status),
		ProfilePicture: req.ProfilePicture,
	})

	return response.Created(c, "Member created", member)
}

// List handles member listing with optional search and sort
func (h *MemberHandler) List(c *fiber.Ctx) error {
	members := h.store.Members()

	if q := c.Query("search"); q != "" {
		members = views.FilterMembers(members, q)
	}
	if key := c.Query("sort"); key != "" {
		members = views.SortMembers(members, key, c.Query("order") == "desc")
	}

	return response.Success(c, "", members)
}

// Update handles member update. Unknown ids leave the store unchanged.
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	var patch store.MemberPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	h.store.UpdateMember(c.Context(), c.Params("id"), patch)
	return response.Success(c, "Member updated", nil)
}

// Delete handles member deletion. Dependent records are not cascaded.
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	h.store.DeleteMember(c.Context(), c.Params("id"))
	return response.Success(c, "Member deleted", nil)
}
