package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
)

// ApprovalHandler solicitudes de aprobación.
type ApprovalHandler struct {
	uc *usecase.ApprovalUseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(uc *usecase.ApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar aprobación
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApprovalRequest  true  "Entidad y aprobador"
// @Success      201   {object}  dto.ApprovalResponse
// @Router       /api/approvals [post]
func (h *ApprovalHandler) Request(c *fiber.Ctx) error {
	var in dto.CreateApprovalRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Request(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una aprobación.
func (h *ApprovalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar aprobaciones
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        mine        query  bool    false  "Solo las asignadas al usuario"
// @Param        status      query  string  false  "pending | approved | rejected"
// @Param        entityType  query  string  false  "vendor | rfx | po | budget"
// @Param        entityId    query  string  false  "ID de la entidad"
// @Router       /api/approvals [get]
func (h *ApprovalHandler) List(c *fiber.Ctx) error {
	var q dto.ApprovalListQuery
	if err := bindQuery(c, &q); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Aprobar o rechazar
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.DecideApprovalRequest  true  "Decisión"
// @Success      200   {object}  dto.ApprovalResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{id}/decision [post]
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideApprovalRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Decide(c.UserContext(), c.Params("id"), GetUserID(c), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
