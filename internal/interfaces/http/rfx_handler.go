package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
)

// RfxHandler eventos RFI/RFP/RFQ, invitaciones y respuestas.
type RfxHandler struct {
	uc *usecase.RfxUseCase
}

// NewRfxHandler construye el handler.
func NewRfxHandler(uc *usecase.RfxUseCase) *RfxHandler {
	return &RfxHandler{uc: uc}
}

// Create godoc
// @Summary      Crear evento RFx
// @Description  Queda en draft; si no se envía referenceNo se genera RFX-YYYYMMDD-XXXXXX.
// @Tags         rfx
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRfxRequest  true  "Evento"
// @Success      201   {object}  dto.RfxResponseDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rfx [post]
func (h *RfxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRfxRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento RFx
// @Tags         rfx
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.RfxResponseDTO
// @Router       /api/rfx/{id} [get]
func (h *RfxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar eventos RFx
// @Tags         rfx
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "draft | published | active | closed | cancelled"
// @Param        type    query  string  false  "rfi | rfp | rfq"
// @Router       /api/rfx [get]
func (h *RfxHandler) List(c *fiber.Ctx) error {
	var q dto.RfxListQuery
	if err := bindQuery(c, &q); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update edita un evento en draft.
func (h *RfxHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateRfxRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del evento
// @Tags         rfx
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.RfxResponseDTO
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rfx/{id}/status [patch]
func (h *RfxHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el evento con sus invitaciones y respuestas.
func (h *RfxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Invite godoc
// @Summary      Invitar proveedores
// @Tags         rfx
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.InviteVendorsRequest  true  "Proveedores"
// @Success      200   {array}   dto.InvitationResponse
// @Router       /api/rfx/{id}/invitations [post]
func (h *RfxHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteVendorsRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Invite(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListInvitations invitaciones del evento.
func (h *RfxHandler) ListInvitations(c *fiber.Ctx) error {
	out, err := h.uc.ListInvitations(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateInvitation cambia el estado de la invitación de un proveedor.
func (h *RfxHandler) UpdateInvitation(c *fiber.Ctx) error {
	var in dto.InvitationStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateInvitationStatus(c.UserContext(), c.Params("id"), c.Params("vendorId"), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// SubmitResponse godoc
// @Summary      Enviar respuesta de proveedor
// @Tags         rfx
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.SubmitRfxResponseRequest  true  "Respuesta"
// @Success      201   {object}  dto.RfxSubmissionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rfx/{id}/responses [post]
func (h *RfxHandler) SubmitResponse(c *fiber.Ctx) error {
	var in dto.SubmitRfxResponseRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.SubmitResponse(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListResponses respuestas recibidas para el evento.
func (h *RfxHandler) ListResponses(c *fiber.Ctx) error {
	out, err := h.uc.ListResponses(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
