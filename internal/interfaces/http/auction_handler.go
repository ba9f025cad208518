package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
)

// AuctionHandler subastas inversas: estado, participantes, pujas y adjudicación.
type AuctionHandler struct {
	uc *usecase.AuctionUseCase
}

// NewAuctionHandler construye el handler.
func NewAuctionHandler(uc *usecase.AuctionUseCase) *AuctionHandler {
	return &AuctionHandler{uc: uc}
}

// Create godoc
// @Summary      Programar subasta
// @Tags         auctions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuctionRequest  true  "Subasta"
// @Success      201   {object}  dto.AuctionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auctions [post]
func (h *AuctionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuctionRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene la subasta.
func (h *AuctionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar subastas
// @Tags         auctions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "scheduled | live | completed | cancelled"
// @Router       /api/auctions [get]
func (h *AuctionHandler) List(c *fiber.Ctx) error {
	var q dto.AuctionListQuery
	if err := bindQuery(c, &q); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la subasta
// @Tags         auctions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.AuctionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auctions/{id}/status [patch]
func (h *AuctionHandler) ChangeStatus(c *fiber.Ctx) error {
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

// Delete elimina la subasta.
func (h *AuctionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterParticipant inscribe un proveedor.
func (h *AuctionHandler) RegisterParticipant(c *fiber.Ctx) error {
	var in dto.RegisterParticipantRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.RegisterParticipant(c.UserContext(), c.Params("id"), in.VendorID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParticipants proveedores inscritos.
func (h *AuctionHandler) ListParticipants(c *fiber.Ctx) error {
	out, err := h.uc.ListParticipants(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// PlaceBid godoc
// @Summary      Registrar puja
// @Tags         auctions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.PlaceBidRequest  true  "Puja"
// @Success      201   {object}  dto.BidResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auctions/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(c *fiber.Ctx) error {
	var in dto.PlaceBidRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.PlaceBid(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBids pujas de la subasta, de menor a mayor monto.
func (h *AuctionHandler) ListBids(c *fiber.Ctx) error {
	out, err := h.uc.ListBids(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Award godoc
// @Summary      Adjudicar subasta
// @Description  Sin bidId adjudica la puja más baja.
// @Tags         auctions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.AwardRequest  false  "Puja ganadora"
// @Success      200   {object}  dto.AuctionResponse
// @Router       /api/auctions/{id}/award [post]
func (h *AuctionHandler) Award(c *fiber.Ctx) error {
	var in dto.AwardRequest
	if len(c.Body()) > 0 {
		if err := bindJSON(c, &in); err != nil {
			return fail(c, err)
		}
	}
	out, err := h.uc.Award(c.UserContext(), c.Params("id"), in.BidID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
