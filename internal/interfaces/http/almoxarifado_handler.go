package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// AlmoxarifadoHandler trata as requisições HTTP de almoxarifados.
type AlmoxarifadoHandler struct {
	uc *usecase.AlmoxarifadoUseCase
}

// NewAlmoxarifadoHandler constrói o handler.
func NewAlmoxarifadoHandler(uc *usecase.AlmoxarifadoUseCase) *AlmoxarifadoHandler {
	return &AlmoxarifadoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlmoxarifadoRequest  true  "central_id, nome"
// @Success      201   {object}  dto.AlmoxarifadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almoxarifados [post]
func (h *AlmoxarifadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlmoxarifadoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter almoxarifado por ID
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do almoxarifado"
// @Success      200  {object}  dto.AlmoxarifadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almoxarifados/{id} [get]
func (h *AlmoxarifadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID do almoxarifado"
// @Param        body  body  dto.UpdateAlmoxarifadoRequest  true  "campos opcionais"
// @Success      200   {object}  dto.AlmoxarifadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almoxarifados/{id} [put]
func (h *AlmoxarifadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlmoxarifadoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almoxarifados
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        central_id  query  string  false  "filtrar por central"
// @Param        limit       query  int     false  "máximo de itens (default 50)"
// @Param        offset      query  int     false  "deslocamento"
// @Success      200  {object}  dto.AlmoxarifadoListResponse
// @Router       /api/almoxarifados [get]
func (h *AlmoxarifadoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("central_id"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Param        id  path  string  true  "ID do almoxarifado"
// @Success      204
// @Router       /api/almoxarifados/{id} [delete]
func (h *AlmoxarifadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
