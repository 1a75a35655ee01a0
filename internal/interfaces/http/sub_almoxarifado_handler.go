package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// SubAlmoxarifadoHandler trata as requisições HTTP de sub-almoxarifados.
type SubAlmoxarifadoHandler struct {
	uc *usecase.SubAlmoxarifadoUseCase
}

// NewSubAlmoxarifadoHandler constrói o handler.
func NewSubAlmoxarifadoHandler(uc *usecase.SubAlmoxarifadoUseCase) *SubAlmoxarifadoHandler {
	return &SubAlmoxarifadoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar sub-almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubAlmoxarifadoRequest  true  "almoxarifado_id, nome"
// @Success      201   {object}  dto.SubAlmoxarifadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sub_almoxarifados [post]
func (h *SubAlmoxarifadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubAlmoxarifadoRequest
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
// @Summary      Obter sub-almoxarifado por ID
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do sub-almoxarifado"
// @Success      200  {object}  dto.SubAlmoxarifadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sub_almoxarifados/{id} [get]
func (h *SubAlmoxarifadoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Atualizar sub-almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID do sub-almoxarifado"
// @Param        body  body  dto.UpdateSubAlmoxarifadoRequest  true  "campos opcionais"
// @Success      200   {object}  dto.SubAlmoxarifadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sub_almoxarifados/{id} [put]
func (h *SubAlmoxarifadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubAlmoxarifadoRequest
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
// @Summary      Listar sub-almoxarifados
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        almoxarifado_id  query  string  false  "filtrar por almoxarifado"
// @Param        limit            query  int     false  "máximo de itens (default 50)"
// @Param        offset           query  int     false  "deslocamento"
// @Success      200  {object}  dto.SubAlmoxarifadoListResponse
// @Router       /api/sub_almoxarifados [get]
func (h *SubAlmoxarifadoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("almoxarifado_id"), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sub-almoxarifado
// @Tags         hierarquia
// @Security     Bearer
// @Param        id  path  string  true  "ID do sub-almoxarifado"
// @Success      204
// @Router       /api/sub_almoxarifados/{id} [delete]
func (h *SubAlmoxarifadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
