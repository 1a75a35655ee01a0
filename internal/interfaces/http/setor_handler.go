package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// SetorHandler trata as requisições HTTP de setores.
type SetorHandler struct {
	uc *usecase.SetorUseCase
}

// NewSetorHandler constrói o handler.
func NewSetorHandler(uc *usecase.SetorUseCase) *SetorHandler {
	return &SetorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar setor
// @Description  sub_almoxarifado_ids vazio pendura o setor direto no
// @Description  almoxarifado; com vários IDs o setor fica multi-pai.
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSetorRequest  true  "almoxarifado_id, nome, sub_almoxarifado_ids"
// @Success      201   {object}  dto.SetorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/setores [post]
func (h *SetorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSetorRequest
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
// @Summary      Obter setor por ID
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do setor"
// @Success      200  {object}  dto.SetorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/setores/{id} [get]
func (h *SetorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Atualizar setor
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do setor"
// @Param        body  body  dto.UpdateSetorRequest  true  "campos opcionais"
// @Success      200   {object}  dto.SetorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/setores/{id} [put]
func (h *SetorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSetorRequest
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
// @Summary      Listar setores
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de itens (default 50)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.SetorListResponse
// @Router       /api/setores [get]
func (h *SetorHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar setor
// @Tags         hierarquia
// @Security     Bearer
// @Param        id  path  string  true  "ID do setor"
// @Success      204
// @Router       /api/setores/{id} [delete]
func (h *SetorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
