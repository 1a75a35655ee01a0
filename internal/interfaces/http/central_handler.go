package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// CentralHandler trata as requisições HTTP de centrais.
type CentralHandler struct {
	uc *usecase.CentralUseCase
}

// NewCentralHandler constrói o handler.
func NewCentralHandler(uc *usecase.CentralUseCase) *CentralHandler {
	return &CentralHandler{uc: uc}
}

// Create godoc
// @Summary      Criar central
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCentralRequest  true  "nome"
// @Success      201   {object}  dto.CentralResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/centrais [post]
func (h *CentralHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCentralRequest
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
// @Summary      Obter central por ID
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da central"
// @Success      200  {object}  dto.CentralResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/centrais/{id} [get]
func (h *CentralHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Atualizar central
// @Tags         hierarquia
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID da central"
// @Param        body  body  dto.UpdateCentralRequest  true  "campos opcionais"
// @Success      200   {object}  dto.CentralResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/centrais/{id} [put]
func (h *CentralHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCentralRequest
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
// @Summary      Listar centrais
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de itens (default 50)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.CentralListResponse
// @Router       /api/centrais [get]
func (h *CentralHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar central
// @Tags         hierarquia
// @Security     Bearer
// @Param        id  path  string  true  "ID da central"
// @Success      204
// @Router       /api/centrais/{id} [delete]
func (h *CentralHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
