package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/estoque"
	"github.com/pluckapp/almox-api/internal/domain/entity"
)

// EstoqueHandler consultas de saldo por local, subárvore e hierarquia.
type EstoqueHandler struct {
	uc *estoque.ConsultaUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.ConsultaUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// PorLocal godoc
// @Summary      Saldos de um local
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  true  "central | almoxarifado | sub_almoxarifado | setor"
// @Param        id    query  string  true  "ID do local"
// @Success      200  {object}  dto.EstoqueListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/local [get]
func (h *EstoqueHandler) PorLocal(c *fiber.Ctx) error {
	tipo, id := c.Query("tipo"), c.Query("id")
	if !entity.ValidLocalTipo(tipo) || id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo e id obrigatórios"})
	}
	items, err := h.uc.PorLocal(tipo, id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.EstoqueListResponse{Items: items})
}

// PorSetor godoc
// @Summary      Saldos de um setor
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do setor"
// @Success      200  {object}  dto.EstoqueListResponse
// @Router       /api/estoque/setor/{id} [get]
func (h *EstoqueHandler) PorSetor(c *fiber.Ctx) error {
	items, err := h.uc.PorLocal(entity.LocalTipoSetor, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.EstoqueListResponse{Items: items})
}

// PorCentral godoc
// @Summary      Saldos agregados da subárvore de uma central
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da central"
// @Success      200  {object}  dto.EstoqueListResponse
// @Router       /api/estoque/central/{id} [get]
func (h *EstoqueHandler) PorCentral(c *fiber.Ctx) error {
	items, err := h.uc.PorCentral(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.EstoqueListResponse{Items: items})
}

// Hierarquia godoc
// @Summary      Saldos de todos os nós da hierarquia
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstoqueListResponse
// @Router       /api/estoque/hierarquia [get]
func (h *EstoqueHandler) Hierarquia(c *fiber.Ctx) error {
	items, err := h.uc.Hierarquia()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.EstoqueListResponse{Items: items})
}

// Origens godoc
// @Summary      Origens candidatas por produto
// @Description  Locais (exceto setores) com disponibilidade positiva para
// @Description  cada produto pedido. Insumo do ranking de cobertura.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_ids  query  string  true  "IDs separados por vírgula"
// @Success      200  {object}  dto.OrigensPorProdutoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/origens [get]
func (h *EstoqueHandler) Origens(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("produto_ids"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "produto_ids obrigatório"})
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	origens, err := h.uc.Origens(ids)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.OrigensPorProdutoResponse{Origens: origens})
}
