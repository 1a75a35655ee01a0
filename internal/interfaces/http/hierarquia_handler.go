package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// HierarquiaHandler trata a consulta da árvore da hierarquia.
type HierarquiaHandler struct {
	uc *usecase.HierarquiaUseCase
}

// NewHierarquiaHandler constrói o handler.
func NewHierarquiaHandler(uc *usecase.HierarquiaUseCase) *HierarquiaHandler {
	return &HierarquiaHandler{uc: uc}
}

// Arvore godoc
// @Summary      Árvore completa da hierarquia
// @Description  Central → Almoxarifado → Sub-Almoxarifado → Setor. Setores
// @Description  multi-pai aparecem sob cada sub-almoxarifado vinculado.
// @Tags         hierarquia
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ArvoreNode
// @Router       /api/hierarquia/arvore [get]
func (h *HierarquiaHandler) Arvore(c *fiber.Ctx) error {
	out, err := h.uc.Arvore()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
