package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/usecase"
)

// LoteHandler consultas de lotes.
type LoteHandler struct {
	uc *usecase.LoteUseCase
}

// NewLoteHandler constrói o handler.
func NewLoteHandler(uc *usecase.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obter lote por ID
// @Description  O status (normal/critico/vencido) é derivado da validade.
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}
