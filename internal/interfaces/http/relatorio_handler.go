package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/relatorio"
)

// RelatorioHandler relatórios agregados e painel.
type RelatorioHandler struct {
	uc *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// periodo extrai inicio/fim da query. Sem parâmetros, últimos 30 dias.
func periodo(c *fiber.Ctx) (time.Time, time.Time, error) {
	fim := time.Now()
	inicio := fim.AddDate(0, 0, -30)
	if raw := c.Query("inicio"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		inicio = t
	}
	if raw := c.Query("fim"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// inclui o dia inteiro
		fim = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return inicio, fim, nil
}

// ConsumoSetores godoc
// @Summary      Consumo agregado por setor e produto
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  false  "data inicial (2006-01-02, default -30d)"
// @Param        fim     query  string  false  "data final (2006-01-02, default hoje)"
// @Success      200  {array}   dto.ConsumoSetorDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/consumo_setores [get]
func (h *RelatorioHandler) ConsumoSetores(c *fiber.Ctx) error {
	inicio, fim, err := periodo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas inválidas (formato 2006-01-02)"})
	}
	out, err := h.uc.ConsumoSetores(inicio, fim)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ConsumoSetoresPDF godoc
// @Summary      Consumo por setor em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        inicio  query  string  false  "data inicial (2006-01-02)"
// @Param        fim     query  string  false  "data final (2006-01-02)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/consumo_setores/pdf [get]
func (h *RelatorioHandler) ConsumoSetoresPDF(c *fiber.Ctx) error {
	inicio, fim, err := periodo(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas inválidas (formato 2006-01-02)"})
	}
	pdf, err := h.uc.ConsumoSetoresPDF(inicio, fim)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="consumo_setores.pdf"`)
	return c.Send(pdf)
}

// Dashboard godoc
// @Summary      Contadores do painel
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *RelatorioHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
