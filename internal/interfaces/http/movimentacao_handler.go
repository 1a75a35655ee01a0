package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/estoque"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// MovimentacaoHandler trata o motor de movimentações e o livro-razão.
type MovimentacaoHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *estoque.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Entrada godoc
// @Summary      Entrada de estoque
// @Description  Credita o destino. Produtos com controle de lote exigem
// @Description  lote_numero, lote_validade e preco_unitario.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntradaRequest  true  "produto, quantidade, destino"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/entrada [post]
func (h *MovimentacaoHandler) Entrada(c *fiber.Ctx) error {
	var in dto.EntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mov, err := h.uc.Entrada(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// Distribuicao godoc
// @Summary      Distribuição entre locais
// @Description  Debita a origem e credita o destino. Quantidade inteira a
// @Description  menos que a unidade do produto admita fração.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DistribuicaoRequest  true  "produto, quantidade, origem, destino"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/distribuicao [post]
func (h *MovimentacaoHandler) Distribuicao(c *fiber.Ctx) error {
	var in dto.DistribuicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mov, err := h.uc.Distribuicao(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// EstornoDistribuicao godoc
// @Summary      Estorno de distribuição
// @Description  Reverte origem/destino de uma distribuição. Cada
// @Description  movimentação só pode ser estornada uma vez.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstornoRequest  true  "movimentacao_id"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/estorno_distribuicao [post]
func (h *MovimentacaoHandler) EstornoDistribuicao(c *fiber.Ctx) error {
	var in dto.EstornoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mov, err := h.uc.EstornoDistribuicao(c.Context(), GetUserID(c), in.MovimentacaoID)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// SaidaJustificada godoc
// @Summary      Saída justificada (perda, avaria, doação)
// @Description  Debita a origem sem destino interno. Justificativa obrigatória.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaidaJustificadaRequest  true  "produto, quantidade, origem, justificativa"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/saida_justificada [post]
func (h *MovimentacaoHandler) SaidaJustificada(c *fiber.Ctx) error {
	var in dto.SaidaJustificadaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mov, err := h.uc.SaidaJustificada(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// Consumo godoc
// @Summary      Consumo de setor
// @Description  Debita o estoque do setor. Operadores de setor só
// @Description  consomem do próprio setor.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumoRequest  true  "produto, quantidade, setor"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/consumo [post]
func (h *MovimentacaoHandler) Consumo(c *fiber.Ctx) error {
	var in dto.ConsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	// Operador de setor fica restrito ao setor vinculado.
	if GetPerfil(c) == entity.PerfilOperadorSetor && in.SetorID != GetSetorID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operador só consome do próprio setor"})
	}
	mov, err := h.uc.Consumo(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentacaoResponse(mov))
}

// SaidaSetor godoc
// @Summary      Saída para setor (carrinho)
// @Description  Aplica todas as linhas do carrinho em uma única transação:
// @Description  ou todas entram no livro-razão, ou nenhuma.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaidaSetorRequest  true  "setor_id, linhas"
// @Success      201   {object}  dto.MovimentacaoListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/saida_setor [post]
func (h *MovimentacaoHandler) SaidaSetor(c *fiber.Ctx) error {
	var in dto.SaidaSetorRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	movs, err := h.uc.SaidaSetor(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *toMovimentacaoResponse(m))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimentacaoListResponse{Items: items})
}

// List godoc
// @Summary      Listar o livro-razão
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        local_tipo  query  string  false  "filtrar por local (com local_id)"
// @Param        local_id    query  string  false  "ID do local"
// @Param        produto_id  query  string  false  "filtrar por produto"
// @Param        tipo        query  string  false  "tipo de movimentação"
// @Param        de          query  string  false  "data inicial (RFC3339)"
// @Param        ate         query  string  false  "data final (RFC3339)"
// @Param        limit       query  int     false  "máximo de itens (default 50)"
// @Param        offset      query  int     false  "deslocamento"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	f := repository.MovimentacaoFilter{
		LocalTipo: c.Query("local_tipo"),
		LocalID:   c.Query("local_id"),
		ProdutoID: c.Query("produto_id"),
		Tipo:      c.Query("tipo"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.Query("de"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro de inválido (RFC3339)"})
		}
		f.De = &t
	}
	if raw := c.Query("ate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro ate inválido (RFC3339)"})
		}
		f.Ate = &t
	}

	movs, err := h.uc.List(f)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *toMovimentacaoResponse(m))
	}
	return c.JSON(dto.MovimentacaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:            m.ID,
		TransacaoID:   m.TransacaoID,
		Tipo:          m.Tipo,
		ProdutoID:     m.ProdutoID,
		OrigemTipo:    m.OrigemTipo,
		OrigemID:      m.OrigemID,
		DestinoTipo:   m.DestinoTipo,
		DestinoID:     m.DestinoID,
		Quantidade:    m.Quantidade,
		Justificativa: m.Justificativa,
		EstornoDe:     m.EstornoDe,
		Data:          m.Data,
		CreatedBy:     m.CreatedBy,
	}
}
