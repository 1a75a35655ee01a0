package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/application/usecase"
	"github.com/pluckapp/almox-api/internal/infrastructure/qrcode"
)

// ProdutoHandler trata as requisições HTTP do catálogo de produtos.
type ProdutoHandler struct {
	uc       *usecase.ProdutoUseCase
	loteUC   *usecase.LoteUseCase
	etiqueta *qrcode.GeradorEtiqueta
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, loteUC *usecase.LoteUseCase, etiqueta *qrcode.GeradorEtiqueta) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, loteUC: loteUC, etiqueta: etiqueta}
}

// Create godoc
// @Summary      Criar produto
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "codigo (vazio = gerado), nome, categoria_id, unidade"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
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
// @Summary      Obter produto por ID
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Atualizar produto
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "campos opcionais"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProdutoRequest
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
// @Summary      Listar produtos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de itens (default 50)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar produtos por nome ou código
// @Description  Busca acento- e caixa-insensível.
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "termo de busca"
// @Param        limit  query  int     false  "máximo de itens (default 20)"
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos/search [get]
func (h *ProdutoHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"), c.QueryInt("limit", 20))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GerarCodigo godoc
// @Summary      Gerar próximo código livre
// @Description  Combina o prefixo da categoria com a próxima sequência
// @Description  (ex.: MAT-0007). Não reserva o código.
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        categoria_id  query  string  false  "categoria de onde tirar o prefixo"
// @Success      200  {object}  dto.GerarCodigoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/gerar-codigo [post]
func (h *ProdutoHandler) GerarCodigo(c *fiber.Ctx) error {
	out, err := h.uc.GerarCodigo(c.Query("categoria_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Etiqueta godoc
// @Summary      Etiqueta QR do produto
// @Description  Devolve um PNG com o QR codificando o código do produto.
// @Tags         catalogo
// @Security     Bearer
// @Produce      png
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/etiqueta [get]
func (h *ProdutoHandler) Etiqueta(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if p == nil {
		return notFound(c)
	}
	png, err := h.etiqueta.PNG(p.Codigo)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Lotes godoc
// @Summary      Lotes de um produto
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {array}  dto.LoteResponse
// @Router       /api/produtos/{id}/lotes [get]
func (h *ProdutoHandler) Lotes(c *fiber.Ctx) error {
	out, err := h.loteUC.ListByProduto(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar produto
// @Tags         catalogo
// @Security     Bearer
// @Param        id  path  string  true  "ID do produto"
// @Success      204
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
