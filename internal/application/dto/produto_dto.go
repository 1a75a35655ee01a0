package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoriaRequest body para POST /api/categorias.
type CreateCategoriaRequest struct {
	Nome    string `json:"nome"`
	Prefixo string `json:"prefixo"`
}

// UpdateCategoriaRequest body para PUT /api/categorias/:id.
type UpdateCategoriaRequest struct {
	Nome    *string `json:"nome,omitempty"`
	Prefixo *string `json:"prefixo,omitempty"`
}

// CategoriaResponse resposta de Categoria.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Prefixo   string    `json:"prefixo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoriaListResponse listado paginado.
type CategoriaListResponse struct {
	Items []CategoriaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CreateProdutoRequest body para POST /api/produtos. Codigo vazio faz o
// servidor gerar um a partir do prefixo da categoria.
type CreateProdutoRequest struct {
	Codigo       string `json:"codigo,omitempty"`
	Nome         string `json:"nome"`
	Descricao    string `json:"descricao,omitempty"`
	CategoriaID  string `json:"categoria_id"`
	Unidade      string `json:"unidade"`
	ControleLote bool   `json:"controle_lote"`
}

// UpdateProdutoRequest body para PUT /api/produtos/:id.
type UpdateProdutoRequest struct {
	Nome         *string `json:"nome,omitempty"`
	Descricao    *string `json:"descricao,omitempty"`
	CategoriaID  *string `json:"categoria_id,omitempty"`
	Unidade      *string `json:"unidade,omitempty"`
	ControleLote *bool   `json:"controle_lote,omitempty"`
}

// ProdutoResponse resposta de Produto.
type ProdutoResponse struct {
	ID           string    `json:"id"`
	Codigo       string    `json:"codigo"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao,omitempty"`
	CategoriaID  string    `json:"categoria_id"`
	Unidade      string    `json:"unidade"`
	ControleLote bool      `json:"controle_lote"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProdutoListResponse listado paginado.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// GerarCodigoResponse resposta de POST /api/produtos/gerar-codigo.
type GerarCodigoResponse struct {
	Codigo string `json:"codigo"`
}

// LoteResponse resposta de Lote. Status é derivado da validade no momento
// da consulta.
type LoteResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	LocalTipo     string          `json:"local_tipo"`
	LocalID       string          `json:"local_id"`
	Numero        string          `json:"numero"`
	Validade      time.Time       `json:"validade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Status        string          `json:"status"`
}
