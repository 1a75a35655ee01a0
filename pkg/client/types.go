package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos espelho do formato JSON da API. Mantidos aqui para que consumidores
// externos do SDK não dependam dos pacotes internos do servidor.

// Usuario usuário autenticado.
type Usuario struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Nome    string `json:"nome"`
	Perfil  string `json:"perfil"`
	SetorID string `json:"setor_id,omitempty"`
}

// LoginResponse resposta de POST /auth/login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

// Central nível raiz da hierarquia.
type Central struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Almoxarifado depósito de uma central.
type Almoxarifado struct {
	ID        string `json:"id"`
	CentralID string `json:"central_id"`
	Nome      string `json:"nome"`
}

// SubAlmoxarifado subdivisão de um almoxarifado.
type SubAlmoxarifado struct {
	ID             string `json:"id"`
	AlmoxarifadoID string `json:"almoxarifado_id"`
	Nome           string `json:"nome"`
}

// Setor ponto de consumo; pode estar vinculado a N sub-almoxarifados.
type Setor struct {
	ID                 string   `json:"id"`
	AlmoxarifadoID     string   `json:"almoxarifado_id"`
	Nome               string   `json:"nome"`
	SubAlmoxarifadoIDs []string `json:"sub_almoxarifado_ids"`
}

// Categoria categoria de produto.
type Categoria struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// Produto item do catálogo.
type Produto struct {
	ID           string `json:"id"`
	Codigo       string `json:"codigo"`
	Nome         string `json:"nome"`
	CategoriaID  string `json:"categoria_id"`
	Unidade      string `json:"unidade"`
	ControleLote bool   `json:"controle_lote"`
}

// PermiteFracao indica se a unidade do produto admite quantidade fracionada.
func (p Produto) PermiteFracao() bool {
	switch p.Unidade {
	case "KG", "L", "MT":
		return true
	}
	return false
}

// EstoqueItem saldo de um produto em um local.
type EstoqueItem struct {
	ProdutoID   string          `json:"produto_id"`
	ProdutoNome string          `json:"produto_nome,omitempty"`
	LocalTipo   string          `json:"local_tipo"`
	LocalID     string          `json:"local_id"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Disponivel  decimal.Decimal `json:"quantidade_disponivel"`
}

// OrigemEstoque local candidato com disponibilidade para um produto.
type OrigemEstoque struct {
	OrigemTipo string          `json:"origem_tipo"`
	OrigemID   string          `json:"origem_id"`
	OrigemNome string          `json:"origem_nome"`
	Disponivel decimal.Decimal `json:"quantidade_disponivel"`
}

// Movimentacao uma linha do livro-razão.
type Movimentacao struct {
	ID          string          `json:"id"`
	TransacaoID string          `json:"transacao_id,omitempty"`
	Tipo        string          `json:"tipo"`
	ProdutoID   string          `json:"produto_id"`
	OrigemTipo  string          `json:"origem_tipo,omitempty"`
	OrigemID    string          `json:"origem_id,omitempty"`
	DestinoTipo string          `json:"destino_tipo,omitempty"`
	DestinoID   string          `json:"destino_id,omitempty"`
	Quantidade  decimal.Decimal `json:"quantidade"`
	Data        time.Time       `json:"data"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

type origensResponse struct {
	Origens map[string][]OrigemEstoque `json:"origens"`
}
