package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CreateUsuarioRequest body para POST /api/usuarios.
type CreateUsuarioRequest struct {
	Email   string `json:"email"`
	Senha   string `json:"senha"`
	Nome    string `json:"nome"`
	Perfil  string `json:"perfil"`
	SetorID string `json:"setor_id,omitempty"`
}

// UpdateUsuarioRequest body para PUT /api/usuarios/:id.
type UpdateUsuarioRequest struct {
	Nome    *string `json:"nome,omitempty"`
	Perfil  *string `json:"perfil,omitempty"`
	SetorID *string `json:"setor_id,omitempty"`
	Status  *string `json:"status,omitempty"`
	Senha   *string `json:"senha,omitempty"`
}

// UsuarioResponse resposta de Usuario (nunca expõe o hash da senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	Perfil    string    `json:"perfil"`
	SetorID   string    `json:"setor_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse listado paginado.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ConsumoSetorDTO linha do relatório de consumo por setor.
type ConsumoSetorDTO struct {
	SetorID     string          `json:"setor_id"`
	SetorNome   string          `json:"setor_nome"`
	ProdutoID   string          `json:"produto_id"`
	ProdutoNome string          `json:"produto_nome"`
	Unidade     string          `json:"unidade"`
	Total       decimal.Decimal `json:"total"`
}

// DashboardStatsResponse contadores do painel.
type DashboardStatsResponse struct {
	TotalProdutos     int `json:"total_produtos"`
	DemandasPendentes int `json:"demandas_pendentes"`
	MovimentacoesHoje int `json:"movimentacoes_hoje"`
	LotesCriticos     int `json:"lotes_criticos"`
	LotesVencidos     int `json:"lotes_vencidos"`
}
