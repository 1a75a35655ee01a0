package repository

import (
	"time"

	"github.com/pluckapp/almox-api/internal/domain/entity"
)

// EstoqueRepository define o porto para consultar/atualizar saldo por
// produto+local. Usado dentro de transações para garantir consistência.
type EstoqueRepository interface {
	Get(produtoID, localTipo, localID string) (*entity.Estoque, error)
	// GetForUpdate bloqueia a linha para update (SELECT FOR UPDATE).
	GetForUpdate(produtoID, localTipo, localID string) (*entity.Estoque, error)
	Upsert(e *entity.Estoque) error
	ListByLocal(localTipo, localID string) ([]*entity.Estoque, error)
	// ListByProduto devolve os saldos de um produto em todos os locais com
	// disponibilidade, insumo do ranking de origens.
	ListByProduto(produtoID string) ([]*entity.Estoque, error)
	// ListByCentral agrega os saldos de toda a subárvore de uma central.
	ListByCentral(centralID string) ([]*entity.Estoque, error)
	// ListAll devolve todos os saldos não-zerados (visão da hierarquia).
	ListAll() ([]*entity.Estoque, error)
}

// MovimentacaoFilter filtros do listado do livro-razão.
type MovimentacaoFilter struct {
	LocalTipo string
	LocalID   string
	ProdutoID string
	Tipo      string
	De        *time.Time
	Ate       *time.Time
	Limit     int
	Offset    int
}

// MovimentacaoRepository define o porto de persistência do livro-razão.
// Registros são imutáveis: não há Update nem Delete.
type MovimentacaoRepository interface {
	Create(m *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
	// GetByIDForUpdate bloqueia a linha da movimentação (SELECT FOR UPDATE).
	// Serializa estornos concorrentes da mesma movimentação.
	GetByIDForUpdate(id string) (*entity.Movimentacao, error)
	// GetEstornoDe devolve o estorno já registrado para uma movimentação, se houver.
	GetEstornoDe(movimentacaoID string) (*entity.Movimentacao, error)
	List(f MovimentacaoFilter) ([]*entity.Movimentacao, error)
}
