package estoque

import (
	"context"

	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do motor de estoque.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		loteRepo repository.LoteRepository,
	) error) error

	// RunDemanda abre uma transação com os repositórios necessários ao
	// atendimento de demanda (estoque + livro-razão + demanda).
	RunDemanda(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
		demandaRepo repository.DemandaRepository,
	) error) error
}
