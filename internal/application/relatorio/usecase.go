package relatorio

import (
	"fmt"
	"time"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// GeradorPDF renderiza o relatório de consumo em PDF.
// Implementado em infrastructure/pdf com maroto.
type GeradorPDF interface {
	RelatorioConsumo(periodo string, rows []repository.ConsumoSetorRow) ([]byte, error)
}

// UseCase relatórios agregados e painel.
type UseCase struct {
	repo repository.RelatorioRepository
	pdf  GeradorPDF
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.RelatorioRepository, pdf GeradorPDF) *UseCase {
	return &UseCase{repo: repo, pdf: pdf}
}

// ConsumoSetores devolve o consumo agregado por setor e produto no período.
func (uc *UseCase) ConsumoSetores(inicio, fim time.Time) ([]dto.ConsumoSetorDTO, error) {
	if fim.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.ConsumoSetores(inicio, fim)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsumoSetorDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ConsumoSetorDTO{
			SetorID:     r.SetorID,
			SetorNome:   r.SetorNome,
			ProdutoID:   r.ProdutoID,
			ProdutoNome: r.ProdutoNome,
			Unidade:     r.Unidade,
			Total:       r.Total,
		})
	}
	return out, nil
}

// ConsumoSetoresPDF renderiza o mesmo relatório em PDF.
func (uc *UseCase) ConsumoSetoresPDF(inicio, fim time.Time) ([]byte, error) {
	if fim.Before(inicio) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.ConsumoSetores(inicio, fim)
	if err != nil {
		return nil, err
	}
	periodo := fmt.Sprintf("%s a %s", inicio.Format("02/01/2006"), fim.Format("02/01/2006"))
	return uc.pdf.RelatorioConsumo(periodo, rows)
}

// Dashboard devolve os contadores do painel inicial.
func (uc *UseCase) Dashboard() (*dto.DashboardStatsResponse, error) {
	stats, err := uc.repo.Dashboard(time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProdutos:     stats.TotalProdutos,
		DemandasPendentes: stats.DemandasPendentes,
		MovimentacoesHoje: stats.MovimentacoesHoje,
		LotesCriticos:     stats.LotesCriticos,
		LotesVencidos:     stats.LotesVencidos,
	}, nil
}
