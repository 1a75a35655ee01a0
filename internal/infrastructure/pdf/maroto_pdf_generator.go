// Package pdf implementa a geração do relatório de consumo por setor em
// PDF, usando Maroto v2.
//
// Layout da página A4:
//
//	┌───────────────────────────────────────────────────────────┐
//	│  HEADER: Pluck | Almox           │  Período do relatório   │
//	│  ───────────────────────────────────────────────────────  │
//	│  TABELA: Setor | Produto | Unid. | Total consumido         │
//	│  ───────────────────────────────────────────────────────  │
//	│  FOOTER: data de emissão                                   │
//	└───────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apprelatorio "github.com/pluckapp/almox-api/internal/application/relatorio"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 74}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ apprelatorio.GeradorPDF = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa relatorio.GeradorPDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RelatorioConsumo gera o PDF do consumo por setor e devolve seus bytes.
func (g *MarotoPDFGenerator) RelatorioConsumo(periodo string, rows []repository.ConsumoSetorRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Consumo por Setor", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq.) e período (dir.).
func headerRow(periodo string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("Pluck | Almox", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de consumo por setor", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Setor", 4, align.Left),
		h("Produto", 5, align.Left),
		h("Unid.", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// tableRows: uma linha por setor/produto.
func tableRows(rows []repository.ConsumoSetorRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				r.SetorNome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				r.ProdutoNome,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Unidade,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.Total.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func footerRow() core.Row {
	emitido := time.Now().Format("02/01/2006 15:04")
	return row.New(6).Add(
		col.New(12).Add(text.New(
			"Emitido em "+emitido,
			props.Text{Size: 7, Align: align.Right, Top: 1, Color: colorGray},
		)),
	)
}
