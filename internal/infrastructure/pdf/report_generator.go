// Package pdf implementa a geração do relatório de estoque em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do relatório  │  Data de geração            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: produtos / valor total / entradas / saídas    │
//	│  DESTAQUES: mais movimentado / categoria / fornecedor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Código | Produto | Saldo | Mínimo | Déficit        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
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

	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// ── Paleta de cores ──────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 68, Green: 114, Blue: 196}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
	corAlerta   = &props.Color{Red: 192, Green: 0, Blue: 0}
)

// ── Generator ────────────────────────────────────────────────────────────────

// ReportGenerator gera o relatório de KPIs usando Maroto v2.
type ReportGenerator struct {
	Agora func() time.Time
}

// NewReportGenerator constrói o gerador.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{Agora: time.Now}
}

// Gerar monta o relatório a partir do resumo e devolve os bytes do PDF.
func (g *ReportGenerator) Gerar(resumo *dto.ResumoKPIDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.Agora()))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(indicadoresRow(resumo))
	m.AddRows(destaquesRow(resumo))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(criticosTituloRow(len(resumo.ProdutosCriticos)))
	if len(resumo.ProdutosCriticos) > 0 {
		m.AddRows(criticosCabecalhoRow())
		for _, r := range criticosLinhasRows(resumo.ProdutosCriticos) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GerarArquivo grava o relatório no caminho dado.
func (g *ReportGenerator) GerarArquivo(resumo *dto.ResumoKPIDTO, caminho string) error {
	conteudo, err := g.Gerar(resumo)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(caminho), 0o755); err != nil {
		return fmt.Errorf("pdf: criando pasta do relatório: %w", err)
	}
	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		return fmt.Errorf("pdf: gravando %s: %w", caminho, err)
	}
	return nil
}

// ── Seções ───────────────────────────────────────────────────────────────────

// headerRow: título (esq) e data de geração (dir).
func headerRow(agora time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE CONTROLE DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New("Resumo de indicadores e produtos em nível crítico", props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: corCinza,
			}),
			text.New(agora.Format(entity.FormatoData+" 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// indicadoresRow: os quatro contadores principais lado a lado.
func indicadoresRow(resumo *dto.ResumoKPIDTO) core.Row {
	indicador := func(titulo, valor string) core.Col {
		return col.New(3).Add(
			text.New(titulo, props.Text{
				Size: 8, Align: align.Center, Color: corCinza, Top: 2,
			}),
			text.New(valor, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: corPrimaria, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		indicador("Produtos cadastrados", fmt.Sprintf("%d", resumo.TotalProdutos)),
		indicador("Valor em estoque", "R$ "+formatarValor(resumo.ValorTotalEstoque.StringFixed(2))),
		indicador("Entradas registradas", fmt.Sprintf("%d", resumo.TotalEntradas)),
		indicador("Saídas registradas", fmt.Sprintf("%d", resumo.TotalSaidas)),
	)
}

// destaquesRow: os três destaques textuais, com "—" quando não há dados.
func destaquesRow(resumo *dto.ResumoKPIDTO) core.Row {
	maisMov := "—"
	if resumo.MaisMovimentado != nil {
		maisMov = fmt.Sprintf("%s (%s un.)",
			resumo.MaisMovimentado.Nome, resumo.MaisMovimentado.Total.StringFixed(0))
	}
	categoria := "—"
	if resumo.CategoriaPrincipal != nil {
		categoria = fmt.Sprintf("%s (%d produtos)",
			resumo.CategoriaPrincipal.Nome, resumo.CategoriaPrincipal.Quantidade)
	}
	fornecedor := "—"
	if resumo.FornecedorPrincipal != nil {
		fornecedor = fmt.Sprintf("%s (%d produtos)",
			resumo.FornecedorPrincipal.Nome, resumo.FornecedorPrincipal.Quantidade)
	}

	destaque := func(titulo, valor string) core.Col {
		return col.New(4).Add(
			text.New(titulo, props.Text{Size: 8, Color: corCinza, Top: 2}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}),
		)
	}
	return row.New(14).Add(
		destaque("Produto mais movimentado", maisMov),
		destaque("Categoria principal", categoria),
		destaque("Fornecedor principal", fornecedor),
	)
}

// criticosTituloRow: título da seção de reposição.
func criticosTituloRow(total int) core.Row {
	titulo := "PRODUTOS EM NÍVEL CRÍTICO"
	cor := corAlerta
	if total == 0 {
		titulo = "NENHUM PRODUTO EM NÍVEL CRÍTICO"
		cor = corPrimaria
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s (%d)", titulo, total), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: cor, Top: 3,
			}),
		),
	)
}

// criticosCabecalhoRow: cabeçalho da tabela de reposição.
func criticosCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Produto", 4, align.Left),
		h("Saldo atual", 2, align.Right),
		h("Estoque mínimo", 2, align.Right),
		h("Déficit", 2, align.Right),
	)
}

// criticosLinhasRows: uma linha por produto a repor.
func criticosLinhasRows(criticos []dto.ProdutoCriticoDTO) []core.Row {
	result := make([]core.Row, 0, len(criticos))
	for _, c := range criticos {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(c.Codigo, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(c.Nome, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(c.SaldoAtual.StringFixed(0), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(c.EstoqueMinimo.StringFixed(0), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(c.Deficit.StringFixed(0), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: corAlerta, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// formatarValor insere separador de milhar pt-BR em "1234.56" → "1.234,56".
func formatarValor(s string) string {
	inteiro, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if strings.HasPrefix(inteiro, "-") {
		b.WriteByte('-')
		inteiro = inteiro[1:]
	}
	for i, r := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}
