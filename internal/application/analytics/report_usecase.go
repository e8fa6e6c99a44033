// Package analytics calcula os KPIs do estoque sobre o modelo estrela.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// geradorModelo é o pedaço do caso de uso de BI que este relatório consome.
type geradorModelo interface {
	GerarModelo() (*bi.Modelo, error)
}

// ReportUseCase monta o resumo de KPIs a partir do modelo estrela.
type ReportUseCase struct {
	modelo geradorModelo
}

// NewReportUseCase constrói o caso de uso de relatório.
func NewReportUseCase(modelo geradorModelo) *ReportUseCase {
	return &ReportUseCase{modelo: modelo}
}

// Resumo calcula todos os indicadores. KPIs sem dados de origem degradam
// para zero ou nil; só erros de leitura da planilha interrompem.
func (uc *ReportUseCase) Resumo() (*dto.ResumoKPIDTO, error) {
	m, err := uc.modelo.GerarModelo()
	if err != nil {
		return nil, err
	}
	return ResumoDoModelo(m), nil
}

// ResumoDoModelo é o cálculo puro dos KPIs, separado para reuso nos
// exportadores de gráfico e PDF que já carregaram o modelo.
func ResumoDoModelo(m *bi.Modelo) *dto.ResumoKPIDTO {
	resumo := &dto.ResumoKPIDTO{
		TotalProdutos:     len(m.Produtos),
		ValorTotalEstoque: valorTotalEstoque(m.Estoque),
		ProdutosCriticos:  produtosCriticos(m.Estoque),
	}

	for _, mov := range m.Movimentacoes {
		if mov.Tipo == entity.MovimentoEntrada {
			resumo.TotalEntradas++
		} else {
			resumo.TotalSaidas++
		}
	}

	resumo.MaisMovimentado = maisMovimentado(m)
	resumo.CategoriaPrincipal = maisFrequente(m.Produtos, func(p bi.DimProduto) string { return p.Categoria })
	resumo.FornecedorPrincipal = maisFrequente(m.Produtos, func(p bi.DimProduto) string { return p.Fornecedor })
	return resumo
}

func valorTotalEstoque(estoque []bi.FatoEstoque) decimal.Decimal {
	total := decimal.Zero
	for _, e := range estoque {
		if e.ValorTotal != nil {
			total = total.Add(*e.ValorTotal)
		}
	}
	return total
}

func produtosCriticos(estoque []bi.FatoEstoque) []dto.ProdutoCriticoDTO {
	var criticos []dto.ProdutoCriticoDTO
	for _, e := range estoque {
		if e.Status != bi.StatusCritico {
			continue
		}
		item := dto.ProdutoCriticoDTO{
			Codigo:  e.CodigoProduto,
			Deficit: e.Deficit,
		}
		if e.NomeProduto != nil {
			item.Nome = *e.NomeProduto
		}
		if e.SaldoAtual != nil {
			item.SaldoAtual = *e.SaldoAtual
		}
		if e.EstoqueMinimo != nil {
			item.EstoqueMinimo = *e.EstoqueMinimo
		}
		criticos = append(criticos, item)
	}
	return criticos
}

// maisMovimentado soma |quantidade| por produto e devolve o maior; empate
// resolvido pela ordem de primeira ocorrência nas movimentações.
func maisMovimentado(m *bi.Modelo) *dto.ProdutoMaisMovimentadoDTO {
	if len(m.Movimentacoes) == 0 {
		return nil
	}

	totais := map[string]decimal.Decimal{}
	var ordem []string
	for _, mov := range m.Movimentacoes {
		if _, ok := totais[mov.CodigoProduto]; !ok {
			ordem = append(ordem, mov.CodigoProduto)
		}
		totais[mov.CodigoProduto] = totais[mov.CodigoProduto].Add(mov.Quantidade.Abs())
	}

	var top *dto.ProdutoMaisMovimentadoDTO
	for _, codigo := range ordem {
		total := totais[codigo]
		if top == nil || total.GreaterThan(top.Total) {
			top = &dto.ProdutoMaisMovimentadoDTO{Codigo: codigo, Total: total}
		}
	}

	for _, p := range m.Produtos {
		if p.CodigoProduto == top.Codigo {
			top.Nome = p.NomeProduto
			break
		}
	}
	return top
}

// maisFrequente conta valores da coluna extraída e devolve o mais comum;
// empate resolvido pela ordem de primeira ocorrência na dimensão.
func maisFrequente(produtos []bi.DimProduto, coluna func(bi.DimProduto) string) *dto.ContagemDTO {
	if len(produtos) == 0 {
		return nil
	}

	contagem := map[string]int{}
	var ordem []string
	for _, p := range produtos {
		v := coluna(p)
		if _, ok := contagem[v]; !ok {
			ordem = append(ordem, v)
		}
		contagem[v]++
	}

	var top *dto.ContagemDTO
	for _, nome := range ordem {
		if top == nil || contagem[nome] > top.Quantidade {
			top = &dto.ContagemDTO{Nome: nome, Quantidade: contagem[nome]}
		}
	}
	return top
}
