package bi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// Transformar remodela as abas da planilha no modelo estrela. Função pura e
// determinística: mesma entrada, mesmo modelo; nenhum acesso a arquivo.
//
// A ordem original das linhas é preservada (entradas e depois saídas);
// nenhuma ordenação temporal é aplicada aqui.
func Transformar(
	produtos []*entity.Produto,
	entradas []*entity.Entrada,
	saidas []*entity.Saida,
	saldos []*entity.SaldoEstoque,
	referencia time.Time,
) *Modelo {
	m := &Modelo{
		Movimentacoes: transformarMovimentacoes(entradas, saidas),
		Produtos:      transformarProdutos(produtos),
	}
	m.Fornecedores, m.Categorias = transformarDimensoes(produtos)
	m.Estoque = transformarEstoque(saldos, m.Produtos, referencia)
	return m
}

// transformarMovimentacoes normaliza entradas e saídas no esquema comum do
// fato: saídas com quantidade negada, valor unitário desconhecido e o motivo
// ocupando o campo de documento.
func transformarMovimentacoes(entradas []*entity.Entrada, saidas []*entity.Saida) []Movimentacao {
	movs := make([]Movimentacao, 0, len(entradas)+len(saidas))

	for _, e := range entradas {
		vu := e.ValorUnitario
		mov := Movimentacao{
			Data:          parseData(e.Data),
			CodigoProduto: e.CodigoProduto,
			Quantidade:    e.Quantidade,
			Tipo:          entity.MovimentoEntrada,
			Documento:     e.Documento,
			ValorUnitario: &vu,
		}
		preencherCalendario(&mov)
		movs = append(movs, mov)
	}

	for _, s := range saidas {
		mov := Movimentacao{
			Data:          parseData(s.Data),
			CodigoProduto: s.CodigoProduto,
			Quantidade:    s.Quantidade.Neg(),
			Tipo:          entity.MovimentoSaida,
			Documento:     s.Motivo,
		}
		preencherCalendario(&mov)
		movs = append(movs, mov)
	}

	return movs
}

func transformarProdutos(produtos []*entity.Produto) []DimProduto {
	dim := make([]DimProduto, 0, len(produtos))
	for _, p := range produtos {
		dim = append(dim, DimProduto{
			CodigoProduto: p.Codigo,
			NomeProduto:   p.Nome,
			Descricao:     p.Descricao,
			Categoria:     p.Categoria,
			EstoqueMinimo: p.EstoqueMinimo,
			ValorUnitario: p.ValorUnitario,
			Fornecedor:    p.Fornecedor,
			Localizacao:   p.Localizacao,
		})
	}
	return dim
}

// transformarDimensoes deduplica fornecedores e categorias na ordem da
// primeira ocorrência, atribuindo chaves substitutas densas a partir de 1.
func transformarDimensoes(produtos []*entity.Produto) ([]DimFornecedor, []DimCategoria) {
	var fornecedores []DimFornecedor
	var categorias []DimCategoria
	vistoForn := map[string]bool{}
	vistoCat := map[string]bool{}

	for _, p := range produtos {
		if !vistoForn[p.Fornecedor] {
			vistoForn[p.Fornecedor] = true
			fornecedores = append(fornecedores, DimFornecedor{ID: len(fornecedores) + 1, Nome: p.Fornecedor})
		}
		if !vistoCat[p.Categoria] {
			vistoCat[p.Categoria] = true
			categorias = append(categorias, DimCategoria{ID: len(categorias) + 1, Nome: p.Categoria})
		}
	}
	return fornecedores, categorias
}

// transformarEstoque faz o left join do saldo com a dimensão de produto por
// código. Linhas sem produto correspondente seguem com atributos nil.
func transformarEstoque(saldos []*entity.SaldoEstoque, produtos []DimProduto, referencia time.Time) []FatoEstoque {
	porCodigo := make(map[string]*DimProduto, len(produtos))
	for i := range produtos {
		porCodigo[produtos[i].CodigoProduto] = &produtos[i]
	}

	fatos := make([]FatoEstoque, 0, len(saldos))
	for _, s := range saldos {
		f := FatoEstoque{
			CodigoProduto:  s.CodigoProduto,
			DataReferencia: referencia,
			EstoqueInicial: s.EstoqueInicial,
			TotalEntradas:  s.TotalEntradas,
			TotalSaidas:    s.TotalSaidas,
			SaldoAtual:     s.SaldoAtual,
			Status:         StatusNormal,
			Deficit:        decimal.Zero,
		}

		if p, ok := porCodigo[s.CodigoProduto]; ok {
			nome, cat := p.NomeProduto, p.Categoria
			vu, min := p.ValorUnitario, p.EstoqueMinimo
			f.NomeProduto = &nome
			f.Categoria = &cat
			f.ValorUnitario = &vu
			f.EstoqueMinimo = &min
		}

		if f.SaldoAtual != nil && f.ValorUnitario != nil {
			total := f.SaldoAtual.Mul(*f.ValorUnitario)
			f.ValorTotal = &total
		}
		if f.SaldoAtual != nil && f.EstoqueMinimo != nil {
			if f.SaldoAtual.LessThan(*f.EstoqueMinimo) {
				f.Status = StatusCritico
				f.Deficit = f.EstoqueMinimo.Sub(*f.SaldoAtual)
			}
		}

		fatos = append(fatos, f)
	}
	return fatos
}

// parseData interpreta a data textual DD/MM/YYYY; ilegível → nil, nunca erro.
func parseData(s string) *time.Time {
	t, err := time.Parse(entity.FormatoData, s)
	if err != nil {
		return nil
	}
	return &t
}
