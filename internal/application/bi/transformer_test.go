package bi_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func produtoTeste(codigo, nome, categoria, fornecedor string, minimo, valor string) *entity.Produto {
	return &entity.Produto{
		Codigo:        codigo,
		Nome:          nome,
		Descricao:     nome,
		Categoria:     categoria,
		EstoqueMinimo: dec(minimo),
		ValorUnitario: dec(valor),
		Fornecedor:    fornecedor,
		Localizacao:   "A1",
	}
}

func TestTransformarMovimentacoes(t *testing.T) {
	entradas := []*entity.Entrada{
		{Data: "15/03/2024", Documento: "NF-100", CodigoProduto: "P001", Quantidade: dec("10"), ValorUnitario: dec("25.50")},
		{Data: "16/03/2024", Documento: "NF-101", CodigoProduto: "P002", Quantidade: dec("5"), ValorUnitario: dec("4")},
	}
	saidas := []*entity.Saida{
		{Data: "17/03/2024", CodigoProduto: "P001", Quantidade: dec("3"), Motivo: "Venda"},
	}

	m := bi.Transformar(nil, entradas, saidas, nil, time.Now())

	require.Len(t, m.Movimentacoes, 3, "uma linha por entrada e por saída")

	// Entradas primeiro, na ordem original.
	assert.Equal(t, entity.MovimentoEntrada, m.Movimentacoes[0].Tipo)
	assert.Equal(t, "NF-100", m.Movimentacoes[0].Documento)
	assert.True(t, m.Movimentacoes[0].Quantidade.Equal(dec("10")), "entrada mantém quantidade positiva")
	require.NotNil(t, m.Movimentacoes[0].ValorUnitario)
	assert.True(t, m.Movimentacoes[0].ValorUnitario.Equal(dec("25.50")))

	// Saída: quantidade negada, motivo no documento, valor desconhecido.
	saida := m.Movimentacoes[2]
	assert.Equal(t, entity.MovimentoSaida, saida.Tipo)
	assert.True(t, saida.Quantidade.Equal(dec("-3")), "saída vira quantidade negativa")
	assert.Equal(t, "Venda", saida.Documento)
	assert.Nil(t, saida.ValorUnitario)
}

func TestTransformarApenasSaida(t *testing.T) {
	saidas := []*entity.Saida{
		{Data: "17/03/2024", CodigoProduto: "P001", Quantidade: dec("3"), Motivo: "Consumo interno"},
	}

	m := bi.Transformar(nil, nil, saidas, nil, time.Now())

	require.Len(t, m.Movimentacoes, 1)
	mov := m.Movimentacoes[0]
	assert.Equal(t, entity.MovimentoSaida, mov.Tipo)
	assert.True(t, mov.Quantidade.Equal(dec("-3")))
}

func TestTransformarCalendario(t *testing.T) {
	entradas := []*entity.Entrada{
		{Data: "15/03/2024", Documento: "NF-1", CodigoProduto: "P001", Quantidade: dec("1"), ValorUnitario: dec("1")},
	}

	m := bi.Transformar(nil, entradas, nil, nil, time.Now())

	mov := m.Movimentacoes[0]
	require.NotNil(t, mov.Data)
	require.NotNil(t, mov.Ano)
	assert.Equal(t, 2024, *mov.Ano)
	assert.Equal(t, 3, *mov.Mes)
	assert.Equal(t, "Março", mov.MesNome)
	assert.Equal(t, 15, *mov.Dia)
	assert.Equal(t, "Sexta-feira", mov.DiaSemana)
	assert.Equal(t, 1, *mov.Trimestre)
}

func TestTransformarDataIlegivel(t *testing.T) {
	entradas := []*entity.Entrada{
		{Data: "data inválida", Documento: "NF-1", CodigoProduto: "P001", Quantidade: dec("1"), ValorUnitario: dec("1")},
	}

	m := bi.Transformar(nil, entradas, nil, nil, time.Now())

	mov := m.Movimentacoes[0]
	assert.Nil(t, mov.Data, "data ilegível não derruba a transformação")
	assert.Nil(t, mov.Ano)
	assert.Nil(t, mov.Mes)
	assert.Nil(t, mov.Dia)
	assert.Nil(t, mov.Trimestre)
	assert.Empty(t, mov.MesNome)
	assert.Empty(t, mov.DiaSemana)
	assert.Equal(t, "P001", mov.CodigoProduto, "o resto da linha sobrevive")
}

func TestTransformarDimensoes(t *testing.T) {
	produtos := []*entity.Produto{
		produtoTeste("P001", "Parafuso", "Ferragens", "ACME", "10", "2"),
		produtoTeste("P002", "Porca", "Ferragens", "Beta", "5", "1"),
		produtoTeste("P003", "Cabo", "Elétrica", "ACME", "3", "7"),
	}

	m := bi.Transformar(produtos, nil, nil, nil, time.Now())

	require.Len(t, m.Produtos, 3)
	assert.Equal(t, "P001", m.Produtos[0].CodigoProduto)

	// Chaves densas 1..N na ordem da primeira ocorrência.
	require.Len(t, m.Fornecedores, 2)
	assert.Equal(t, bi.DimFornecedor{ID: 1, Nome: "ACME"}, m.Fornecedores[0])
	assert.Equal(t, bi.DimFornecedor{ID: 2, Nome: "Beta"}, m.Fornecedores[1])

	require.Len(t, m.Categorias, 2)
	assert.Equal(t, bi.DimCategoria{ID: 1, Nome: "Ferragens"}, m.Categorias[0])
	assert.Equal(t, bi.DimCategoria{ID: 2, Nome: "Elétrica"}, m.Categorias[1])
}

func TestTransformarFatoEstoque(t *testing.T) {
	referencia := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	produtos := []*entity.Produto{
		produtoTeste("P001", "Parafuso", "Ferragens", "ACME", "10", "2.50"),
		produtoTeste("P002", "Porca", "Ferragens", "Beta", "5", "1"),
	}
	saldo1 := dec("8")
	saldo2 := dec("5")
	saldos := []*entity.SaldoEstoque{
		{CodigoProduto: "P001", EstoqueInicial: dec("0"), SaldoAtual: &saldo1},
		{CodigoProduto: "P002", EstoqueInicial: dec("0"), SaldoAtual: &saldo2},
	}

	m := bi.Transformar(produtos, nil, nil, saldos, referencia)

	require.Len(t, m.Estoque, 2)

	// Saldo 8 abaixo do mínimo 10 → crítico com déficit 2.
	critico := m.Estoque[0]
	assert.Equal(t, referencia, critico.DataReferencia)
	assert.Equal(t, bi.StatusCritico, critico.Status)
	assert.True(t, critico.Deficit.Equal(dec("2")))
	require.NotNil(t, critico.NomeProduto)
	assert.Equal(t, "Parafuso", *critico.NomeProduto)
	require.NotNil(t, critico.ValorTotal)
	assert.True(t, critico.ValorTotal.Equal(dec("20")), "8 × 2.50")

	// Saldo igual ao mínimo não é crítico.
	normal := m.Estoque[1]
	assert.Equal(t, bi.StatusNormal, normal.Status)
	assert.True(t, normal.Deficit.IsZero())
}

func TestTransformarSaldoSemProduto(t *testing.T) {
	saldo := dec("4")
	saldos := []*entity.SaldoEstoque{
		{CodigoProduto: "P999", EstoqueInicial: dec("0"), SaldoAtual: &saldo},
	}

	m := bi.Transformar(nil, nil, nil, saldos, time.Now())

	require.Len(t, m.Estoque, 1, "saldo órfão não é descartado")
	f := m.Estoque[0]
	assert.Nil(t, f.NomeProduto)
	assert.Nil(t, f.ValorTotal)
	assert.Equal(t, bi.StatusNormal, f.Status, "mínimo desconhecido não marca crítico")
	assert.True(t, f.Deficit.IsZero())
}

func TestTabelasCoerentesComModelo(t *testing.T) {
	produtos := []*entity.Produto{produtoTeste("P001", "Parafuso", "Ferragens", "ACME", "10", "2")}
	entradas := []*entity.Entrada{
		{Data: "15/03/2024", Documento: "NF-1", CodigoProduto: "P001", Quantidade: dec("10"), ValorUnitario: dec("2")},
	}
	saldo := dec("10")
	saldos := []*entity.SaldoEstoque{{CodigoProduto: "P001", EstoqueInicial: dec("0"), SaldoAtual: &saldo}}

	m := bi.Transformar(produtos, entradas, nil, saldos, time.Now())

	for _, tab := range bi.Tabelas() {
		if tab.Linhas == nil {
			continue // dim_tempo só existe no DDL
		}
		for _, linha := range tab.Linhas(m) {
			assert.Len(t, linha, len(tab.Colunas), "linha de %s com aridade da tabela", tab.Nome)
		}
	}
}
