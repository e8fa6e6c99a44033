package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

type modeloFake struct {
	modelo *bi.Modelo
	err    error
}

func (f *modeloFake) GerarModelo() (*bi.Modelo, error) { return f.modelo, f.err }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func modeloTeste(t *testing.T) *bi.Modelo {
	t.Helper()
	produtos := []*entity.Produto{
		{Codigo: "P001", Nome: "Parafuso", Categoria: "Ferragens", Fornecedor: "ACME", EstoqueMinimo: dec("10"), ValorUnitario: dec("2")},
		{Codigo: "P002", Nome: "Porca", Categoria: "Ferragens", Fornecedor: "Beta", EstoqueMinimo: dec("5"), ValorUnitario: dec("1")},
		{Codigo: "P003", Nome: "Cabo", Categoria: "Elétrica", Fornecedor: "ACME", EstoqueMinimo: dec("3"), ValorUnitario: dec("7")},
	}
	entradas := []*entity.Entrada{
		{Data: "15/03/2024", Documento: "NF-1", CodigoProduto: "P001", Quantidade: dec("10"), ValorUnitario: dec("2")},
		{Data: "16/03/2024", Documento: "NF-2", CodigoProduto: "P002", Quantidade: dec("5"), ValorUnitario: dec("1")},
	}
	saidas := []*entity.Saida{
		{Data: "17/03/2024", CodigoProduto: "P001", Quantidade: dec("12"), Motivo: "Venda"},
	}
	s1, s2, s3 := dec("8"), dec("5"), dec("6")
	saldos := []*entity.SaldoEstoque{
		{CodigoProduto: "P001", EstoqueInicial: dec("10"), SaldoAtual: &s1},
		{CodigoProduto: "P002", EstoqueInicial: dec("0"), SaldoAtual: &s2},
		{CodigoProduto: "P003", EstoqueInicial: dec("6"), SaldoAtual: &s3},
	}
	return bi.Transformar(produtos, entradas, saidas, saldos, time.Now())
}

func TestResumoCompleto(t *testing.T) {
	uc := analytics.NewReportUseCase(&modeloFake{modelo: modeloTeste(t)})

	resumo, err := uc.Resumo()
	require.NoError(t, err)

	assert.Equal(t, 3, resumo.TotalProdutos)
	assert.Equal(t, 2, resumo.TotalEntradas)
	assert.Equal(t, 1, resumo.TotalSaidas)
	// 8×2 + 5×1 + 6×7 = 63
	assert.True(t, resumo.ValorTotalEstoque.Equal(dec("63")), "valor total soma saldo × valor unitário")

	require.Len(t, resumo.ProdutosCriticos, 1, "só P001 está abaixo do mínimo")
	critico := resumo.ProdutosCriticos[0]
	assert.Equal(t, "P001", critico.Codigo)
	assert.Equal(t, "Parafuso", critico.Nome)
	assert.True(t, critico.Deficit.Equal(dec("2")))

	require.NotNil(t, resumo.MaisMovimentado)
	assert.Equal(t, "P001", resumo.MaisMovimentado.Codigo)
	assert.True(t, resumo.MaisMovimentado.Total.Equal(dec("22")), "10 de entrada + |−12| de saída")

	require.NotNil(t, resumo.CategoriaPrincipal)
	assert.Equal(t, "Ferragens", resumo.CategoriaPrincipal.Nome)
	assert.Equal(t, 2, resumo.CategoriaPrincipal.Quantidade)

	require.NotNil(t, resumo.FornecedorPrincipal)
	assert.Equal(t, "ACME", resumo.FornecedorPrincipal.Nome)
}

func TestResumoSemDados(t *testing.T) {
	uc := analytics.NewReportUseCase(&modeloFake{modelo: &bi.Modelo{}})

	resumo, err := uc.Resumo()
	require.NoError(t, err, "modelo vazio não é erro")

	assert.Zero(t, resumo.TotalProdutos)
	assert.True(t, resumo.ValorTotalEstoque.IsZero())
	assert.Empty(t, resumo.ProdutosCriticos)
	assert.Nil(t, resumo.MaisMovimentado)
	assert.Nil(t, resumo.CategoriaPrincipal)
	assert.Nil(t, resumo.FornecedorPrincipal)
}

func TestResumoErroDeLeitura(t *testing.T) {
	falha := errors.New("planilha corrompida")
	uc := analytics.NewReportUseCase(&modeloFake{err: falha})

	_, err := uc.Resumo()
	require.ErrorIs(t, err, falha)
}
