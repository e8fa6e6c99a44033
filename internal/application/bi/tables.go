// Package bi implementa a transformação das cinco abas da planilha no
// modelo estrela consumido por ferramentas de BI: um fato de movimentações,
// um fato de estoque atual e dimensões de produto, fornecedor e categoria.
package bi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do fato de estoque.
const (
	StatusCritico = "Crítico"
	StatusNormal  = "Normal"
)

// Movimentacao linha do fato de movimentações: entradas e saídas unificadas
// num esquema comum. Quantidade carrega o sinal (saídas negativas). Datas
// ilegíveis ficam nil e os atributos de calendário acompanham.
type Movimentacao struct {
	Data          *time.Time
	CodigoProduto string
	Quantidade    decimal.Decimal
	Tipo          string // Entrada | Saída
	Documento     string // nas saídas, o motivo
	ValorUnitario *decimal.Decimal // desconhecido nas saídas

	Ano       *int
	Mes       *int
	MesNome   string
	Dia       *int
	DiaSemana string
	Trimestre *int
}

// DimProduto projeção renomeada da aba Base; o código natural já é único.
type DimProduto struct {
	CodigoProduto string
	NomeProduto   string
	Descricao     string
	Categoria     string
	EstoqueMinimo decimal.Decimal
	ValorUnitario decimal.Decimal
	Fornecedor    string
	Localizacao   string
}

// DimFornecedor valor distinto de fornecedor com chave substituta densa
// (1..N na ordem da primeira ocorrência).
type DimFornecedor struct {
	ID   int
	Nome string
}

// DimCategoria valor distinto de categoria com chave substituta densa.
type DimCategoria struct {
	ID   int
	Nome string
}

// FatoEstoque linha do fato de estoque atual: saldo enriquecido com os
// atributos do produto via left join por código. Linha de saldo sem produto
// correspondente mantém os atributos nil em vez de ser descartada.
type FatoEstoque struct {
	CodigoProduto  string
	DataReferencia time.Time
	EstoqueInicial decimal.Decimal
	TotalEntradas  *decimal.Decimal
	TotalSaidas    *decimal.Decimal
	SaldoAtual     *decimal.Decimal

	NomeProduto   *string
	Categoria     *string
	ValorUnitario *decimal.Decimal
	EstoqueMinimo *decimal.Decimal

	ValorTotal *decimal.Decimal // saldo × valor unitário; nil propaga
	Status     string           // Crítico sse saldo < mínimo; senão Normal
	Deficit    decimal.Decimal  // max(0, mínimo − saldo); nunca negativo
}

// Modelo o conjunto completo de tabelas do modelo estrela. As tabelas são
// independentes: nenhuma integridade referencial é imposta além do join.
type Modelo struct {
	Movimentacoes []Movimentacao
	Produtos      []DimProduto
	Fornecedores  []DimFornecedor
	Categorias    []DimCategoria
	Estoque       []FatoEstoque
}
