package entity

import "github.com/shopspring/decimal"

// SaldoEstoque linha da aba Estoque Atual. Totais e saldo são derivados de
// fórmulas recalculadas pelo motor da planilha ao abrir o arquivo; quando o
// valor calculado não está disponível no arquivo o campo fica nil.
type SaldoEstoque struct {
	CodigoProduto  string
	EstoqueInicial decimal.Decimal
	TotalEntradas  *decimal.Decimal
	TotalSaidas    *decimal.Decimal
	SaldoAtual     *decimal.Decimal
}

// Status da aba Estoque Crítico.
const (
	StatusRepor = "REPOR"
	StatusOK    = "OK"
)

// EstoqueCritico linha da aba Estoque Crítico, derivada por fórmulas de
// lookup sobre Base e Estoque Atual.
type EstoqueCritico struct {
	NomeProduto   string
	EstoqueAtual  *decimal.Decimal
	EstoqueMinimo *decimal.Decimal
	Status        string
}
