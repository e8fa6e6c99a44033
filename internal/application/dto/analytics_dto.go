package dto

import "github.com/shopspring/decimal"

// ProdutoCriticoDTO item da lista de reposição no resumo de KPIs.
type ProdutoCriticoDTO struct {
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	SaldoAtual    decimal.Decimal `json:"saldo_atual"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	Deficit       decimal.Decimal `json:"deficit"`
}

// ProdutoMaisMovimentadoDTO produto com maior movimentação absoluta.
// Nil no resumo quando não há movimentos.
type ProdutoMaisMovimentadoDTO struct {
	Codigo string          `json:"codigo"`
	Nome   string          `json:"nome"`
	Total  decimal.Decimal `json:"total"` // soma de |quantidade|
}

// ContagemDTO nome mais frequente de uma coluna e quantas vezes ocorre.
// Nil no resumo quando a tabela de origem está vazia.
type ContagemDTO struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// ResumoKPIDTO resumo dos indicadores do estoque. KPIs sem dados degradam
// para zero/nil em vez de falhar.
type ResumoKPIDTO struct {
	TotalProdutos      int                        `json:"total_produtos"`
	ValorTotalEstoque  decimal.Decimal            `json:"valor_total_estoque"`
	ProdutosCriticos   []ProdutoCriticoDTO        `json:"produtos_criticos"`
	TotalEntradas      int                        `json:"total_entradas"`
	TotalSaidas        int                        `json:"total_saidas"`
	MaisMovimentado    *ProdutoMaisMovimentadoDTO `json:"mais_movimentado"`
	CategoriaPrincipal *ContagemDTO               `json:"categoria_principal"`
	FornecedorPrincipal *ContagemDTO              `json:"fornecedor_principal"`
}
