package dto

import "github.com/shopspring/decimal"

// CadastrarProdutoRequest entrada para cadastrar um produto. O código não é
// informado: é gerado sequencialmente a partir da base existente.
type CadastrarProdutoRequest struct {
	Nome          string          `json:"nome" validate:"required,min=1,max=200"`
	Descricao     string          `json:"descricao"`
	Categoria     string          `json:"categoria"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Fornecedor    string          `json:"fornecedor"`
	Localizacao   string          `json:"localizacao"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Categoria     string          `json:"categoria"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Fornecedor    string          `json:"fornecedor"`
	Localizacao   string          `json:"localizacao"`
}

// SaldoResponse saída de uma linha de Estoque Atual. Campos derivados de
// fórmula podem vir nulos quando o arquivo não tem valor calculado.
type SaldoResponse struct {
	CodigoProduto  string           `json:"codigo_produto"`
	EstoqueInicial decimal.Decimal  `json:"estoque_inicial"`
	TotalEntradas  *decimal.Decimal `json:"total_entradas"`
	TotalSaidas    *decimal.Decimal `json:"total_saidas"`
	SaldoAtual     *decimal.Decimal `json:"saldo_atual"`
}

// CriticoResponse saída de uma linha de Estoque Crítico.
type CriticoResponse struct {
	NomeProduto   string           `json:"nome_produto"`
	EstoqueAtual  *decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo *decimal.Decimal `json:"estoque_minimo"`
	Status        string           `json:"status"`
}
