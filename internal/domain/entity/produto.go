package entity

import "github.com/shopspring/decimal"

// Produto registro mestre da aba Base. O código segue o padrão P### e é
// atribuído sequencialmente no cadastro; produtos nunca são removidos.
type Produto struct {
	Codigo        string // único, estável (P001, P002, ...)
	Nome          string
	Descricao     string
	Categoria     string // "Tipo de Produto" na planilha
	EstoqueMinimo decimal.Decimal
	ValorUnitario decimal.Decimal
	Fornecedor    string
	Localizacao   string
}

// Valores padrão aplicados no cadastro quando o operador não informa o campo.
const (
	CategoriaPadrao   = "Outros"
	FornecedorPadrao  = "N/D"
	LocalizacaoPadrao = "N/D"
)
