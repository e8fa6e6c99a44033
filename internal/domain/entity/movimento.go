package entity

import "github.com/shopspring/decimal"

// FormatoData formato textual das datas nas abas de movimentação.
const FormatoData = "02/01/2006" // DD/MM/YYYY

// Tipos de movimentação no modelo analítico.
const (
	MovimentoEntrada = "Entrada"
	MovimentoSaida   = "Saída"
)

// MotivosSaida motivos sugeridos ao operador; texto livre também é aceito.
var MotivosSaida = []string{
	"Uso em produção",
	"Venda",
	"Consumo interno",
	"Perda/Avaria",
}

// Entrada evento de entrada de estoque (aba Entradas, append-only).
// Data fica no formato textual da planilha; a validação acontece no registro
// e o parse analítico tolera lixo editado à mão. O valor total é gravado na
// planilha como fórmula, não como literal.
type Entrada struct {
	Data          string // DD/MM/YYYY
	Documento     string // nota fiscal / nº de compra; gerado se vazio
	CodigoProduto string
	Quantidade    decimal.Decimal // > 0
	ValorUnitario decimal.Decimal
}

// ValorTotal quantidade × valor unitário de compra.
func (e Entrada) ValorTotal() decimal.Decimal {
	return e.Quantidade.Mul(e.ValorUnitario)
}

// Saida evento de saída de estoque (aba Saídas, append-only). O saldo nunca
// é decrementado diretamente: é sempre re-derivado do histórico completo.
type Saida struct {
	Data          string // DD/MM/YYYY
	CodigoProduto string
	Quantidade    decimal.Decimal // > 0
	Motivo        string
}
