package dto

import "github.com/shopspring/decimal"

// RegistrarEntradaRequest entrada para registrar uma entrada de estoque.
// Data no formato DD/MM/YYYY; vazia usa a data de hoje. Documento vazio gera
// uma referência NF-<timestamp>.
type RegistrarEntradaRequest struct {
	Data          string          `json:"data"`
	Documento     string          `json:"documento"`
	CodigoProduto string          `json:"codigo_produto" validate:"required"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// RegistrarSaidaRequest entrada para registrar uma saída de estoque.
// ConfirmarSemSaldo autoriza a saída mesmo quando a quantidade excede o
// saldo conhecido (o padrão é avisar, não bloquear).
type RegistrarSaidaRequest struct {
	Data              string          `json:"data"`
	CodigoProduto     string          `json:"codigo_produto" validate:"required"`
	Quantidade        decimal.Decimal `json:"quantidade"`
	Motivo            string          `json:"motivo"`
	ConfirmarSemSaldo bool            `json:"confirmar_sem_saldo"`
}

// EntradaResponse saída de um evento de entrada.
type EntradaResponse struct {
	Data          string          `json:"data"`
	Documento     string          `json:"documento"`
	CodigoProduto string          `json:"codigo_produto"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
}

// SaidaResponse saída de um evento de saída.
type SaidaResponse struct {
	Data          string          `json:"data"`
	CodigoProduto string          `json:"codigo_produto"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	Motivo        string          `json:"motivo"`
}
