package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// ErrPlanilhaNaoEncontrada o arquivo da planilha não existe; o operador
	// precisa gerá-la primeiro.
	ErrPlanilhaNaoEncontrada = errors.New("planilha não encontrada")

	// ErrPlanilhaAberta o arquivo está aberto em outro programa; fechar e
	// tentar novamente (nenhuma retentativa automática).
	ErrPlanilhaAberta = errors.New("planilha aberta em outro programa")
)

// SaldoInsuficienteError saída maior que o saldo conhecido. Não bloqueia a
// operação: o chamador pode repetir com confirmação explícita.
type SaldoInsuficienteError struct {
	Codigo     string
	Saldo      decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *SaldoInsuficienteError) Error() string {
	return fmt.Sprintf("saldo insuficiente para %s: saldo %s, solicitado %s",
		e.Codigo, e.Saldo.String(), e.Solicitado.String())
}
