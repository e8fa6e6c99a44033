package repository

import "github.com/estoquelab/controle-estoque/internal/domain/entity"

// MovimentoRepository porta de persistência para os eventos de movimentação
// (abas Entradas e Saídas, append-only).
type MovimentoRepository interface {
	AppendEntrada(e *entity.Entrada) error
	AppendSaida(s *entity.Saida) error
	ListEntradas() ([]*entity.Entrada, error)
	ListSaidas() ([]*entity.Saida, error)
}
