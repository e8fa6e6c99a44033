package repository

import "github.com/estoquelab/controle-estoque/internal/domain/entity"

// SaldoRepository porta de leitura das abas derivadas Estoque Atual e
// Estoque Crítico. As implementações são read-only: essas abas só recebem
// escrita via fórmulas inseridas no cadastro de produtos.
type SaldoRepository interface {
	// GetByCodigo devolve o saldo do produto ou (nil, nil) se não houver
	// linha para o código. Saldo ilegível não é erro: o campo fica nil.
	GetByCodigo(codigo string) (*entity.SaldoEstoque, error)
	List() ([]*entity.SaldoEstoque, error)
	ListCritico() ([]*entity.EstoqueCritico, error)
}
