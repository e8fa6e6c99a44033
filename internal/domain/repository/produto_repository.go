package repository

import "github.com/estoquelab/controle-estoque/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
// Create insere a linha mestre e as linhas derivadas de saldo e estoque
// crítico em um único ciclo load-modify-save da planilha.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByCodigo(codigo string) (*entity.Produto, error)
	List() ([]*entity.Produto, error)
}
