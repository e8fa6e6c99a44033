// Package cadastro contém o caso de uso de cadastro de produtos: geração do
// próximo código e inserção da linha mestre com as fórmulas derivadas.
package cadastro

import (
	"strings"

	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/domain"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/internal/domain/estoque"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

// ProdutoUseCase caso de uso de cadastro e consulta de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Cadastrar valida o nome, aplica os padrões dos campos opcionais, gera o
// próximo código sequencial e persiste o produto com as linhas de fórmula.
func (uc *ProdutoUseCase) Cadastrar(in dto.CadastrarProdutoRequest) (*dto.ProdutoResponse, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.EstoqueMinimo.IsNegative() || in.ValorUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	existentes, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	codigos := make([]string, 0, len(existentes))
	for _, p := range existentes {
		codigos = append(codigos, p.Codigo)
	}
	codigo := estoque.ProximoCodigo(codigos)
	for _, existente := range codigos {
		if existente == codigo {
			return nil, domain.ErrDuplicate
		}
	}

	produto := &entity.Produto{
		Codigo:        codigo,
		Nome:          nome,
		Descricao:     valorOuPadrao(in.Descricao, nome),
		Categoria:     valorOuPadrao(in.Categoria, entity.CategoriaPadrao),
		EstoqueMinimo: in.EstoqueMinimo,
		ValorUnitario: in.ValorUnitario,
		Fornecedor:    valorOuPadrao(in.Fornecedor, entity.FornecedorPadrao),
		Localizacao:   valorOuPadrao(in.Localizacao, entity.LocalizacaoPadrao),
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByCodigo devolve o produto ou nil se não existir.
func (uc *ProdutoUseCase) GetByCodigo(codigo string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByCodigo(codigo)
	if err != nil || p == nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Listar devolve todos os produtos na ordem da planilha.
func (uc *ProdutoUseCase) Listar() ([]dto.ProdutoResponse, error) {
	produtos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

func valorOuPadrao(v, padrao string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return padrao
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Categoria:     p.Categoria,
		EstoqueMinimo: p.EstoqueMinimo,
		ValorUnitario: p.ValorUnitario,
		Fornecedor:    p.Fornecedor,
		Localizacao:   p.Localizacao,
	}
}
