package bi

import (
	"time"

	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

// UseCase carrega as abas via repositórios e delega a transformação pura.
type UseCase struct {
	produtoRepo   repository.ProdutoRepository
	movimentoRepo repository.MovimentoRepository
	saldoRepo     repository.SaldoRepository
	agora         func() time.Time
}

// NewUseCase constrói o caso de uso de transformação BI.
func NewUseCase(
	produtoRepo repository.ProdutoRepository,
	movimentoRepo repository.MovimentoRepository,
	saldoRepo repository.SaldoRepository,
) *UseCase {
	return &UseCase{
		produtoRepo:   produtoRepo,
		movimentoRepo: movimentoRepo,
		saldoRepo:     saldoRepo,
		agora:         time.Now,
	}
}

// GerarModelo lê as cinco abas e monta o modelo estrela completo.
func (uc *UseCase) GerarModelo() (*Modelo, error) {
	produtos, err := uc.produtoRepo.List()
	if err != nil {
		return nil, err
	}
	entradas, err := uc.movimentoRepo.ListEntradas()
	if err != nil {
		return nil, err
	}
	saidas, err := uc.movimentoRepo.ListSaidas()
	if err != nil {
		return nil, err
	}
	saldos, err := uc.saldoRepo.List()
	if err != nil {
		return nil, err
	}
	return Transformar(produtos, entradas, saidas, saldos, uc.agora()), nil
}
