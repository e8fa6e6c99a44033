// Package consulta expõe as leituras das abas derivadas (Estoque Atual e
// Estoque Crítico) como DTOs para as interfaces.
package consulta

import (
	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

// UseCase caso de uso de consulta de saldos.
type UseCase struct {
	saldoRepo repository.SaldoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(saldoRepo repository.SaldoRepository) *UseCase {
	return &UseCase{saldoRepo: saldoRepo}
}

// Saldos devolve as linhas de Estoque Atual na ordem da planilha.
func (uc *UseCase) Saldos() ([]dto.SaldoResponse, error) {
	saldos, err := uc.saldoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaldoResponse, 0, len(saldos))
	for _, s := range saldos {
		out = append(out, dto.SaldoResponse{
			CodigoProduto:  s.CodigoProduto,
			EstoqueInicial: s.EstoqueInicial,
			TotalEntradas:  s.TotalEntradas,
			TotalSaidas:    s.TotalSaidas,
			SaldoAtual:     s.SaldoAtual,
		})
	}
	return out, nil
}

// Criticos devolve as linhas de Estoque Crítico marcadas para reposição.
func (uc *UseCase) Criticos() ([]dto.CriticoResponse, error) {
	criticos, err := uc.saldoRepo.ListCritico()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CriticoResponse, 0, len(criticos))
	for _, c := range criticos {
		out = append(out, dto.CriticoResponse{
			NomeProduto:   c.NomeProduto,
			EstoqueAtual:  c.EstoqueAtual,
			EstoqueMinimo: c.EstoqueMinimo,
			Status:        c.Status,
		})
	}
	return out, nil
}
