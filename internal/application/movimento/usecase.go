// Package movimento contém os casos de uso de registro de entradas e saídas
// de estoque. Nenhum saldo é alterado aqui: os eventos são append-only e o
// saldo é re-derivado por fórmulas da planilha.
package movimento

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/domain"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

// UseCase casos de uso de movimentação de estoque.
type UseCase struct {
	movimentoRepo repository.MovimentoRepository
	produtoRepo   repository.ProdutoRepository
	saldoRepo     repository.SaldoRepository
	agora         func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	movimentoRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	saldoRepo repository.SaldoRepository,
) *UseCase {
	return &UseCase{
		movimentoRepo: movimentoRepo,
		produtoRepo:   produtoRepo,
		saldoRepo:     saldoRepo,
		agora:         time.Now,
	}
}

// RegistrarEntrada valida e registra uma entrada. Data vazia usa hoje;
// documento vazio recebe uma referência NF-<timestamp>. O total é gravado
// como fórmula na planilha, não como literal.
func (uc *UseCase) RegistrarEntrada(in dto.RegistrarEntradaRequest) (*dto.EntradaResponse, error) {
	data, err := uc.normalizarData(in.Data)
	if err != nil {
		return nil, err
	}
	if !in.Quantidade.IsPositive() || in.ValorUnitario.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	produto, err := uc.produtoRepo.GetByCodigo(in.CodigoProduto)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	doc := strings.TrimSpace(in.Documento)
	if doc == "" {
		doc = fmt.Sprintf("NF-%s", uc.agora().Format("20060102150405"))
	}

	entrada := &entity.Entrada{
		Data:          data,
		Documento:     doc,
		CodigoProduto: produto.Codigo,
		Quantidade:    in.Quantidade,
		ValorUnitario: in.ValorUnitario,
	}
	if err := uc.movimentoRepo.AppendEntrada(entrada); err != nil {
		return nil, err
	}
	return &dto.EntradaResponse{
		Data:          entrada.Data,
		Documento:     entrada.Documento,
		CodigoProduto: entrada.CodigoProduto,
		Quantidade:    entrada.Quantidade,
		ValorUnitario: entrada.ValorUnitario,
		ValorTotal:    entrada.ValorTotal(),
	}, nil
}

// RegistrarSaida valida e registra uma saída. O saldo atual é consultado
// pela aba Estoque Atual; saldo desconhecido não impede a operação. Saída
// maior que o saldo conhecido devolve SaldoInsuficienteError, a menos que o
// chamador confirme explicitamente (avisar e permitir, nunca bloquear).
func (uc *UseCase) RegistrarSaida(in dto.RegistrarSaidaRequest) (*dto.SaidaResponse, error) {
	data, err := uc.normalizarData(in.Data)
	if err != nil {
		return nil, err
	}
	if !in.Quantidade.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	produto, err := uc.produtoRepo.GetByCodigo(in.CodigoProduto)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	saldo, err := uc.SaldoAtual(produto.Codigo)
	if err == nil && saldo != nil && in.Quantidade.GreaterThan(*saldo) && !in.ConfirmarSemSaldo {
		return nil, &domain.SaldoInsuficienteError{
			Codigo:     produto.Codigo,
			Saldo:      *saldo,
			Solicitado: in.Quantidade,
		}
	}

	saida := &entity.Saida{
		Data:          data,
		CodigoProduto: produto.Codigo,
		Quantidade:    in.Quantidade,
		Motivo:        strings.TrimSpace(in.Motivo),
	}
	if err := uc.movimentoRepo.AppendSaida(saida); err != nil {
		return nil, err
	}
	return &dto.SaidaResponse{
		Data:          saida.Data,
		CodigoProduto: saida.CodigoProduto,
		Quantidade:    saida.Quantidade,
		Motivo:        saida.Motivo,
	}, nil
}

// SaldoAtual devolve o saldo conhecido do produto ou nil quando a linha não
// existe ou a fórmula não produziu valor legível (desconhecido, não fatal).
func (uc *UseCase) SaldoAtual(codigo string) (*decimal.Decimal, error) {
	s, err := uc.saldoRepo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return s.SaldoAtual, nil
}

// ListarEntradas devolve os eventos de entrada na ordem da planilha.
func (uc *UseCase) ListarEntradas() ([]dto.EntradaResponse, error) {
	entradas, err := uc.movimentoRepo.ListEntradas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntradaResponse, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, dto.EntradaResponse{
			Data:          e.Data,
			Documento:     e.Documento,
			CodigoProduto: e.CodigoProduto,
			Quantidade:    e.Quantidade,
			ValorUnitario: e.ValorUnitario,
			ValorTotal:    e.ValorTotal(),
		})
	}
	return out, nil
}

// ListarSaidas devolve os eventos de saída na ordem da planilha.
func (uc *UseCase) ListarSaidas() ([]dto.SaidaResponse, error) {
	saidas, err := uc.movimentoRepo.ListSaidas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaidaResponse, 0, len(saidas))
	for _, s := range saidas {
		out = append(out, dto.SaidaResponse{
			Data:          s.Data,
			CodigoProduto: s.CodigoProduto,
			Quantidade:    s.Quantidade,
			Motivo:        s.Motivo,
		})
	}
	return out, nil
}

// normalizarData valida o formato DD/MM/YYYY; vazio usa a data de hoje.
func (uc *UseCase) normalizarData(data string) (string, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return uc.agora().Format(entity.FormatoData), nil
	}
	if _, err := time.Parse(entity.FormatoData, data); err != nil {
		return "", domain.ErrInvalidInput
	}
	return data, nil
}
