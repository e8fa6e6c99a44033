package movimento_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/domain"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// ── Fakes em memória ─────────────────────────────────────────────────────────

type movimentoRepoFake struct {
	entradas []*entity.Entrada
	saidas   []*entity.Saida
}

func (r *movimentoRepoFake) AppendEntrada(e *entity.Entrada) error {
	r.entradas = append(r.entradas, e)
	return nil
}
func (r *movimentoRepoFake) AppendSaida(s *entity.Saida) error {
	r.saidas = append(r.saidas, s)
	return nil
}
func (r *movimentoRepoFake) ListEntradas() ([]*entity.Entrada, error) { return r.entradas, nil }
func (r *movimentoRepoFake) ListSaidas() ([]*entity.Saida, error)     { return r.saidas, nil }

type produtoRepoFake struct {
	produtos map[string]*entity.Produto
}

func (r *produtoRepoFake) Create(*entity.Produto) error { return nil }
func (r *produtoRepoFake) GetByCodigo(codigo string) (*entity.Produto, error) {
	return r.produtos[codigo], nil
}
func (r *produtoRepoFake) List() ([]*entity.Produto, error) { return nil, nil }

type saldoRepoFake struct {
	saldos map[string]*entity.SaldoEstoque
	err    error
}

func (r *saldoRepoFake) GetByCodigo(codigo string) (*entity.SaldoEstoque, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.saldos[codigo], nil
}
func (r *saldoRepoFake) List() ([]*entity.SaldoEstoque, error)           { return nil, r.err }
func (r *saldoRepoFake) ListCritico() ([]*entity.EstoqueCritico, error)  { return nil, r.err }

func saldoDe(v int64) *entity.SaldoEstoque {
	d := decimal.NewFromInt(v)
	return &entity.SaldoEstoque{SaldoAtual: &d}
}

func novoUseCase(saldos *saldoRepoFake) (*movimento.UseCase, *movimentoRepoFake) {
	movs := &movimentoRepoFake{}
	produtos := &produtoRepoFake{produtos: map[string]*entity.Produto{
		"P001": {Codigo: "P001", Nome: "Parafuso M6"},
	}}
	if saldos == nil {
		saldos = &saldoRepoFake{saldos: map[string]*entity.SaldoEstoque{}}
	}
	return movimento.NewUseCase(movs, produtos, saldos), movs
}

// ── Entradas ─────────────────────────────────────────────────────────────────

func TestRegistrarEntrada_Valida(t *testing.T) {
	uc, movs := novoUseCase(nil)

	out, err := uc.RegistrarEntrada(dto.RegistrarEntradaRequest{
		Data:          "05/03/2026",
		Documento:     "NF-77",
		CodigoProduto: "P001",
		Quantidade:    decimal.NewFromInt(50),
		ValorUnitario: decimal.NewFromFloat(0.80),
	})
	require.NoError(t, err)
	assert.True(t, out.ValorTotal.Equal(decimal.NewFromInt(40)), "total = 50 × 0,80")
	require.Len(t, movs.entradas, 1)
}

func TestRegistrarEntrada_DocumentoGerado(t *testing.T) {
	uc, _ := novoUseCase(nil)

	out, err := uc.RegistrarEntrada(dto.RegistrarEntradaRequest{
		CodigoProduto: "P001",
		Quantidade:    decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^NF-\d{14}$`, out.Documento, "documento vazio gera referência com timestamp")
	assert.NotEmpty(t, out.Data, "data vazia usa hoje")
}

func TestRegistrarEntrada_Invalidas(t *testing.T) {
	uc, _ := novoUseCase(nil)

	tests := []struct {
		name string
		in   dto.RegistrarEntradaRequest
		want error
	}{
		{
			name: "data malformada",
			in:   dto.RegistrarEntradaRequest{Data: "2026-03-05", CodigoProduto: "P001", Quantidade: decimal.NewFromInt(1)},
			want: domain.ErrInvalidInput,
		},
		{
			name: "quantidade zero",
			in:   dto.RegistrarEntradaRequest{CodigoProduto: "P001"},
			want: domain.ErrInvalidInput,
		},
		{
			name: "valor unitário negativo",
			in:   dto.RegistrarEntradaRequest{CodigoProduto: "P001", Quantidade: decimal.NewFromInt(1), ValorUnitario: decimal.NewFromInt(-2)},
			want: domain.ErrInvalidInput,
		},
		{
			name: "produto inexistente",
			in:   dto.RegistrarEntradaRequest{CodigoProduto: "P999", Quantidade: decimal.NewFromInt(1)},
			want: domain.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RegistrarEntrada(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Saídas ───────────────────────────────────────────────────────────────────

func TestRegistrarSaida_DentroDoSaldo(t *testing.T) {
	uc, movs := novoUseCase(&saldoRepoFake{saldos: map[string]*entity.SaldoEstoque{
		"P001": saldoDe(10),
	}})

	out, err := uc.RegistrarSaida(dto.RegistrarSaidaRequest{
		Data:          "06/03/2026",
		CodigoProduto: "P001",
		Quantidade:    decimal.NewFromInt(3),
		Motivo:        "Venda",
	})
	require.NoError(t, err)
	assert.Equal(t, "Venda", out.Motivo)
	require.Len(t, movs.saidas, 1)
}

func TestRegistrarSaida_AcimaDoSaldoExigeConfirmacao(t *testing.T) {
	saldos := &saldoRepoFake{saldos: map[string]*entity.SaldoEstoque{
		"P001": saldoDe(5),
	}}
	uc, movs := novoUseCase(saldos)

	in := dto.RegistrarSaidaRequest{
		CodigoProduto: "P001",
		Quantidade:    decimal.NewFromInt(8),
		Motivo:        "Perda/Avaria",
	}

	_, err := uc.RegistrarSaida(in)
	var insuf *domain.SaldoInsuficienteError
	require.ErrorAs(t, err, &insuf, "sem confirmação a saída acima do saldo é recusada com aviso")
	assert.True(t, insuf.Saldo.Equal(decimal.NewFromInt(5)))
	assert.Empty(t, movs.saidas)

	// Com confirmação explícita a mesma saída passa (avisar, não bloquear)
	in.ConfirmarSemSaldo = true
	_, err = uc.RegistrarSaida(in)
	require.NoError(t, err)
	require.Len(t, movs.saidas, 1)
}

func TestRegistrarSaida_SaldoDesconhecidoNaoBloqueia(t *testing.T) {
	// Aba ilegível: o saldo é tratado como desconhecido, não como zero
	uc, movs := novoUseCase(&saldoRepoFake{err: errors.New("aba corrompida")})

	_, err := uc.RegistrarSaida(dto.RegistrarSaidaRequest{
		CodigoProduto: "P001",
		Quantidade:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Len(t, movs.saidas, 1)
}
