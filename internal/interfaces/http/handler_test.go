package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/consulta"
	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	apphttp "github.com/estoquelab/controle-estoque/internal/interfaces/http"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ── Fakes em memória ─────────────────────────────────────────────────────

type produtoRepoFake struct{ produtos []*entity.Produto }

func (f *produtoRepoFake) Create(p *entity.Produto) error {
	f.produtos = append(f.produtos, p)
	return nil
}

func (f *produtoRepoFake) GetByCodigo(codigo string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (f *produtoRepoFake) List() ([]*entity.Produto, error) { return f.produtos, nil }

type movimentoRepoFake struct {
	entradas []*entity.Entrada
	saidas   []*entity.Saida
}

func (f *movimentoRepoFake) AppendEntrada(e *entity.Entrada) error {
	f.entradas = append(f.entradas, e)
	return nil
}

func (f *movimentoRepoFake) AppendSaida(s *entity.Saida) error {
	f.saidas = append(f.saidas, s)
	return nil
}

func (f *movimentoRepoFake) ListEntradas() ([]*entity.Entrada, error) { return f.entradas, nil }
func (f *movimentoRepoFake) ListSaidas() ([]*entity.Saida, error)     { return f.saidas, nil }

type saldoRepoFake struct{ saldos []*entity.SaldoEstoque }

func (f *saldoRepoFake) GetByCodigo(codigo string) (*entity.SaldoEstoque, error) {
	for _, s := range f.saldos {
		if s.CodigoProduto == codigo {
			return s, nil
		}
	}
	return nil, nil
}

func (f *saldoRepoFake) List() ([]*entity.SaldoEstoque, error) { return f.saldos, nil }
func (f *saldoRepoFake) ListCritico() ([]*entity.EstoqueCritico, error) {
	return nil, nil
}

// ── Montagem da app de teste ─────────────────────────────────────────────

type appTeste struct {
	app        *fiber.App
	produtos   *produtoRepoFake
	movimentos *movimentoRepoFake
	saldos     *saldoRepoFake
}

func novaApp(t *testing.T) *appTeste {
	t.Helper()

	produtos := &produtoRepoFake{}
	movimentos := &movimentoRepoFake{}
	saldos := &saldoRepoFake{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProdutoUC:   cadastro.NewProdutoUseCase(produtos),
		MovimentoUC: movimento.NewUseCase(movimentos, produtos, saldos),
		ConsultaUC:  consulta.NewUseCase(saldos),
		ReportUC:    analytics.NewReportUseCase(bi.NewUseCase(produtos, movimentos, saldos)),
	})
	return &appTeste{app: app, produtos: produtos, movimentos: movimentos, saldos: saldos}
}

func (a *appTeste) request(t *testing.T, metodo, rota string, corpo any) *nethttp.Response {
	t.Helper()
	var body io.Reader
	if corpo != nil {
		b, err := json.Marshal(corpo)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(metodo, rota, body)
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodificar[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ── Testes ───────────────────────────────────────────────────────────────

func TestCadastrarProdutoHTTP(t *testing.T) {
	a := novaApp(t)

	resp := a.request(t, nethttp.MethodPost, "/api/produtos/", dto.CadastrarProdutoRequest{
		Nome:          "Parafuso",
		EstoqueMinimo: dec("10"),
		ValorUnitario: dec("2.50"),
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	out := decodificar[dto.ProdutoResponse](t, resp)
	assert.Equal(t, "P001", out.Codigo, "primeiro código gerado")
	assert.Equal(t, "Outros", out.Categoria, "categoria vazia recebe o padrão")
	assert.Equal(t, "N/D", out.Fornecedor)
}

func TestCadastrarProdutoSemNome(t *testing.T) {
	a := novaApp(t)

	resp := a.request(t, nethttp.MethodPost, "/api/produtos/", dto.CadastrarProdutoRequest{Nome: "  "})
	require.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	out := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestGetProdutoInexistente(t *testing.T) {
	a := novaApp(t)

	resp := a.request(t, nethttp.MethodGet, "/api/produtos/P999", nil)
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestRegistrarEntradaHTTP(t *testing.T) {
	a := novaApp(t)
	a.produtos.produtos = []*entity.Produto{{Codigo: "P001", Nome: "Parafuso"}}

	resp := a.request(t, nethttp.MethodPost, "/api/movimentos/entradas", dto.RegistrarEntradaRequest{
		Data:          "15/03/2024",
		CodigoProduto: "P001",
		Quantidade:    dec("50"),
		ValorUnitario: dec("2"),
	})
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)

	out := decodificar[dto.EntradaResponse](t, resp)
	assert.True(t, out.ValorTotal.Equal(dec("100")))
	assert.Len(t, a.movimentos.entradas, 1)
}

func TestRegistrarEntradaProdutoDesconhecido(t *testing.T) {
	a := novaApp(t)

	resp := a.request(t, nethttp.MethodPost, "/api/movimentos/entradas", dto.RegistrarEntradaRequest{
		CodigoProduto: "P404",
		Quantidade:    dec("1"),
	})
	require.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}

func TestRegistrarSaidaAcimaDoSaldo(t *testing.T) {
	a := novaApp(t)
	a.produtos.produtos = []*entity.Produto{{Codigo: "P001", Nome: "Parafuso"}}
	saldo := dec("5")
	a.saldos.saldos = []*entity.SaldoEstoque{{CodigoProduto: "P001", SaldoAtual: &saldo}}

	saida := dto.RegistrarSaidaRequest{
		Data:          "15/03/2024",
		CodigoProduto: "P001",
		Quantidade:    dec("8"),
		Motivo:        "Venda",
	}

	resp := a.request(t, nethttp.MethodPost, "/api/movimentos/saidas", saida)
	require.Equal(t, nethttp.StatusConflict, resp.StatusCode, "saída acima do saldo exige confirmação")
	out := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "SALDO_INSUFICIENTE", out.Code)
	assert.Empty(t, a.movimentos.saidas, "nada registrado sem confirmação")

	// Repetição confirmada passa (avisar, nunca bloquear).
	saida.ConfirmarSemSaldo = true
	resp = a.request(t, nethttp.MethodPost, "/api/movimentos/saidas", saida)
	require.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Len(t, a.movimentos.saidas, 1)
}

func TestResumoAnalyticsHTTP(t *testing.T) {
	a := novaApp(t)
	a.produtos.produtos = []*entity.Produto{
		{Codigo: "P001", Nome: "Parafuso", Categoria: "Ferragens", Fornecedor: "ACME", EstoqueMinimo: dec("10"), ValorUnitario: dec("2")},
	}
	saldo := dec("8")
	a.saldos.saldos = []*entity.SaldoEstoque{{CodigoProduto: "P001", SaldoAtual: &saldo}}

	resp := a.request(t, nethttp.MethodGet, "/api/analytics/resumo", nil)
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	out := decodificar[dto.ResumoKPIDTO](t, resp)
	assert.Equal(t, 1, out.TotalProdutos)
	require.Len(t, out.ProdutosCriticos, 1)
	assert.Equal(t, "P001", out.ProdutosCriticos[0].Codigo)
}
