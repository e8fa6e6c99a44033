// Package http expõe a API de consulta e registro sobre a planilha.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/consulta"
	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/domain"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProdutoUC   *cadastro.ProdutoUseCase
	MovimentoUC *movimento.UseCase
	ConsultaUC  *consulta.UseCase
	ReportUC    *analytics.ReportUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Cadastrar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:codigo", produtoHandler.GetByCodigo)

	movimentos := api.Group("/movimentos")
	movimentoHandler := NewMovimentoHandler(deps.MovimentoUC)
	movimentos.Post("/entradas", movimentoHandler.RegistrarEntrada)
	movimentos.Get("/entradas", movimentoHandler.ListarEntradas)
	movimentos.Post("/saidas", movimentoHandler.RegistrarSaida)
	movimentos.Get("/saidas", movimentoHandler.ListarSaidas)

	estoque := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.ConsultaUC)
	estoque.Get("/", estoqueHandler.Saldos)
	estoque.Get("/critico", estoqueHandler.Criticos)

	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.ReportUC)
	analytics.Get("/resumo", analyticsHandler.Resumo)
}

// erroHTTP traduz os erros de domínio para a resposta HTTP padrão.
func erroHTTP(c *fiber.Ctx, err error) error {
	var saldoErr *domain.SaldoInsuficienteError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case errors.As(err, &saldoErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SALDO_INSUFICIENTE", Message: saldoErr.Error()})
	case errors.Is(err, domain.ErrPlanilhaNaoEncontrada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLANILHA_NAO_ENCONTRADA", Message: "gere a planilha antes de operar"})
	case errors.Is(err, domain.ErrPlanilhaAberta):
		return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "PLANILHA_ABERTA", Message: "feche a planilha em outros programas e tente novamente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
