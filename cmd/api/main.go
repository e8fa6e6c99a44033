package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/consulta"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/spreadsheet"
	httpRouter "github.com/estoquelab/controle-estoque/internal/interfaces/http"
	"github.com/estoquelab/controle-estoque/pkg/config"
	"github.com/estoquelab/controle-estoque/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("planilha", cfg.Store.Arquivo).
		Msg("iniciando API de estoque")

	workbook := spreadsheet.NewWorkbook(cfg.Store.Arquivo)
	produtoRepo := spreadsheet.NewProdutoRepository(workbook)
	movimentoRepo := spreadsheet.NewMovimentoRepository(workbook)
	saldoRepo := spreadsheet.NewSaldoRepository(workbook)

	produtoUC := cadastro.NewProdutoUseCase(produtoRepo)
	movimentoUC := movimento.NewUseCase(movimentoRepo, produtoRepo, saldoRepo)
	consultaUC := consulta.NewUseCase(saldoRepo)
	biUC := bi.NewUseCase(produtoRepo, movimentoRepo, saldoRepo)
	reportUC := analytics.NewReportUseCase(biUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:   produtoUC,
		MovimentoUC: movimentoUC,
		ConsultaUC:  consultaUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
