package main

import (
	"os"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/consulta"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/chart"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/export"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/pdf"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/spreadsheet"
	"github.com/estoquelab/controle-estoque/internal/interfaces/cli"
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
		Level: "warn", // o menu fala com o operador; o log fica para erros
	})

	// Barreira externa: pânico de biblioteca vira log e saída limpa.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("falha inesperada, encerrando")
			os.Exit(1)
		}
	}()

	workbook := spreadsheet.NewWorkbook(cfg.Store.Arquivo)
	produtoRepo := spreadsheet.NewProdutoRepository(workbook)
	movimentoRepo := spreadsheet.NewMovimentoRepository(workbook)
	saldoRepo := spreadsheet.NewSaldoRepository(workbook)

	biUC := bi.NewUseCase(produtoRepo, movimentoRepo, saldoRepo)

	menu := cli.NewMenu(cli.MenuDeps{
		Planilha:    workbook,
		ProdutoUC:   cadastro.NewProdutoUseCase(produtoRepo),
		MovimentoUC: movimento.NewUseCase(movimentoRepo, produtoRepo, saldoRepo),
		ConsultaUC:  consulta.NewUseCase(saldoRepo),
		BIUC:        biUC,
		ReportUC:    analytics.NewReportUseCase(biUC),

		RawExporter: export.NewRawExporter(cfg.Export, produtoRepo, movimentoRepo, saldoRepo, log),
		BIExporter:  export.NewBIExporter(cfg.Export, log),
		SQLGen:      export.NewSQLGenerator(),
		Dashboard:   chart.NewDashboard(),
		PDF:         pdf.NewReportGenerator(),

		Export: cfg.Export,
	}, os.Stdin, os.Stdout)

	menu.Run()
}
