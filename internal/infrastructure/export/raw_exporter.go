package export

import (
	"fmt"

	"github.com/estoquelab/controle-estoque/internal/domain/repository"
	"github.com/estoquelab/controle-estoque/internal/infrastructure/spreadsheet"
	"github.com/estoquelab/controle-estoque/pkg/config"
	"github.com/estoquelab/controle-estoque/pkg/logger"
)

// Nomes dos arquivos do despejo cru, um por aba.
const (
	ArquivoBase           = "base_produtos"
	ArquivoEntradas       = "entradas"
	ArquivoSaidas         = "saidas"
	ArquivoEstoqueAtual   = "estoque_atual"
	ArquivoEstoqueCritico = "estoque_critico"
)

// RawExporter despeja as cinco abas da planilha em CSVs convencionais
// (vírgula, ponto decimal), com os mesmos cabeçalhos das abas.
type RawExporter struct {
	cfg           config.ExportConfig
	produtoRepo   repository.ProdutoRepository
	movimentoRepo repository.MovimentoRepository
	saldoRepo     repository.SaldoRepository
	log           *logger.Logger
}

// NewRawExporter constrói o exportador de abas cruas.
func NewRawExporter(
	cfg config.ExportConfig,
	produtoRepo repository.ProdutoRepository,
	movimentoRepo repository.MovimentoRepository,
	saldoRepo repository.SaldoRepository,
	log *logger.Logger,
) *RawExporter {
	return &RawExporter{
		cfg:           cfg,
		produtoRepo:   produtoRepo,
		movimentoRepo: movimentoRepo,
		saldoRepo:     saldoRepo,
		log:           log,
	}
}

// Exportar gera os cinco CSVs e devolve os caminhos gravados.
func (e *RawExporter) Exportar() ([]string, error) {
	var gerados []string

	escrever := func(nome string, cabecalho []string, linhas [][]any) error {
		caminho := e.cfg.CaminhoCSV(nome)
		if err := EscreverCSV(caminho, DialetoPadrao, cabecalho, linhas); err != nil {
			return fmt.Errorf("exportando aba %s: %w", nome, err)
		}
		gerados = append(gerados, caminho)
		e.log.Info().Str("arquivo", caminho).Int("linhas", len(linhas)).Msg("aba exportada")
		return nil
	}

	produtos, err := e.produtoRepo.List()
	if err != nil {
		return gerados, err
	}
	linhas := make([][]any, 0, len(produtos))
	for _, p := range produtos {
		linhas = append(linhas, []any{
			p.Codigo, p.Nome, p.Descricao, p.Categoria,
			p.EstoqueMinimo, p.ValorUnitario, p.Fornecedor, p.Localizacao,
		})
	}
	if err := escrever(ArquivoBase, spreadsheet.ColunasBase, linhas); err != nil {
		return gerados, err
	}

	entradas, err := e.movimentoRepo.ListEntradas()
	if err != nil {
		return gerados, err
	}
	linhas = linhas[:0]
	for _, en := range entradas {
		linhas = append(linhas, []any{
			en.Data, en.Documento, en.CodigoProduto,
			en.Quantidade, en.ValorUnitario, en.ValorTotal(),
		})
	}
	if err := escrever(ArquivoEntradas, spreadsheet.ColunasEntradas, linhas); err != nil {
		return gerados, err
	}

	saidas, err := e.movimentoRepo.ListSaidas()
	if err != nil {
		return gerados, err
	}
	linhas = linhas[:0]
	for _, s := range saidas {
		linhas = append(linhas, []any{s.Data, s.CodigoProduto, s.Quantidade, s.Motivo})
	}
	if err := escrever(ArquivoSaidas, spreadsheet.ColunasSaidas, linhas); err != nil {
		return gerados, err
	}

	saldos, err := e.saldoRepo.List()
	if err != nil {
		return gerados, err
	}
	linhas = linhas[:0]
	for _, s := range saldos {
		linhas = append(linhas, []any{
			s.CodigoProduto, s.EstoqueInicial, s.TotalEntradas, s.TotalSaidas, s.SaldoAtual,
		})
	}
	if err := escrever(ArquivoEstoqueAtual, spreadsheet.ColunasEstoqueAtual, linhas); err != nil {
		return gerados, err
	}

	criticos, err := e.saldoRepo.ListCritico()
	if err != nil {
		return gerados, err
	}
	linhas = linhas[:0]
	for _, c := range criticos {
		linhas = append(linhas, []any{c.NomeProduto, c.EstoqueAtual, c.EstoqueMinimo, c.Status})
	}
	if err := escrever(ArquivoEstoqueCritico, spreadsheet.ColunasEstoqueCritico, linhas); err != nil {
		return gerados, err
	}

	return gerados, nil
}
