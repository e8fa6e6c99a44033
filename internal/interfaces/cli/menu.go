package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/application/analytics"
	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/application/cadastro"
	"github.com/estoquelab/controle-estoque/internal/application/consulta"
	"github.com/estoquelab/controle-estoque/internal/application/dto"
	"github.com/estoquelab/controle-estoque/internal/application/movimento"
	"github.com/estoquelab/controle-estoque/internal/domain"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/pkg/config"
)

// GeradorPlanilha cria a planilha nova com as cinco abas.
type GeradorPlanilha interface {
	Criar() error
}

// ExportadorCSV grava um conjunto de CSVs e devolve os caminhos gerados.
type ExportadorCSV interface {
	Exportar() ([]string, error)
}

// ExportadorModelo grava os CSVs do modelo estrela.
type ExportadorModelo interface {
	Exportar(m *bi.Modelo) ([]string, error)
}

// GeradorSQL grava o script DDL do modelo estrela.
type GeradorSQL interface {
	GerarArquivo(caminho string) error
}

// GeradorDashboard grava o dashboard PNG.
type GeradorDashboard interface {
	Gerar(m *bi.Modelo, caminho string) error
}

// GeradorPDF grava o relatório de KPIs em PDF.
type GeradorPDF interface {
	GerarArquivo(resumo *dto.ResumoKPIDTO, caminho string) error
}

// MenuDeps dependências do menu do operador.
type MenuDeps struct {
	Planilha    GeradorPlanilha
	ProdutoUC   *cadastro.ProdutoUseCase
	MovimentoUC *movimento.UseCase
	ConsultaUC  *consulta.UseCase
	BIUC        *bi.UseCase
	ReportUC    *analytics.ReportUseCase

	RawExporter ExportadorCSV
	BIExporter  ExportadorModelo
	SQLGen      GeradorSQL
	Dashboard   GeradorDashboard
	PDF         GeradorPDF

	Export config.ExportConfig
}

// Menu laço interativo do operador sobre a planilha.
type Menu struct {
	deps  MenuDeps
	p     *Prompter
	out   io.Writer
	agora func() time.Time
}

// NewMenu constrói o menu lendo de in e escrevendo em out.
func NewMenu(deps MenuDeps, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		deps:  deps,
		p:     NewPrompter(in, out),
		out:   out,
		agora: time.Now,
	}
}

// Run apresenta o menu até o operador sair. Erros de operação são exibidos
// e o laço continua; só EOF ou a opção de saída encerram.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, `
═══ Controle de Estoque ═══
 1. Gerar planilha de controle
 2. Cadastrar produto
 3. Registrar entrada
 4. Registrar saída
 5. Consultar estoque atual
 6. Consultar estoque crítico
 7. Exportar abas para CSV
 8. Exportar modelo Power BI (CSV + SQL)
 9. Gerar dashboard (PNG)
10. Gerar relatório (PDF)
 0. Sair
`)
		opcao := m.p.LerTexto("Opção", "")
		switch opcao {
		case "1":
			m.executar(m.gerarPlanilha)
		case "2":
			m.executar(m.cadastrarProduto)
		case "3":
			m.executar(m.registrarEntrada)
		case "4":
			m.executar(m.registrarSaida)
		case "5":
			m.executar(m.consultarEstoque)
		case "6":
			m.executar(m.consultarCritico)
		case "7":
			m.executar(m.exportarCSV)
		case "8":
			m.executar(m.exportarPowerBI)
		case "9":
			m.executar(m.gerarDashboard)
		case "10":
			m.executar(m.gerarPDF)
		case "0", "":
			fmt.Fprintln(m.out, "Até logo.")
			return
		default:
			fmt.Fprintln(m.out, "Opção desconhecida.")
		}
	}
}

// executar roda uma ação e traduz o erro para o operador sem sair do laço.
func (m *Menu) executar(acao func() error) {
	if err := acao(); err != nil {
		switch {
		case errors.Is(err, domain.ErrPlanilhaNaoEncontrada):
			fmt.Fprintln(m.out, "Planilha não encontrada. Use a opção 1 para gerá-la.")
		case errors.Is(err, domain.ErrPlanilhaAberta):
			fmt.Fprintln(m.out, "A planilha está aberta em outro programa. Feche e tente de novo.")
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintln(m.out, "Produto não encontrado.")
		case errors.Is(err, domain.ErrInvalidInput):
			fmt.Fprintln(m.out, "Entrada inválida.")
		default:
			fmt.Fprintf(m.out, "Erro: %v\n", err)
		}
	}
}

func (m *Menu) gerarPlanilha() error {
	if err := m.deps.Planilha.Criar(); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Planilha criada com as cinco abas de controle.")
	return nil
}

func (m *Menu) cadastrarProduto() error {
	req := dto.CadastrarProdutoRequest{
		Nome:          m.p.LerTexto("Nome do produto", ""),
		Descricao:     m.p.LerTexto("Descrição", ""),
		Categoria:     m.p.LerTexto("Categoria", entity.CategoriaPadrao),
		EstoqueMinimo: m.p.LerDecimal("Estoque mínimo", decimal.Zero),
		ValorUnitario: m.p.LerDecimal("Valor unitário (R$)", decimal.Zero),
		Fornecedor:    m.p.LerTexto("Fornecedor", entity.FornecedorPadrao),
		Localizacao:   m.p.LerTexto("Localização", entity.LocalizacaoPadrao),
	}

	out, err := m.deps.ProdutoUC.Cadastrar(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Produto %s cadastrado: %s\n", out.Codigo, out.Nome)
	return nil
}

func (m *Menu) registrarEntrada() error {
	req := dto.RegistrarEntradaRequest{
		CodigoProduto: m.p.LerTexto("Código do produto", ""),
		Data:          m.p.LerData("Data da entrada", m.agora),
		Documento:     m.p.LerTexto("Documento (nota fiscal)", ""),
		Quantidade:    m.p.LerDecimal("Quantidade", decimal.Zero),
		ValorUnitario: m.p.LerDecimal("Valor unitário de compra (R$)", decimal.Zero),
	}

	out, err := m.deps.MovimentoUC.RegistrarEntrada(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Entrada registrada: %s × %s (total R$ %s)\n",
		out.CodigoProduto, out.Quantidade.String(), out.ValorTotal.StringFixed(2))
	return nil
}

func (m *Menu) registrarSaida() error {
	req := dto.RegistrarSaidaRequest{
		CodigoProduto: m.p.LerTexto("Código do produto", ""),
		Data:          m.p.LerData("Data da saída", m.agora),
		Quantidade:    m.p.LerDecimal("Quantidade retirada", decimal.Zero),
		Motivo:        m.p.Escolher("Motivo da saída:", entity.MotivosSaida),
	}

	out, err := m.deps.MovimentoUC.RegistrarSaida(req)

	// Saída acima do saldo conhecido: avisar e deixar o operador decidir.
	var saldoErr *domain.SaldoInsuficienteError
	if errors.As(err, &saldoErr) {
		fmt.Fprintf(m.out, "Atenção: saldo atual de %s é %s e a retirada pede %s.\n",
			saldoErr.Codigo, saldoErr.Saldo.String(), saldoErr.Solicitado.String())
		if !m.p.Confirmar("Registrar mesmo assim?") {
			fmt.Fprintln(m.out, "Saída cancelada.")
			return nil
		}
		req.ConfirmarSemSaldo = true
		out, err = m.deps.MovimentoUC.RegistrarSaida(req)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Saída registrada: %s × %s (%s)\n",
		out.CodigoProduto, out.Quantidade.String(), out.Motivo)
	return nil
}

func (m *Menu) consultarEstoque() error {
	saldos, err := m.deps.ConsultaUC.Saldos()
	if err != nil {
		return err
	}
	if len(saldos) == 0 {
		fmt.Fprintln(m.out, "Nenhum produto cadastrado.")
		return nil
	}
	fmt.Fprintf(m.out, "%-10s %12s %12s %12s %12s\n",
		"Código", "Inicial", "Entradas", "Saídas", "Saldo")
	for _, s := range saldos {
		fmt.Fprintf(m.out, "%-10s %12s %12s %12s %12s\n",
			s.CodigoProduto,
			s.EstoqueInicial.String(),
			decimalOuTraco(s.TotalEntradas),
			decimalOuTraco(s.TotalSaidas),
			decimalOuTraco(s.SaldoAtual))
	}
	return nil
}

func (m *Menu) consultarCritico() error {
	criticos, err := m.deps.ConsultaUC.Criticos()
	if err != nil {
		return err
	}
	repor := 0
	for _, c := range criticos {
		if c.Status == entity.StatusRepor {
			repor++
			fmt.Fprintf(m.out, "%s — atual %s, mínimo %s (%s)\n",
				c.NomeProduto, decimalOuTraco(c.EstoqueAtual), decimalOuTraco(c.EstoqueMinimo), c.Status)
		}
	}
	if repor == 0 {
		fmt.Fprintln(m.out, "Nenhum produto em nível crítico.")
	}
	return nil
}

func (m *Menu) exportarCSV() error {
	gerados, err := m.deps.RawExporter.Exportar()
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "%d arquivos exportados para %s\n", len(gerados), m.deps.Export.PastaCSV)
	return nil
}

func (m *Menu) exportarPowerBI() error {
	modelo, err := m.deps.BIUC.GerarModelo()
	if err != nil {
		return err
	}
	gerados, err := m.deps.BIExporter.Exportar(modelo)
	if err != nil {
		return err
	}
	if err := m.deps.SQLGen.GerarArquivo(m.deps.Export.ArquivoSQL); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "%d tabelas exportadas para %s e script em %s\n",
		len(gerados), m.deps.Export.PastaPowerBI, m.deps.Export.ArquivoSQL)
	return nil
}

func (m *Menu) gerarDashboard() error {
	modelo, err := m.deps.BIUC.GerarModelo()
	if err != nil {
		return err
	}
	if err := m.deps.Dashboard.Gerar(modelo, m.deps.Export.ArquivoPNG); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Dashboard gravado em %s\n", m.deps.Export.ArquivoPNG)
	return nil
}

func (m *Menu) gerarPDF() error {
	resumo, err := m.deps.ReportUC.Resumo()
	if err != nil {
		return err
	}
	if err := m.deps.PDF.GerarArquivo(resumo, m.deps.Export.ArquivoPDF); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Relatório gravado em %s\n", m.deps.Export.ArquivoPDF)
	return nil
}

func decimalOuTraco(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	return d.String()
}
