// Package spreadsheet implementa as portas de persistência sobre o workbook
// xlsx que atua como base de dados do sistema (via excelize).
//
// Toda mutação é um ciclo completo load-modify-save do arquivo; não há lock
// nem rename atômico — escrita com o arquivo aberto em outro programa falha
// rápido e é devolvida ao operador como condição retryável.
package spreadsheet

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/estoquelab/controle-estoque/internal/domain"
)

// Nomes das abas — contrato fixo com o arquivo (não mudar).
const (
	AbaBase           = "Base"
	AbaEntradas       = "Entradas"
	AbaSaidas         = "Saídas"
	AbaEstoqueAtual   = "Estoque Atual"
	AbaEstoqueCritico = "Estoque Crítico"
)

// Cabeçalhos de cada aba, na ordem das colunas — contrato fixo.
var (
	ColunasBase = []string{
		"Código",
		"Nome do Produto",
		"Descrição",
		"Tipo de Produto",
		"Estoque Mínimo",
		"Valor Unitário (R$)",
		"Fornecedor",
		"Localização",
	}
	ColunasEntradas = []string{
		"Data da Entrada",
		"Documento (Nota Fiscal / Nº de Compra)",
		"Produto / Material",
		"Quantidade",
		"Valor Unitário de Compra (R$)",
		"Valor Total (R$)",
	}
	ColunasSaidas = []string{
		"Data da Saída",
		"Produto / Material",
		"Quantidade Retirada",
		"Motivo da Saída",
	}
	ColunasEstoqueAtual = []string{
		"Produto / Material",
		"Estoque Inicial",
		"Total de Entradas",
		"Total de Saídas",
		"Saldo Atual",
	}
	ColunasEstoqueCritico = []string{
		"Nome do Produto",
		"Estoque Atual",
		"Estoque Mínimo",
		"Status (Ex.: 'Repor' / 'OK')",
	}
)

// Workbook encapsula acesso ao arquivo xlsx compartilhado entre os
// repositórios. Único escritor é pré-condição do chamador, não garantida aqui.
type Workbook struct {
	Caminho string
}

// NewWorkbook constrói o acesso ao workbook no caminho dado.
func NewWorkbook(caminho string) *Workbook {
	return &Workbook{Caminho: caminho}
}

// abrir abre o arquivo mapeando erros de sistema para erros de domínio.
func (w *Workbook) abrir() (*excelize.File, error) {
	f, err := excelize.OpenFile(w.Caminho)
	if err != nil {
		return nil, mapearErroArquivo(err)
	}
	return f, nil
}

// salvar grava o workbook de volta no mesmo caminho.
func (w *Workbook) salvar(f *excelize.File) error {
	if err := f.SaveAs(w.Caminho); err != nil {
		return mapearErroArquivo(err)
	}
	return nil
}

func mapearErroArquivo(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrPlanilhaNaoEncontrada
	}
	if errors.Is(err, fs.ErrPermission) {
		return domain.ErrPlanilhaAberta
	}
	return err
}

// proximaLinha devolve a primeira linha livre da aba (1-based). GetRows
// ignora linhas vazias no final, então isto equivale a max_row+1.
func proximaLinha(f *excelize.File, aba string) (int, error) {
	rows, err := f.GetRows(aba)
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}

// celula converte coordenadas (coluna, linha) 1-based em nome de célula.
func celula(col, linha int) string {
	nome, _ := excelize.CoordinatesToCellName(col, linha)
	return nome
}

// parseDecimal interpreta o texto de uma célula numérica. Vírgula decimal é
// tolerada (arquivo editado à mão em locale pt-BR). Vazio ou ilegível → nil.
func parseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// parseDecimalOuZero como parseDecimal, mas degrada para zero.
func parseDecimalOuZero(s string) decimal.Decimal {
	if d := parseDecimal(s); d != nil {
		return *d
	}
	return decimal.Zero
}

// valorCalculado lê uma célula com fórmula: tenta o motor de cálculo do
// excelize e cai para o valor em cache gravado pelo último programa que
// salvou o arquivo. Sem valor legível devolve "".
func valorCalculado(f *excelize.File, aba, cel string) string {
	if v, err := f.CalcCellValue(aba, cel); err == nil && v != "" {
		return v
	}
	v, err := f.GetCellValue(aba, cel)
	if err != nil {
		return ""
	}
	// GetCellValue pode devolver a própria fórmula quando não há cache.
	if strings.HasPrefix(v, "=") {
		return ""
	}
	return v
}

// cellStr acesso seguro a uma coluna de uma linha devolvida por GetRows.
func cellStr(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
