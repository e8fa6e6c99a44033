package spreadsheet

import (
	"github.com/xuri/excelize/v2"
)

// larguras de coluna por aba, na ordem A, B, C, ...
var largurasPorAba = map[string][]float64{
	AbaBase:           {12, 25, 30, 18, 15, 18, 20, 15},
	AbaEntradas:       {18, 35, 20, 15, 28, 20},
	AbaSaidas:         {18, 20, 20, 30},
	AbaEstoqueAtual:   {20, 18, 20, 18, 18},
	AbaEstoqueCritico: {25, 18, 18, 25},
}

// Criar gera o workbook de controle de estoque com as cinco abas vazias e os
// cabeçalhos formatados, e o salva no caminho do Workbook. Sobrescreve um
// arquivo existente.
func (w *Workbook) Criar() error {
	f := excelize.NewFile()
	defer f.Close()

	estilo, err := estiloCabecalho(f)
	if err != nil {
		return err
	}

	abas := []struct {
		nome    string
		colunas []string
	}{
		{AbaBase, ColunasBase},
		{AbaEntradas, ColunasEntradas},
		{AbaSaidas, ColunasSaidas},
		{AbaEstoqueAtual, ColunasEstoqueAtual},
		{AbaEstoqueCritico, ColunasEstoqueCritico},
	}

	for _, aba := range abas {
		if _, err := f.NewSheet(aba.nome); err != nil {
			return err
		}
		linha := make([]interface{}, len(aba.colunas))
		for i, c := range aba.colunas {
			linha[i] = c
		}
		if err := f.SetSheetRow(aba.nome, "A1", &linha); err != nil {
			return err
		}
		if err := f.SetCellStyle(aba.nome, "A1", celula(len(aba.colunas), 1), estilo); err != nil {
			return err
		}
		for i, largura := range largurasPorAba[aba.nome] {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(aba.nome, col, col, largura); err != nil {
				return err
			}
		}
	}

	// Remove a aba padrão criada pelo excelize
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return w.salvar(f)
}

// estiloCabecalho fundo azul, fonte branca em negrito, centralizado e
// bordas finas em todas as abas.
func estiloCabecalho(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
	})
}
