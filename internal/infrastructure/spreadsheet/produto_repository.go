package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do port ProdutoRepository sobre a aba Base.
type ProdutoRepo struct {
	wb *Workbook
}

// NewProdutoRepository constrói o adaptador de persistência de produtos.
func NewProdutoRepository(wb *Workbook) *ProdutoRepo {
	return &ProdutoRepo{wb: wb}
}

// Create insere a linha mestre na Base e as linhas de fórmula nas abas
// Estoque Atual e Estoque Crítico, em um único load-modify-save. As fórmulas
// são avaliadas pelo motor da planilha, não por este sistema.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	f, err := r.wb.abrir()
	if err != nil {
		return err
	}
	defer f.Close()

	linhaBase, err := proximaLinha(f, AbaBase)
	if err != nil {
		return fmt.Errorf("aba %s: %w", AbaBase, err)
	}

	linha := []interface{}{
		p.Codigo,
		p.Nome,
		p.Descricao,
		p.Categoria,
		p.EstoqueMinimo.InexactFloat64(),
		p.ValorUnitario.InexactFloat64(),
		p.Fornecedor,
		p.Localizacao,
	}
	if err := f.SetSheetRow(AbaBase, celula(1, linhaBase), &linha); err != nil {
		return fmt.Errorf("gravar produto: %w", err)
	}

	if err := inserirFormulasSaldo(f, p.Codigo); err != nil {
		return err
	}
	if err := inserirFormulasCritico(f, linhaBase); err != nil {
		return err
	}

	return r.wb.salvar(f)
}

// GetByCodigo devolve o produto ou (nil, nil) se o código não existir.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	produtos, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

// List lê todos os produtos da aba Base, na ordem das linhas.
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	f, err := r.wb.abrir()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(AbaBase)
	if err != nil {
		return nil, fmt.Errorf("aba %s: %w", AbaBase, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	produtos := make([]*entity.Produto, 0, len(rows)-1)
	for _, row := range rows[1:] {
		codigo := cellStr(row, 0)
		if codigo == "" {
			continue
		}
		produtos = append(produtos, &entity.Produto{
			Codigo:        codigo,
			Nome:          cellStr(row, 1),
			Descricao:     cellStr(row, 2),
			Categoria:     cellStr(row, 3),
			EstoqueMinimo: parseDecimalOuZero(cellStr(row, 4)),
			ValorUnitario: parseDecimalOuZero(cellStr(row, 5)),
			Fornecedor:    cellStr(row, 6),
			Localizacao:   cellStr(row, 7),
		})
	}
	return produtos, nil
}

// inserirFormulasSaldo acrescenta em Estoque Atual a linha do produto:
// estoque inicial 0 e totais derivados por SUMIF sobre o histórico completo.
func inserirFormulasSaldo(f *excelize.File, codigo string) error {
	n, err := proximaLinha(f, AbaEstoqueAtual)
	if err != nil {
		return fmt.Errorf("aba %s: %w", AbaEstoqueAtual, err)
	}
	if err := f.SetCellValue(AbaEstoqueAtual, celula(1, n), codigo); err != nil {
		return err
	}
	if err := f.SetCellValue(AbaEstoqueAtual, celula(2, n), 0); err != nil {
		return err
	}
	formulas := []string{
		fmt.Sprintf("=SUMIF(Entradas!C:C,A%d,Entradas!D:D)", n),
		fmt.Sprintf("=SUMIF(Saídas!B:B,A%d,Saídas!C:C)", n),
		fmt.Sprintf("=B%d+C%d-D%d", n, n, n),
	}
	for i, formula := range formulas {
		if err := f.SetCellFormula(AbaEstoqueAtual, celula(3+i, n), formula); err != nil {
			return err
		}
	}
	return nil
}

// inserirFormulasCritico acrescenta em Estoque Crítico a linha do produto.
// O lookup do estoque atual é por código (VLOOKUP), nunca por posição; só as
// referências à Base apontam para a linha mestre recém-inserida.
func inserirFormulasCritico(f *excelize.File, linhaBase int) error {
	n, err := proximaLinha(f, AbaEstoqueCritico)
	if err != nil {
		return fmt.Errorf("aba %s: %w", AbaEstoqueCritico, err)
	}
	formulas := []string{
		fmt.Sprintf("=Base!B%d", linhaBase),
		fmt.Sprintf("=VLOOKUP(Base!A%d,'Estoque Atual'!A:E,5,FALSE)", linhaBase),
		fmt.Sprintf("=Base!E%d", linhaBase),
		fmt.Sprintf(`=IF(B%d<C%d,"%s","%s")`, n, n, entity.StatusRepor, entity.StatusOK),
	}
	for i, formula := range formulas {
		if err := f.SetCellFormula(AbaEstoqueCritico, celula(1+i, n), formula); err != nil {
			return err
		}
	}
	return nil
}
