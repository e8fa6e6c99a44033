package spreadsheet

import (
	"fmt"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação do port MovimentoRepository sobre as abas
// Entradas e Saídas (append-only).
type MovimentoRepo struct {
	wb *Workbook
}

// NewMovimentoRepository constrói o adaptador de persistência de movimentos.
func NewMovimentoRepository(wb *Workbook) *MovimentoRepo {
	return &MovimentoRepo{wb: wb}
}

// AppendEntrada acrescenta uma linha na aba Entradas. O valor total é
// gravado como fórmula =Dn*En, avaliada pelo motor da planilha.
func (r *MovimentoRepo) AppendEntrada(e *entity.Entrada) error {
	f, err := r.wb.abrir()
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := proximaLinha(f, AbaEntradas)
	if err != nil {
		return fmt.Errorf("aba %s: %w", AbaEntradas, err)
	}

	linha := []interface{}{
		e.Data,
		e.Documento,
		e.CodigoProduto,
		e.Quantidade.InexactFloat64(),
		e.ValorUnitario.InexactFloat64(),
	}
	if err := f.SetSheetRow(AbaEntradas, celula(1, n), &linha); err != nil {
		return fmt.Errorf("gravar entrada: %w", err)
	}
	total := fmt.Sprintf("=D%d*E%d", n, n)
	if err := f.SetCellFormula(AbaEntradas, celula(6, n), total); err != nil {
		return fmt.Errorf("gravar entrada: %w", err)
	}

	return r.wb.salvar(f)
}

// AppendSaida acrescenta uma linha na aba Saídas. Nenhum saldo é
// decrementado aqui: o saldo é re-derivado por fórmula do histórico.
func (r *MovimentoRepo) AppendSaida(s *entity.Saida) error {
	f, err := r.wb.abrir()
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := proximaLinha(f, AbaSaidas)
	if err != nil {
		return fmt.Errorf("aba %s: %w", AbaSaidas, err)
	}

	linha := []interface{}{
		s.Data,
		s.CodigoProduto,
		s.Quantidade.InexactFloat64(),
		s.Motivo,
	}
	if err := f.SetSheetRow(AbaSaidas, celula(1, n), &linha); err != nil {
		return fmt.Errorf("gravar saída: %w", err)
	}

	return r.wb.salvar(f)
}

// ListEntradas devolve as entradas na ordem das linhas da aba.
func (r *MovimentoRepo) ListEntradas() ([]*entity.Entrada, error) {
	f, err := r.wb.abrir()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(AbaEntradas)
	if err != nil {
		return nil, fmt.Errorf("aba %s: %w", AbaEntradas, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	entradas := make([]*entity.Entrada, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if cellStr(row, 2) == "" && cellStr(row, 0) == "" {
			continue
		}
		entradas = append(entradas, &entity.Entrada{
			Data:          cellStr(row, 0),
			Documento:     cellStr(row, 1),
			CodigoProduto: cellStr(row, 2),
			Quantidade:    parseDecimalOuZero(cellStr(row, 3)),
			ValorUnitario: parseDecimalOuZero(cellStr(row, 4)),
		})
	}
	return entradas, nil
}

// ListSaidas devolve as saídas na ordem das linhas da aba.
func (r *MovimentoRepo) ListSaidas() ([]*entity.Saida, error) {
	f, err := r.wb.abrir()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(AbaSaidas)
	if err != nil {
		return nil, fmt.Errorf("aba %s: %w", AbaSaidas, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	saidas := make([]*entity.Saida, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if cellStr(row, 1) == "" && cellStr(row, 0) == "" {
			continue
		}
		saidas = append(saidas, &entity.Saida{
			Data:          cellStr(row, 0),
			CodigoProduto: cellStr(row, 1),
			Quantidade:    parseDecimalOuZero(cellStr(row, 2)),
			Motivo:        cellStr(row, 3),
		})
	}
	return saidas, nil
}
