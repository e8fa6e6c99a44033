package spreadsheet

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
	"github.com/estoquelab/controle-estoque/internal/domain/repository"
)

var _ repository.SaldoRepository = (*SaldoRepo)(nil)

// SaldoRepo leitura das abas derivadas Estoque Atual e Estoque Crítico.
// Os valores vêm de fórmulas: cada célula é resolvida pelo motor de cálculo
// do excelize com fallback para o valor em cache; ilegível → nil.
type SaldoRepo struct {
	wb *Workbook
}

// NewSaldoRepository constrói o adaptador de leitura de saldos.
func NewSaldoRepository(wb *Workbook) *SaldoRepo {
	return &SaldoRepo{wb: wb}
}

// GetByCodigo devolve o saldo do produto ou (nil, nil) se não houver linha.
func (r *SaldoRepo) GetByCodigo(codigo string) (*entity.SaldoEstoque, error) {
	saldos, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, s := range saldos {
		if s.CodigoProduto == codigo {
			return s, nil
		}
	}
	return nil, nil
}

// List lê todas as linhas de Estoque Atual, na ordem das linhas.
func (r *SaldoRepo) List() ([]*entity.SaldoEstoque, error) {
	f, err := r.wb.abrir()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(AbaEstoqueAtual)
	if err != nil {
		return nil, fmt.Errorf("aba %s: %w", AbaEstoqueAtual, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	saldos := make([]*entity.SaldoEstoque, 0, len(rows)-1)
	for i := range rows[1:] {
		linha := i + 2 // 1-based, pulando cabeçalho
		codigo := cellStr(rows[i+1], 0)
		if codigo == "" {
			continue
		}
		saldos = append(saldos, &entity.SaldoEstoque{
			CodigoProduto:  codigo,
			EstoqueInicial: parseDecimalOuZero(cellStr(rows[i+1], 1)),
			TotalEntradas:  decimalCalculado(f, AbaEstoqueAtual, 3, linha),
			TotalSaidas:    decimalCalculado(f, AbaEstoqueAtual, 4, linha),
			SaldoAtual:     decimalCalculado(f, AbaEstoqueAtual, 5, linha),
		})
	}
	return saldos, nil
}

// ListCritico lê todas as linhas de Estoque Crítico, na ordem das linhas.
func (r *SaldoRepo) ListCritico() ([]*entity.EstoqueCritico, error) {
	f, err := r.wb.abrir()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(AbaEstoqueCritico)
	if err != nil {
		return nil, fmt.Errorf("aba %s: %w", AbaEstoqueCritico, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	criticos := make([]*entity.EstoqueCritico, 0, len(rows)-1)
	for i := range rows[1:] {
		linha := i + 2
		nome := valorCalculado(f, AbaEstoqueCritico, celula(1, linha))
		status := valorCalculado(f, AbaEstoqueCritico, celula(4, linha))
		if nome == "" && status == "" {
			continue
		}
		criticos = append(criticos, &entity.EstoqueCritico{
			NomeProduto:   nome,
			EstoqueAtual:  decimalCalculado(f, AbaEstoqueCritico, 2, linha),
			EstoqueMinimo: decimalCalculado(f, AbaEstoqueCritico, 3, linha),
			Status:        status,
		})
	}
	return criticos, nil
}

// decimalCalculado resolve uma célula de fórmula para decimal; nil quando a
// célula não produz número legível.
func decimalCalculado(f *excelize.File, aba string, col, linha int) *decimal.Decimal {
	return parseDecimal(valorCalculado(f, aba, celula(col, linha)))
}
