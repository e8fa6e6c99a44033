// Package export grava os artefatos de análise: CSVs crus das abas, CSVs do
// modelo estrela para Power BI e o script SQL do modelo.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// utf8BOM marca o arquivo como UTF-8 para o Excel/Power BI abrir acentuação
// corretamente sem perguntar o encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Dialeto controla o formato textual dos CSVs gerados.
type Dialeto struct {
	Separador      rune
	DecimalVirgula bool
}

// DialetoPowerBI dialeto regional pt-BR esperado pelo Power BI.
var DialetoPowerBI = Dialeto{Separador: ';', DecimalVirgula: true}

// DialetoPadrao CSV convencional (vírgula, ponto decimal).
var DialetoPadrao = Dialeto{Separador: ','}

// EscreverCSV grava cabeçalho e linhas no caminho dado, criando a pasta de
// destino se preciso. Valores tipados são formatados pelo dialeto.
func EscreverCSV(caminho string, d Dialeto, cabecalho []string, linhas [][]any) error {
	if err := os.MkdirAll(filepath.Dir(caminho), 0o755); err != nil {
		return fmt.Errorf("criando pasta de exportação: %w", err)
	}

	f, err := os.Create(caminho)
	if err != nil {
		return fmt.Errorf("criando %s: %w", caminho, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("escrevendo BOM em %s: %w", caminho, err)
	}

	w := csv.NewWriter(f)
	w.Comma = d.Separador

	if err := w.Write(cabecalho); err != nil {
		return fmt.Errorf("escrevendo cabeçalho de %s: %w", caminho, err)
	}
	registro := make([]string, len(cabecalho))
	for _, linha := range linhas {
		for i, v := range linha {
			registro[i] = d.formatar(v)
		}
		if err := w.Write(registro); err != nil {
			return fmt.Errorf("escrevendo linha de %s: %w", caminho, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("finalizando %s: %w", caminho, err)
	}
	return f.Close()
}

// formatar converte um valor de célula para texto. Ponteiros nil viram campo
// vazio; datas saem no formato da planilha (DD/MM/YYYY).
func (d Dialeto) formatar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case int:
		return fmt.Sprintf("%d", x)
	case *int:
		if x == nil {
			return ""
		}
		return fmt.Sprintf("%d", *x)
	case decimal.Decimal:
		return d.formatarDecimal(x)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return d.formatarDecimal(*x)
	case time.Time:
		return x.Format(entity.FormatoData)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format(entity.FormatoData)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func (d Dialeto) formatarDecimal(v decimal.Decimal) string {
	s := v.String()
	if d.DecimalVirgula {
		s = strings.ReplaceAll(s, ".", ",")
	}
	return s
}
