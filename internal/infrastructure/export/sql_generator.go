package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/estoquelab/controle-estoque/internal/application/bi"
)

// SQLGenerator gera o script DDL do modelo estrela a partir do mesmo
// catálogo de tabelas usado pelos CSVs: esquema descrito uma única vez.
type SQLGenerator struct {
	Agora func() time.Time
}

// NewSQLGenerator constrói o gerador de DDL.
func NewSQLGenerator() *SQLGenerator {
	return &SQLGenerator{Agora: time.Now}
}

// Gerar monta o script completo: tabelas, índices e views de análise.
func (g *SQLGenerator) Gerar() string {
	var b strings.Builder

	fmt.Fprintf(&b, "-- Modelo estrela do controle de estoque\n")
	fmt.Fprintf(&b, "-- Gerado em %s\n\n", g.Agora().Format("02/01/2006 15:04:05"))

	for _, tab := range bi.Tabelas() {
		fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", tab.Nome)
		fmt.Fprintf(&b, "CREATE TABLE %s (\n", tab.Nome)
		for i, col := range tab.Colunas {
			virgula := ","
			if i == len(tab.Colunas)-1 {
				virgula = ""
			}
			fmt.Fprintf(&b, "    %s %s%s\n", strings.ToLower(col.Nome), col.TipoSQL, virgula)
		}
		b.WriteString(");\n\n")
	}

	b.WriteString(indicesSQL)
	b.WriteString(viewsSQL)
	return b.String()
}

// GerarArquivo grava o script no caminho configurado.
func (g *SQLGenerator) GerarArquivo(caminho string) error {
	if err := os.MkdirAll(filepath.Dir(caminho), 0o755); err != nil {
		return fmt.Errorf("criando pasta do script SQL: %w", err)
	}
	if err := os.WriteFile(caminho, []byte(g.Gerar()), 0o644); err != nil {
		return fmt.Errorf("gravando script SQL: %w", err)
	}
	return nil
}

const indicesSQL = `-- Índices das consultas mais comuns
CREATE INDEX idx_mov_data ON fato_movimentacoes (data_movimentacao);
CREATE INDEX idx_mov_produto ON fato_movimentacoes (codigo_produto);
CREATE INDEX idx_mov_tipo ON fato_movimentacoes (tipo_movimentacao);
CREATE INDEX idx_estoque_status ON fato_estoque_atual (status_estoque);

`

const viewsSQL = `-- Views de análise
CREATE VIEW vw_estoque_valorizado AS
SELECT
    e.codigo_produto,
    e.nome_produto,
    e.categoria,
    e.saldo_atual,
    e.valor_unitario,
    e.valor_total_estoque
FROM fato_estoque_atual e
ORDER BY e.valor_total_estoque DESC;

CREATE VIEW vw_movimentacoes_mensais AS
SELECT
    m.ano,
    m.mes,
    m.mes_nome,
    m.tipo_movimentacao,
    SUM(m.quantidade_movimento) AS quantidade_total,
    COUNT(*) AS total_movimentos
FROM fato_movimentacoes m
GROUP BY m.ano, m.mes, m.mes_nome, m.tipo_movimentacao;

CREATE VIEW vw_top_produtos_movimentados AS
SELECT
    m.codigo_produto,
    p.nome_produto,
    SUM(ABS(m.quantidade_movimento)) AS movimento_total
FROM fato_movimentacoes m
LEFT JOIN dim_produtos p ON p.codigo_produto = m.codigo_produto
GROUP BY m.codigo_produto, p.nome_produto
ORDER BY movimento_total DESC;

CREATE VIEW vw_produtos_criticos AS
SELECT
    e.codigo_produto,
    e.nome_produto,
    e.saldo_atual,
    e.estoque_minimo,
    e.deficit_estoque
FROM fato_estoque_atual e
WHERE e.status_estoque = 'Crítico'
ORDER BY e.deficit_estoque DESC;
`
