package export

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/pkg/config"
	"github.com/estoquelab/controle-estoque/pkg/logger"
)

// BIExporter grava o modelo estrela como um CSV por tabela, no dialeto
// regional configurado, prontos para importação no Power BI.
type BIExporter struct {
	cfg config.ExportConfig
	log *logger.Logger
}

// NewBIExporter constrói o exportador do modelo estrela.
func NewBIExporter(cfg config.ExportConfig, log *logger.Logger) *BIExporter {
	return &BIExporter{cfg: cfg, log: log}
}

// Exportar grava um CSV por tabela do modelo e devolve os caminhos gerados.
// Tabelas só de DDL (dim_tempo) não geram arquivo.
func (e *BIExporter) Exportar(m *bi.Modelo) ([]string, error) {
	lote := uuid.New().String()
	dialeto := Dialeto{Separador: e.cfg.SeparadorCSV, DecimalVirgula: e.cfg.DecimalVirgula}

	var gerados []string
	for _, tab := range bi.Tabelas() {
		if tab.Linhas == nil {
			continue
		}

		cabecalho := make([]string, len(tab.Colunas))
		for i, c := range tab.Colunas {
			cabecalho[i] = c.Nome
		}
		linhas := tab.Linhas(m)

		caminho := e.cfg.CaminhoPowerBI(tab.Nome)
		if err := EscreverCSV(caminho, dialeto, cabecalho, linhas); err != nil {
			return gerados, fmt.Errorf("exportando tabela %s: %w", tab.Nome, err)
		}
		gerados = append(gerados, caminho)

		e.log.Info().
			Str("lote", lote).
			Str("tabela", tab.Nome).
			Int("linhas", len(linhas)).
			Str("arquivo", caminho).
			Msg("tabela do modelo exportada")
	}
	return gerados, nil
}
