// Package chart renderiza o dashboard de estoque: seis painéis compostos
// numa única imagem PNG, pronta para anexar em relatório ou e-mail.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/estoquelab/controle-estoque/internal/application/bi"
	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// Dimensões de cada painel e da grade (3 colunas × 2 linhas).
const (
	larguraPainel = 640
	alturaPainel  = 420
	colunasGrade  = 3
	linhasGrade   = 2
)

// topN produtos exibidos nos painéis de ranking.
const topN = 5

// Dashboard gera a imagem composta a partir do modelo estrela.
type Dashboard struct{}

// NewDashboard constrói o gerador do dashboard.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Gerar renderiza os seis painéis e grava o PNG composto no caminho dado.
// Painel sem dados vira um marcador "Sem dados" em vez de derrubar o todo.
func (d *Dashboard) Gerar(m *bi.Modelo, caminho string) error {
	paineis := []func(*bi.Modelo) ([]byte, error){
		painelSaldoPorProduto,
		painelValorPorCategoria,
		painelStatusEstoque,
		painelEntradasSaidas,
		painelProdutosPorCategoria,
		painelTopMovimentados,
	}

	imagens := make([]image.Image, 0, len(paineis))
	for i, painel := range paineis {
		dados, err := painel(m)
		if err != nil {
			return fmt.Errorf("renderizando painel %d: %w", i+1, err)
		}
		img, err := png.Decode(bytes.NewReader(dados))
		if err != nil {
			return fmt.Errorf("decodificando painel %d: %w", i+1, err)
		}
		imagens = append(imagens, img)
	}

	composto := compor(imagens)

	if err := os.MkdirAll(filepath.Dir(caminho), 0o755); err != nil {
		return fmt.Errorf("criando pasta do dashboard: %w", err)
	}
	f, err := os.Create(caminho)
	if err != nil {
		return fmt.Errorf("criando %s: %w", caminho, err)
	}
	defer f.Close()
	if err := png.Encode(f, composto); err != nil {
		return fmt.Errorf("gravando dashboard: %w", err)
	}
	return f.Close()
}

// compor monta a grade 3×2 sobre fundo branco.
func compor(paineis []image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, larguraPainel*colunasGrade, alturaPainel*linhasGrade))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, img := range paineis {
		x := (i % colunasGrade) * larguraPainel
		y := (i / colunasGrade) * alturaPainel
		r := image.Rect(x, y, x+larguraPainel, y+alturaPainel)
		draw.Draw(dst, r, img, img.Bounds().Min, draw.Over)
	}
	return dst
}

// ── Painéis ──────────────────────────────────────────────────────────────

func painelTopMovimentados(m *bi.Modelo) ([]byte, error) {
	totais := map[string]float64{}
	for _, mv := range m.Movimentacoes {
		totais[mv.CodigoProduto] += mv.Quantidade.Abs().InexactFloat64()
	}

	valores := make([]gochart.Value, 0, len(totais))
	for codigo, total := range totais {
		valores = append(valores, gochart.Value{Label: codigo, Value: total})
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Value > valores[j].Value })
	if len(valores) > topN {
		valores = valores[:topN]
	}

	return renderBarras("Top 5 Produtos Mais Movimentados", valores)
}

func painelEntradasSaidas(m *bi.Modelo) ([]byte, error) {
	var entradas, saidas float64
	for _, mv := range m.Movimentacoes {
		if mv.Tipo == entity.MovimentoEntrada {
			entradas += mv.Quantidade.InexactFloat64()
		} else {
			saidas += mv.Quantidade.Abs().InexactFloat64()
		}
	}

	var valores []gochart.Value
	if entradas > 0 || saidas > 0 {
		valores = []gochart.Value{
			{Label: "Entradas", Value: entradas},
			{Label: "Saídas", Value: saidas},
		}
	}
	return renderBarras("Entradas × Saídas (quantidade)", valores)
}

func painelValorPorCategoria(m *bi.Modelo) ([]byte, error) {
	totais := map[string]float64{}
	for _, e := range m.Estoque {
		if e.Categoria == nil || e.ValorTotal == nil {
			continue
		}
		totais[*e.Categoria] += e.ValorTotal.InexactFloat64()
	}

	valores := make([]gochart.Value, 0, len(totais))
	for cat, total := range totais {
		valores = append(valores, gochart.Value{Label: cat, Value: total})
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Value > valores[j].Value })

	return renderBarras("Valor em Estoque por Categoria (R$)", valores)
}

// painelSaldoPorProduto saldos conhecidos, maiores primeiro.
func painelSaldoPorProduto(m *bi.Modelo) ([]byte, error) {
	var valores []gochart.Value
	for _, e := range m.Estoque {
		if e.SaldoAtual == nil {
			continue
		}
		rotulo := e.CodigoProduto
		if e.NomeProduto != nil {
			rotulo = *e.NomeProduto
		}
		valores = append(valores, gochart.Value{Label: rotulo, Value: e.SaldoAtual.InexactFloat64()})
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Value > valores[j].Value })
	if len(valores) > 2*topN {
		valores = valores[:2*topN]
	}

	return renderBarras("Saldo Atual por Produto", valores)
}

// painelStatusEstoque proporção Crítico × Normal.
func painelStatusEstoque(m *bi.Modelo) ([]byte, error) {
	var criticos, normais float64
	for _, e := range m.Estoque {
		if e.Status == bi.StatusCritico {
			criticos++
		} else {
			normais++
		}
	}
	if criticos == 0 && normais == 0 {
		return renderBarras("Status do Estoque", nil)
	}

	valores := make([]gochart.Value, 0, 2)
	if criticos > 0 {
		valores = append(valores, gochart.Value{
			Label: bi.StatusCritico,
			Value: criticos,
			Style: gochart.Style{FillColor: drawing.ColorFromHex("c00000")},
		})
	}
	if normais > 0 {
		valores = append(valores, gochart.Value{Label: bi.StatusNormal, Value: normais})
	}

	pie := gochart.PieChart{
		Title:  "Status do Estoque",
		Width:  larguraPainel,
		Height: alturaPainel,
		Values: valores,
	}
	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func painelProdutosPorCategoria(m *bi.Modelo) ([]byte, error) {
	totais := map[string]float64{}
	for _, p := range m.Produtos {
		totais[p.Categoria]++
	}

	valores := make([]gochart.Value, 0, len(totais))
	for cat, n := range totais {
		valores = append(valores, gochart.Value{Label: cat, Value: n})
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Value > valores[j].Value })

	if len(valores) == 0 {
		return renderBarras("Produtos por Categoria", nil)
	}

	pie := gochart.PieChart{
		Title:  "Produtos por Categoria",
		Width:  larguraPainel,
		Height: alturaPainel,
		Values: valores,
	}
	var buf bytes.Buffer
	if err := pie.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderBarras renderiza um gráfico de barras; sem valores, um marcador
// neutro "Sem dados" ocupa o painel.
func renderBarras(titulo string, valores []gochart.Value) ([]byte, error) {
	if len(valores) == 0 {
		valores = []gochart.Value{{
			Label: "Sem dados",
			Value: 1,
			Style: gochart.Style{FillColor: drawing.ColorFromHex("d9d9d9")},
		}}
	}

	barras := gochart.BarChart{
		Title:    titulo,
		Width:    larguraPainel,
		Height:   alturaPainel,
		BarWidth: 40,
		Bars:     valores,
		XAxis:    gochart.Style{TextRotationDegrees: 45},
	}

	var buf bytes.Buffer
	if err := barras.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
