// Package cli implementa o menu interativo do operador no terminal.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquelab/controle-estoque/internal/domain/entity"
)

// Prompter lê respostas do operador com validação e re-pergunta em caso de
// entrada inválida; nunca devolve erro por digitação.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constrói o leitor de prompts.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// LerTexto lê uma linha; vazia devolve o padrão.
func (p *Prompter) LerTexto(rotulo, padrao string) string {
	if padrao != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", rotulo, padrao)
	} else {
		fmt.Fprintf(p.out, "%s: ", rotulo)
	}
	linha := p.lerLinha()
	if linha == "" {
		return padrao
	}
	return linha
}

// LerDecimal lê um número aceitando vírgula ou ponto decimal; re-pergunta
// até receber um valor válido e não negativo. Vazio devolve o padrão.
func (p *Prompter) LerDecimal(rotulo string, padrao decimal.Decimal) decimal.Decimal {
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", rotulo, padrao.String())
		linha := p.lerLinha()
		if linha == "" {
			return padrao
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(linha, ",", "."))
		if err != nil || d.IsNegative() {
			fmt.Fprintln(p.out, "Valor inválido, tente novamente.")
			continue
		}
		return d
	}
}

// LerData lê uma data DD/MM/YYYY; vazia devolve a data de hoje. Re-pergunta
// até o formato ser válido.
func (p *Prompter) LerData(rotulo string, agora func() time.Time) string {
	hoje := agora().Format(entity.FormatoData)
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", rotulo, hoje)
		linha := p.lerLinha()
		if linha == "" {
			return hoje
		}
		if _, err := time.Parse(entity.FormatoData, linha); err != nil {
			fmt.Fprintln(p.out, "Data inválida, use o formato DD/MM/AAAA.")
			continue
		}
		return linha
	}
}

// Confirmar pergunta sim/não; vazio vale "não".
func (p *Prompter) Confirmar(rotulo string) bool {
	fmt.Fprintf(p.out, "%s (s/N): ", rotulo)
	linha := strings.ToLower(p.lerLinha())
	return linha == "s" || linha == "sim"
}

// Escolher apresenta opções numeradas e devolve a escolhida; texto livre
// fora da lista é aceito como resposta literal.
func (p *Prompter) Escolher(rotulo string, opcoes []string) string {
	fmt.Fprintln(p.out, rotulo)
	for i, op := range opcoes {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, op)
	}
	fmt.Fprint(p.out, "Opção (ou texto livre): ")
	linha := p.lerLinha()
	for i, op := range opcoes {
		if linha == fmt.Sprintf("%d", i+1) {
			return op
		}
	}
	if linha == "" && len(opcoes) > 0 {
		return opcoes[0]
	}
	return linha
}

func (p *Prompter) lerLinha() string {
	linha, err := p.in.ReadString('\n')
	if err != nil && linha == "" {
		return ""
	}
	return strings.TrimSpace(linha)
}
