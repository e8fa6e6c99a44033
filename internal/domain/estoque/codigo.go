package estoque

import (
	"fmt"
	"strconv"
	"strings"
)

// ProximoCodigo gera o próximo código de produto (serviço de domínio).
// Extrai o sufixo numérico de cada código existente ignorando caracteres não
// numéricos; códigos sem dígitos são pulados em silêncio. Sem nenhum sufixo
// válido o resultado é "P001"; caso contrário "P{max+1:03d}".
func ProximoCodigo(existentes []string) string {
	max := 0
	encontrou := false
	for _, cod := range existentes {
		var digitos strings.Builder
		for _, r := range cod {
			if r >= '0' && r <= '9' {
				digitos.WriteRune(r)
			}
		}
		if digitos.Len() == 0 {
			continue
		}
		n, err := strconv.Atoi(digitos.String())
		if err != nil {
			continue
		}
		encontrou = true
		if n > max {
			max = n
		}
	}
	if !encontrou {
		return "P001"
	}
	return fmt.Sprintf("P%03d", max+1)
}
