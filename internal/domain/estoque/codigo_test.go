package estoque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estoquelab/controle-estoque/internal/domain/estoque"
)

func TestProximoCodigo(t *testing.T) {
	tests := []struct {
		name       string
		existentes []string
		want       string
	}{
		{
			name:       "base vazia começa em P001",
			existentes: nil,
			want:       "P001",
		},
		{
			name:       "sequência contínua",
			existentes: []string{"P001", "P002", "P003"},
			want:       "P004",
		},
		{
			name:       "buracos na sequência usam o máximo",
			existentes: []string{"P001", "P003"},
			want:       "P004",
		},
		{
			name:       "ordem de chegada não importa",
			existentes: []string{"P010", "P002"},
			want:       "P011",
		},
		{
			name:       "códigos malformados são ignorados",
			existentes: []string{"ABC", "P007", "???"},
			want:       "P008",
		},
		{
			name:       "todos malformados volta a P001",
			existentes: []string{"ABC", "xyz", ""},
			want:       "P001",
		},
		{
			name:       "prefixo diferente ainda conta pelo sufixo numérico",
			existentes: []string{"MAT-12"},
			want:       "P013",
		},
		{
			name:       "acima de 999 não trunca",
			existentes: []string{"P999"},
			want:       "P1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estoque.ProximoCodigo(tt.existentes))
		})
	}
}
