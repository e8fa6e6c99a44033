package bi

// Descrição declarativa das tabelas do modelo estrela. É a única fonte de
// verdade para os cabeçalhos dos CSVs e para o DDL gerado: exportador e
// gerador SQL derivam tudo daqui, nunca de listas paralelas.

// Coluna uma coluna do modelo: nome de cabeçalho e tipo SQL correspondente.
type Coluna struct {
	Nome    string
	TipoSQL string
}

// Tabela uma tabela do modelo estrela. Linhas extrai os valores tipados do
// Modelo na ordem das colunas; nil marca tabela apenas de DDL (sem CSV).
type Tabela struct {
	Nome    string
	Colunas []Coluna
	Linhas  func(m *Modelo) [][]any
}

// Tabelas devolve o catálogo completo do modelo, na ordem de exportação.
func Tabelas() []Tabela {
	return []Tabela{
		{
			Nome: "fato_movimentacoes",
			Colunas: []Coluna{
				{"Data_Movimentacao", "DATE"},
				{"Codigo_Produto", "VARCHAR(20)"},
				{"Quantidade_Movimento", "DECIMAL(15,2)"},
				{"Tipo_Movimentacao", "VARCHAR(10)"},
				{"Documento", "VARCHAR(100)"},
				{"Valor_Unitario", "DECIMAL(15,2)"},
				{"Ano", "INTEGER"},
				{"Mes", "INTEGER"},
				{"Mes_Nome", "VARCHAR(20)"},
				{"Dia", "INTEGER"},
				{"Dia_Semana", "VARCHAR(20)"},
				{"Trimestre", "INTEGER"},
			},
			Linhas: func(m *Modelo) [][]any {
				linhas := make([][]any, 0, len(m.Movimentacoes))
				for _, mv := range m.Movimentacoes {
					linhas = append(linhas, []any{
						mv.Data, mv.CodigoProduto, mv.Quantidade, mv.Tipo,
						mv.Documento, mv.ValorUnitario,
						mv.Ano, mv.Mes, mv.MesNome, mv.Dia, mv.DiaSemana, mv.Trimestre,
					})
				}
				return linhas
			},
		},
		{
			Nome: "dim_produtos",
			Colunas: []Coluna{
				{"Codigo_Produto", "VARCHAR(20)"},
				{"Nome_Produto", "VARCHAR(100)"},
				{"Descricao", "VARCHAR(255)"},
				{"Categoria", "VARCHAR(50)"},
				{"Estoque_Minimo", "DECIMAL(15,2)"},
				{"Valor_Unitario", "DECIMAL(15,2)"},
				{"Fornecedor", "VARCHAR(100)"},
				{"Localizacao", "VARCHAR(50)"},
			},
			Linhas: func(m *Modelo) [][]any {
				linhas := make([][]any, 0, len(m.Produtos))
				for _, p := range m.Produtos {
					linhas = append(linhas, []any{
						p.CodigoProduto, p.NomeProduto, p.Descricao, p.Categoria,
						p.EstoqueMinimo, p.ValorUnitario, p.Fornecedor, p.Localizacao,
					})
				}
				return linhas
			},
		},
		{
			Nome: "dim_fornecedores",
			Colunas: []Coluna{
				{"ID_Fornecedor", "INTEGER"},
				{"Nome_Fornecedor", "VARCHAR(100)"},
			},
			Linhas: func(m *Modelo) [][]any {
				linhas := make([][]any, 0, len(m.Fornecedores))
				for _, f := range m.Fornecedores {
					linhas = append(linhas, []any{f.ID, f.Nome})
				}
				return linhas
			},
		},
		{
			Nome: "dim_categorias",
			Colunas: []Coluna{
				{"ID_Categoria", "INTEGER"},
				{"Nome_Categoria", "VARCHAR(50)"},
			},
			Linhas: func(m *Modelo) [][]any {
				linhas := make([][]any, 0, len(m.Categorias))
				for _, c := range m.Categorias {
					linhas = append(linhas, []any{c.ID, c.Nome})
				}
				return linhas
			},
		},
		{
			// Calendário para relacionamentos de data; materializado apenas
			// no banco, os atributos já viajam no fato de movimentações.
			Nome: "dim_tempo",
			Colunas: []Coluna{
				{"Data", "DATE"},
				{"Ano", "INTEGER"},
				{"Mes", "INTEGER"},
				{"Mes_Nome", "VARCHAR(20)"},
				{"Dia", "INTEGER"},
				{"Dia_Semana", "VARCHAR(20)"},
				{"Trimestre", "INTEGER"},
			},
		},
		{
			Nome: "fato_estoque_atual",
			Colunas: []Coluna{
				{"Codigo_Produto", "VARCHAR(20)"},
				{"Data_Referencia", "DATE"},
				{"Estoque_Inicial", "DECIMAL(15,2)"},
				{"Total_Entradas", "DECIMAL(15,2)"},
				{"Total_Saidas", "DECIMAL(15,2)"},
				{"Saldo_Atual", "DECIMAL(15,2)"},
				{"Nome_Produto", "VARCHAR(100)"},
				{"Categoria", "VARCHAR(50)"},
				{"Valor_Unitario", "DECIMAL(15,2)"},
				{"Estoque_Minimo", "DECIMAL(15,2)"},
				{"Valor_Total_Estoque", "DECIMAL(15,2)"},
				{"Status_Estoque", "VARCHAR(10)"},
				{"Deficit_Estoque", "DECIMAL(15,2)"},
			},
			Linhas: func(m *Modelo) [][]any {
				linhas := make([][]any, 0, len(m.Estoque))
				for _, e := range m.Estoque {
					linhas = append(linhas, []any{
						e.CodigoProduto, e.DataReferencia, e.EstoqueInicial,
						e.TotalEntradas, e.TotalSaidas, e.SaldoAtual,
						e.NomeProduto, e.Categoria, e.ValorUnitario, e.EstoqueMinimo,
						e.ValorTotal, e.Status, e.Deficit,
					})
				}
				return linhas
			},
		},
	}
}
