package bi

import "time"

var mesesPT = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var diasSemanaPT = [...]string{
	"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira",
	"Quinta-feira", "Sexta-feira", "Sábado",
}

// NomeMes nome do mês em português (1..12).
func NomeMes(m time.Month) string {
	return mesesPT[int(m)-1]
}

// NomeDiaSemana nome do dia da semana em português.
func NomeDiaSemana(d time.Weekday) string {
	return diasSemanaPT[int(d)]
}

// Trimestre trimestre do ano (1..4).
func Trimestre(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// preencherCalendario deriva os atributos de calendário da data da
// movimentação; data nil deixa tudo nil/vazio.
func preencherCalendario(m *Movimentacao) {
	if m.Data == nil {
		return
	}
	ano := m.Data.Year()
	mes := int(m.Data.Month())
	dia := m.Data.Day()
	tri := Trimestre(m.Data.Month())
	m.Ano = &ano
	m.Mes = &mes
	m.Dia = &dia
	m.Trimestre = &tri
	m.MesNome = NomeMes(m.Data.Month())
	m.DiaSemana = NomeDiaSemana(m.Data.Weekday())
}
