// internal/calendario/calendario.go
package calendario

import "time"

// chave de feriado no formato AAAA-MM-DD (só a data importa, nunca a hora).
const formatoDia = "2006-01-02"

// Calendario decide se uma data é dia útil: sábado, domingo e feriados
// configurados para o ano da data não são dias úteis. É configuração imutável
// montada na inicialização.
//
// Anos sem conjunto de feriados configurado são tratados como "sem feriados"
// (apenas fins de semana) — degradação deliberada para não travar o pipeline
// fora da janela configurada, e lacuna conhecida para quem operar nesses anos.
type Calendario struct {
	feriados map[int]map[string]struct{}
}

// NewCalendario monta um calendário a partir dos feriados por ano.
func NewCalendario(feriadosPorAno map[int][]time.Time) *Calendario {
	feriados := make(map[int]map[string]struct{}, len(feriadosPorAno))
	for ano, dias := range feriadosPorAno {
		conjunto := make(map[string]struct{}, len(dias))
		for _, dia := range dias {
			conjunto[dia.Format(formatoDia)] = struct{}{}
		}
		feriados[ano] = conjunto
	}
	return &Calendario{feriados: feriados}
}

// EhFeriado verifica se a data cai em feriado do ano dela.
func (c *Calendario) EhFeriado(data time.Time) bool {
	conjunto, ok := c.feriados[data.Year()]
	if !ok {
		return false
	}
	_, feriado := conjunto[data.Format(formatoDia)]
	return feriado
}

// EhDiaUtil verifica se a data é dia útil (não é fim de semana nem feriado).
func (c *Calendario) EhDiaUtil(data time.Time) bool {
	switch data.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.EhFeriado(data)
}

// ProximoDiaUtil devolve a própria data se já for dia útil; senão avança um
// dia de cada vez até encontrar um. O conjunto de feriados é resolvido pelo
// ano da data candidata a cada passo, então a virada de ano durante o avanço
// troca de tabela corretamente. Termina sempre: fins de semana são periódicos
// e o conjunto de feriados de cada ano é finito.
func (c *Calendario) ProximoDiaUtil(data time.Time) time.Time {
	for !c.EhDiaUtil(data) {
		data = data.AddDate(0, 0, 1)
	}
	return data
}
