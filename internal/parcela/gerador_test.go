package parcela

import (
	"testing"
	"time"

	"github.com/VendaCerta/api-comissoes/internal/calendario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestGerarPlanoNumerosEVencimentos(t *testing.T) {
	g := NewGerador(calendario.FeriadosNacionais())

	parcelas := g.GerarPlano(dia(2025, time.February, 28), 4, 1250.00)

	require.Len(t, parcelas, 4)
	cal := calendario.FeriadosNacionais()
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Numero)
		assert.Equal(t, 1250.00, p.Valor)
		assert.Equal(t, StatusPendente, p.Status)
		assert.True(t, cal.EhDiaUtil(p.DataVencimento))
		if i > 0 {
			assert.True(t, p.DataVencimento.After(parcelas[i-1].DataVencimento))
		}
	}

	// 28/02 + 30d = 30/03 (domingo) -> 31/03; depois 30/04, 30/05 e
	// 30/05 + 30d = 29/06 (domingo) -> 30/06.
	assert.Equal(t, dia(2025, time.March, 31), parcelas[0].DataVencimento)
	assert.Equal(t, dia(2025, time.April, 30), parcelas[1].DataVencimento)
	assert.Equal(t, dia(2025, time.May, 30), parcelas[2].DataVencimento)
	assert.Equal(t, dia(2025, time.June, 30), parcelas[3].DataVencimento)
}

func TestGerarPlanoPassoParteDoVencimentoAjustado(t *testing.T) {
	g := NewGerador(calendario.FeriadosNacionais())

	// 04/03/2026 + 30d = 03/04 (Sexta-feira Santa) -> 06/04 segunda.
	// A 2ª parcela parte da data AJUSTADA: 06/04 + 30d = 06/05 (quarta).
	// Se o passo partisse de "base + n*30" cairia em 03/05 (domingo) -> 04/05.
	parcelas := g.GerarPlano(dia(2026, time.March, 4), 2, 500)

	require.Len(t, parcelas, 2)
	assert.Equal(t, dia(2026, time.April, 6), parcelas[0].DataVencimento)
	assert.Equal(t, dia(2026, time.May, 6), parcelas[1].DataVencimento)
}

func TestGerarPlanoAtravessaBlocoDeFeriadosColadoAoFimDeSemana(t *testing.T) {
	// Feriados na sexta e na segunda: o vencimento que cai na sexta só
	// encontra dia útil na terça seguinte.
	cal := calendario.NewCalendario(map[int][]time.Time{
		2025: {dia(2025, time.July, 4), dia(2025, time.July, 7)},
	})
	g := NewGerador(cal)

	parcelas := g.GerarPlano(dia(2025, time.June, 4), 1, 300)

	require.Len(t, parcelas, 1)
	assert.Equal(t, dia(2025, time.July, 8), parcelas[0].DataVencimento)
}

func TestGerarPlanoDegradaParaVazio(t *testing.T) {
	g := NewGerador(calendario.FeriadosNacionais())
	base := dia(2025, time.September, 1)

	assert.Empty(t, g.GerarPlano(base, 0, 100))
	assert.Empty(t, g.GerarPlano(base, -3, 100))
	assert.Empty(t, g.GerarPlano(base, 5, 0))
	assert.Empty(t, g.GerarPlano(base, 5, -0.01))
}

func TestGerarPlanoPropriedadesParaVariosTamanhos(t *testing.T) {
	g := NewGerador(calendario.FeriadosNacionais())
	cal := calendario.FeriadosNacionais()

	for _, n := range []int{1, 2, 6, 12, 24} {
		parcelas := g.GerarPlano(dia(2024, time.January, 15), n, 99.90)
		require.Len(t, parcelas, n)
		for i, p := range parcelas {
			assert.Equal(t, i+1, p.Numero)
			assert.True(t, cal.EhDiaUtil(p.DataVencimento))
			if i > 0 {
				assert.True(t, p.DataVencimento.After(parcelas[i-1].DataVencimento))
			}
		}
	}
}
