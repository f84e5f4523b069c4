// internal/calendario/feriados.go
package calendario

import "time"

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

// FeriadosNacionais monta o calendário com os feriados nacionais de 2024 a
// 2026 (fixos + móveis: Carnaval, Sexta-feira Santa e Corpus Christi). Anos
// fora dessa janela caem na regra "apenas fins de semana".
func FeriadosNacionais() *Calendario {
	return NewCalendario(map[int][]time.Time{
		2024: {
			dia(2024, time.January, 1),    // Confraternização Universal
			dia(2024, time.February, 12),  // Carnaval
			dia(2024, time.February, 13),  // Carnaval
			dia(2024, time.March, 29),     // Sexta-feira Santa
			dia(2024, time.April, 21),     // Tiradentes
			dia(2024, time.May, 1),        // Dia do Trabalho
			dia(2024, time.May, 30),       // Corpus Christi
			dia(2024, time.September, 7),  // Independência
			dia(2024, time.October, 12),   // Nossa Senhora Aparecida
			dia(2024, time.November, 2),   // Finados
			dia(2024, time.November, 15),  // Proclamação da República
			dia(2024, time.November, 20),  // Consciência Negra
			dia(2024, time.December, 25),  // Natal
		},
		2025: {
			dia(2025, time.January, 1),
			dia(2025, time.March, 3),  // Carnaval
			dia(2025, time.March, 4),  // Carnaval
			dia(2025, time.April, 18), // Sexta-feira Santa
			dia(2025, time.April, 21),
			dia(2025, time.May, 1),
			dia(2025, time.June, 19), // Corpus Christi
			dia(2025, time.September, 7),
			dia(2025, time.October, 12),
			dia(2025, time.November, 2),
			dia(2025, time.November, 15),
			dia(2025, time.November, 20),
			dia(2025, time.December, 25),
		},
		2026: {
			dia(2026, time.January, 1),
			dia(2026, time.February, 16), // Carnaval
			dia(2026, time.February, 17), // Carnaval
			dia(2026, time.April, 3),     // Sexta-feira Santa
			dia(2026, time.April, 21),
			dia(2026, time.May, 1),
			dia(2026, time.June, 4), // Corpus Christi
			dia(2026, time.September, 7),
			dia(2026, time.October, 12),
			dia(2026, time.November, 2),
			dia(2026, time.November, 15),
			dia(2026, time.November, 20),
			dia(2026, time.December, 25),
		},
	})
}
