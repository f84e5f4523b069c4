// internal/parcela/gerador.go
package parcela

import (
	"time"

	"github.com/VendaCerta/api-comissoes/internal/calendario"
)

// Gerador monta planos de parcelamento ajustados para dias úteis.
type Gerador struct {
	Calendario *calendario.Calendario
}

// NewGerador cria um gerador sobre o calendário informado.
func NewGerador(cal *calendario.Calendario) *Gerador {
	return &Gerador{Calendario: cal}
}

// GerarPlano gera as parcelas a partir da data base.
//
// Quantidade ou valor não positivos devolvem um plano vazio: "sem
// financiamento" é um resultado válido, não erro. Para cada parcela o
// vencimento anda exatamente 30 dias corridos a partir do vencimento AJUSTADO
// da parcela anterior e então é empurrado para o próximo dia útil. O passo de
// 30 dias parte sempre da data já ajustada — um vencimento empurrado por
// feriado desloca todas as parcelas seguintes pelo mesmo deslocamento
// absoluto, e não "base + n*30".
//
// Garantias: números 1..quantidade sem buracos, vencimentos estritamente
// crescentes e todos em dia útil.
func (g *Gerador) GerarPlano(dataBase time.Time, quantidade int, valor float64) []*Parcela {
	if quantidade <= 0 || valor <= 0 {
		return nil
	}

	parcelas := make([]*Parcela, 0, quantidade)
	vencimento := dataBase
	for n := 1; n <= quantidade; n++ {
		vencimento = g.Calendario.ProximoDiaUtil(vencimento.AddDate(0, 0, 30))
		parcelas = append(parcelas, &Parcela{
			Numero:         n,
			Valor:          valor,
			DataVencimento: vencimento,
			Status:         StatusPendente,
		})
	}
	return parcelas
}
