// internal/comissao/calculadora.go
package comissao

import (
	"math"

	"github.com/VendaCerta/api-comissoes/internal/tributos"
)

// Resultado é o detalhamento determinístico da comissão de uma venda.
// Recalcular com os mesmos (valorTotal, valorTabela, uf) produz sempre o mesmo
// Resultado; nada aqui conhece status de venda nem persistência.
type Resultado struct {
	SobrePreco      float64 `json:"sobrePreco"`
	ValorICMS       float64 `json:"valorIcms"`
	ValorPISCOFINS  float64 `json:"valorPisCofins"`
	ValorIRCSLL     float64 `json:"valorIrCsll"`
	ComissaoLiquida float64 `json:"comissaoLiquida"`
}

// Calculadora aplica a cadeia de deduções sobre o sobrepreço de uma venda.
type Calculadora struct {
	Tabela *tributos.TabelaAliquotas
}

// NewCalculadora cria uma calculadora sobre a tabela de alíquotas informada.
func NewCalculadora(tabela *tributos.TabelaAliquotas) *Calculadora {
	return &Calculadora{Tabela: tabela}
}

// Calcular produz o detalhamento da comissão.
//
// sobrepreço = valorTotal - valorTabela. Sem sobrepreço não há comissão: o
// Resultado volta zerado, nunca com valores negativos. As três deduções (ICMS
// da UF de destino, PIS/COFINS e IRPJ/CSLL) incidem todas sobre a mesma base
// bruta, sem cascata. A comissão líquida é travada em zero caso a soma das
// deduções ultrapasse o sobrepreço; as linhas individuais de dedução NÃO são
// travadas — o aprovador precisa enxergar o quanto foi deduzido de fato.
//
// Entradas não finitas (NaN/Inf) degradam para o Resultado zerado; a função é
// total e nunca retorna erro.
func (c *Calculadora) Calcular(valorTotal, valorTabela float64, uf string) Resultado {
	if !finito(valorTotal) || !finito(valorTabela) {
		return Resultado{}
	}

	sobrePreco := valorTotal - valorTabela
	if sobrePreco <= 0 {
		return Resultado{}
	}

	icms := sobrePreco * c.Tabela.AliquotaICMS(uf)
	pisCofins := sobrePreco * tributos.AliquotaPISCOFINS
	irCsll := sobrePreco * tributos.AliquotaIRCSLL

	liquida := sobrePreco - icms - pisCofins - irCsll
	if liquida < 0 {
		liquida = 0
	}

	return Resultado{
		SobrePreco:      sobrePreco,
		ValorICMS:       icms,
		ValorPISCOFINS:  pisCofins,
		ValorIRCSLL:     irCsll,
		ComissaoLiquida: liquida,
	}
}

func finito(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
