// internal/tributos/aliquotas.go
package tributos

import "strings"

// Alíquotas fixas aplicadas sobre o sobrepreço bruto, independentes da UF.
const (
	AliquotaPISCOFINS = 0.0925
	AliquotaIRCSLL    = 0.34
)

// AliquotaPadraoICMS é usada quando a UF de destino é desconhecida ou veio em
// branco da nota. Assumir 12% (alíquota Sul/Sudeste) é o caminho conservador:
// deduz mais e nunca promete comissão a maior.
const AliquotaPadraoICMS = 0.12

// TabelaAliquotas mapeia UF de destino para alíquota de ICMS. É configuração
// imutável montada uma única vez na inicialização; nunca é consultada em banco.
type TabelaAliquotas struct {
	porUF  map[string]float64
	padrao float64
}

// NewTabelaAliquotas monta uma tabela a partir do mapa UF->alíquota informado.
// As chaves são normalizadas para maiúsculas.
func NewTabelaAliquotas(porUF map[string]float64, padrao float64) *TabelaAliquotas {
	m := make(map[string]float64, len(porUF))
	for uf, aliquota := range porUF {
		m[normalizaUF(uf)] = aliquota
	}
	return &TabelaAliquotas{porUF: m, padrao: padrao}
}

// AliquotaICMS retorna a alíquota da UF informada. UF desconhecida, vazia ou
// mal formada cai na alíquota padrão — é um fallback deliberado, não erro.
func (t *TabelaAliquotas) AliquotaICMS(uf string) float64 {
	if aliquota, ok := t.porUF[normalizaUF(uf)]; ok {
		return aliquota
	}
	return t.padrao
}

// AliquotaPadrao expõe o fallback configurado.
func (t *TabelaAliquotas) AliquotaPadrao() float64 {
	return t.padrao
}

func normalizaUF(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}

// TabelaPadrao monta a tabela interestadual nacional: 12% para destinos no Sul
// e Sudeste, 7% para as demais regiões.
func TabelaPadrao() *TabelaAliquotas {
	return NewTabelaAliquotas(map[string]float64{
		// Sul / Sudeste
		"SP": 0.12, "RJ": 0.12, "MG": 0.12, "ES": 0.12,
		"PR": 0.12, "SC": 0.12, "RS": 0.12,
		// Norte
		"AC": 0.07, "AM": 0.07, "AP": 0.07, "PA": 0.07,
		"RO": 0.07, "RR": 0.07, "TO": 0.07,
		// Nordeste
		"AL": 0.07, "BA": 0.07, "CE": 0.07, "MA": 0.07, "PB": 0.07,
		"PE": 0.07, "PI": 0.07, "RN": 0.07, "SE": 0.07,
		// Centro-Oeste
		"DF": 0.07, "GO": 0.07, "MS": 0.07, "MT": 0.07,
	}, AliquotaPadraoICMS)
}
