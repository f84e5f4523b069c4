// internal/venda/dto.go
package venda

// CreateVendaDTO é o payload de criação/atualização de venda. Datas em RFC3339.
type CreateVendaDTO struct {
	NumeroNota      string  `json:"numeroNota"`
	ValorTotal      float64 `json:"valorTotal"`
	ValorTabela     float64 `json:"valorTabela"`
	UF              string  `json:"uf"`
	DataEmissao     string  `json:"dataEmissao"`
	MetodoPagamento string  `json:"metodoPagamento"`
	QtdParcelas     int     `json:"qtdParcelas"`
}

// GerarParcelasDTO é o payload de geração do plano de parcelas.
// Campos omitidos são derivados da venda: a quantidade vem de QtdParcelas e o
// valor é a comissão líquida dividida em partes iguais.
type GerarParcelasDTO struct {
	DataBase     string  `json:"dataBase"`
	QtdParcelas  int     `json:"qtdParcelas"`
	ValorParcela float64 `json:"valorParcela"`
}
