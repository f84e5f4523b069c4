// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/VendaCerta/api-comissoes/internal/comissao"
	"github.com/VendaCerta/api-comissoes/internal/parcela"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de vendas.
type Handler struct {
	Repo        *Repository
	Calc        *comissao.Calculadora
	Gerador     *parcela.Gerador
	ParcelaRepo *parcela.Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository, calc *comissao.Calculadora, gerador *parcela.Gerador, parcelaRepo *parcela.Repository) *Handler {
	return &Handler{Repo: repo, Calc: calc, Gerador: gerador, ParcelaRepo: parcelaRepo}
}

func aplicarCalculo(v *Venda, r comissao.Resultado) {
	v.SobrePreco = r.SobrePreco
	v.ValorICMS = r.ValorICMS
	v.ValorPISCOFINS = r.ValorPISCOFINS
	v.ValorIRCSLL = r.ValorIRCSLL
	v.ComissaoLiquida = r.ComissaoLiquida
}

// Create trata POST /vendas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ValorTotal < 0 || dto.ValorTabela < 0 {
		http.Error(w, "Valores da nota não podem ser negativos", http.StatusBadRequest)
		return
	}

	dataEmissao, err := time.Parse(time.RFC3339, dto.DataEmissao)
	if err != nil {
		http.Error(w, "dataEmissao inválida (use RFC3339)", http.StatusBadRequest)
		return
	}

	metodo := dto.MetodoPagamento
	if metodo == "" {
		metodo = PagamentoAVista
	}
	if metodo != PagamentoAVista && metodo != PagamentoParcelado {
		http.Error(w, "Método de pagamento inválido", http.StatusBadRequest)
		return
	}

	v := Venda{
		NumeroNota:      dto.NumeroNota,
		ValorTotal:      dto.ValorTotal,
		ValorTabela:     dto.ValorTabela,
		UF:              dto.UF,
		DataEmissao:     dataEmissao,
		MetodoPagamento: metodo,
		QtdParcelas:     dto.QtdParcelas,
		Status:          StatusPendente,
	}
	aplicarCalculo(&v, h.Calc.Calcular(v.ValorTotal, v.ValorTabela, v.UF))

	if err := h.Repo.Create(&v); err != nil {
		http.Error(w, "Erro ao criar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// List trata GET /vendas (filtros opcionais ?status= e ?uf=)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.List(r.URL.Query().Get("status"), r.URL.Query().Get("uf"))
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get trata GET /vendas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// Calculo trata GET /vendas/{id}/calculo — detalhamento recalculado sob
// demanda, sem persistir nada. Só vira oficial na aprovação.
func (h *Handler) Calculo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	resultado := h.Calc.Calcular(v.ValorTotal, v.ValorTabela, v.UF)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// Update trata PUT /vendas/{id}
// Só vendas pendentes podem ser editadas; depois da decisão terminal os
// valores gravados são oficiais e mudanças exigem fluxo de retificação.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if v.Status != StatusPendente {
		http.Error(w, "Venda já decidida não pode ser editada", http.StatusConflict)
		return
	}

	var dto CreateVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ValorTotal < 0 || dto.ValorTabela < 0 {
		http.Error(w, "Valores da nota não podem ser negativos", http.StatusBadRequest)
		return
	}
	if dto.DataEmissao != "" {
		dataEmissao, err := time.Parse(time.RFC3339, dto.DataEmissao)
		if err != nil {
			http.Error(w, "dataEmissao inválida (use RFC3339)", http.StatusBadRequest)
			return
		}
		v.DataEmissao = dataEmissao
	}

	if dto.MetodoPagamento != "" {
		if dto.MetodoPagamento != PagamentoAVista && dto.MetodoPagamento != PagamentoParcelado {
			http.Error(w, "Método de pagamento inválido", http.StatusBadRequest)
			return
		}
		v.MetodoPagamento = dto.MetodoPagamento
	}

	v.NumeroNota = dto.NumeroNota
	v.ValorTotal = dto.ValorTotal
	v.ValorTabela = dto.ValorTabela
	v.UF = dto.UF
	v.QtdParcelas = dto.QtdParcelas
	aplicarCalculo(v, h.Calc.Calcular(v.ValorTotal, v.ValorTabela, v.UF))

	if err := h.Repo.Update(v); err != nil {
		http.Error(w, "Erro ao atualizar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// GerarParcelas trata POST /vendas/{id}/parcelas
// Gera o plano completo de uma vez; venda à vista ou com plano já gerado
// devolve 409. Quantidade e valor omitidos são derivados da venda.
func (h *Handler) GerarParcelas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if v.MetodoPagamento != PagamentoParcelado {
		http.Error(w, "Venda à vista não tem plano de parcelas", http.StatusConflict)
		return
	}

	existentes, err := h.ParcelaRepo.CountByVendaID(v.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar plano existente", http.StatusInternalServerError)
		return
	}
	if existentes > 0 {
		http.Error(w, "Plano de parcelas já gerado para esta venda", http.StatusConflict)
		return
	}

	// Corpo vazio é aceito: tudo pode ser derivado da venda.
	var dto GerarParcelasDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && err != io.EOF {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	dataBase := v.DataEmissao
	if dto.DataBase != "" {
		dataBase, err = time.Parse(time.RFC3339, dto.DataBase)
		if err != nil {
			http.Error(w, "dataBase inválida (use RFC3339)", http.StatusBadRequest)
			return
		}
	}
	qtd := dto.QtdParcelas
	if qtd == 0 {
		qtd = v.QtdParcelas
	}
	valor := dto.ValorParcela
	if valor == 0 && qtd > 0 {
		valor = v.ComissaoLiquida / float64(qtd)
	}

	parcelas := h.Gerador.GerarPlano(dataBase, qtd, valor)
	for _, p := range parcelas {
		p.VendaID = v.ID
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Não foi possível iniciar transação", http.StatusInternalServerError)
		return
	}
	if err := h.ParcelaRepo.CreateInBatch(tx, parcelas); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar parcelas", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(parcelas)
}

// Delete trata DELETE /vendas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(v); err != nil {
		http.Error(w, "Erro ao deletar venda", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
