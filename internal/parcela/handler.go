// internal/parcela/handler.go
package parcela

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de parcelas.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// List trata GET /vendas/{id}/parcelas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vendaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByVendaID(uint(vendaID))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// MarcarPaga trata PATCH /parcelas/{pid}/pagamento
// Regra: pagamento não pode ser desfeito; parcela já paga devolve 400.
func (h *Handler) MarcarPaga(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	linhas, err := h.Repo.MarcarPaga(uint(pid), time.Now())
	if err != nil {
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}
	if linhas == 0 {
		http.Error(w, "Parcela já está paga", http.StatusBadRequest)
		return
	}

	if err := h.Repo.AtualizarProgressoPagamento(atual.VendaID); err != nil {
		http.Error(w, "Erro ao atualizar progresso de pagamento da venda", http.StatusInternalServerError)
		return
	}

	parcela, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcela atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcela)
}
