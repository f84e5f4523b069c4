// internal/aprovacao/handler.go
package aprovacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/VendaCerta/api-comissoes/internal/auth"
	"github.com/VendaCerta/api-comissoes/internal/notificacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de decisão sobre vendas.
type Handler struct {
	Workflow *Workflow
}

// NewHandler cria um novo Handler.
func NewHandler(wf *Workflow) *Handler {
	return &Handler{Workflow: wf}
}

func aprovadorDoContexto(r *http.Request) uint {
	if id, ok := r.Context().Value(auth.CtxUserID).(uint); ok {
		return id
	}
	return 0
}

func responderErroDecisao(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
	case errors.Is(err, ErrTransicaoInvalida):
		http.Error(w, "Venda já foi decidida", http.StatusConflict)
	case errors.Is(err, ErrMotivoObrigatorio):
		http.Error(w, "Informe o motivo da recusa", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Erro ao registrar decisão", http.StatusInternalServerError)
	}
}

// Aprovar trata POST /vendas/{id}/aprovar
func (h *Handler) Aprovar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	decisao, err := h.Workflow.Aprovar(uint(id), aprovadorDoContexto(r))
	if err != nil {
		responderErroDecisao(w, err)
		return
	}

	// Notificação é melhor esforço: falha de webhook não desfaz a decisão.
	go notificacao.EnviarWebhookDecisao(decisao.VendaID, decisao.Resultado, decisao.Motivo)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(decisao)
}

// Recusar trata POST /vendas/{id}/recusar
func (h *Handler) Recusar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Motivo string `json:"motivo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	decisao, err := h.Workflow.Recusar(uint(id), aprovadorDoContexto(r), payload.Motivo)
	if err != nil {
		responderErroDecisao(w, err)
		return
	}

	go notificacao.EnviarWebhookDecisao(decisao.VendaID, decisao.Resultado, decisao.Motivo)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(decisao)
}
