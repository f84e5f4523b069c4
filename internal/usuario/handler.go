// internal/usuario/handler.go
package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/VendaCerta/api-comissoes/internal/utils"
)

// Handler gerencia rotas de usuários.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Create trata POST /usuarios (restrito a admin).
// Sem senha no payload, uma senha temporária é gerada e devolvida na resposta
// para o admin repassar ao novo usuário.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Nome    string `json:"nome"`
		Email   string `json:"email"`
		Senha   string `json:"senha"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Email == "" {
		http.Error(w, "E-mail é obrigatório", http.StatusBadRequest)
		return
	}

	var senhaTemporaria string
	if dto.Senha == "" {
		var err error
		senhaTemporaria, err = utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		dto.Senha = senhaTemporaria
	}

	hash, err := utils.HashSenha(dto.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:    dto.Nome,
		Email:   dto.Email,
		Senha:   hash,
		IsAdmin: dto.IsAdmin,
	}
	if err := h.Repo.Create(&u); err != nil {
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Usuario
		SenhaTemporaria string `json:"senhaTemporaria,omitempty"`
	}{Usuario: u, SenhaTemporaria: senhaTemporaria}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}
