// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/VendaCerta/api-comissoes/internal/usuario"
	"github.com/VendaCerta/api-comissoes/internal/utils"
	"gorm.io/gorm"
)

// LoginHandler autentica por e-mail e senha e devolve um access token.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}

		repo := usuario.NewRepository(db)
		user, err := repo.FindByEmail(req.Email)
		if err != nil || !utils.VerificarSenha(user.Senha, req.Senha) {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}

		token, err := GenerateAccessToken(user.ID, user.IsAdmin)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": token})
	}
}
