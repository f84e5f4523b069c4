package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protegido(t *testing.T) (http.Handler, *Claims) {
	t.Helper()
	capturadas := &Claims{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(CtxUserID).(uint); ok {
			capturadas.UserID = id
		}
		if admin, ok := r.Context().Value(CtxIsAdmin).(bool); ok {
			capturadas.IsAdmin = admin
		}
		w.WriteHeader(http.StatusOK)
	})
	return MiddlewareAutenticacao(next), capturadas
}

func TestMiddlewareRejeitaTokenAusente(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	handler, _ := protegido(t)

	req := httptest.NewRequest(http.MethodGet, "/vendas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejeitaTokenLixo(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	handler, _ := protegido(t)

	casos := map[string]string{
		"sem prefixo Bearer": "abc.def.ghi",
		"bearer vazio":       "Bearer ",
		"token lixo":         "Bearer não-é-um-jwt",
	}
	for nome, header := range casos {
		t.Run(nome, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/vendas", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMiddlewareInjetaClaimsNoContexto(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	handler, capturadas := protegido(t)

	token, err := GenerateAccessToken(42, true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/vendas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), capturadas.UserID)
	assert.True(t, capturadas.IsAdmin)
}

func TestMiddlewareDeixaPreflightPassar(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	handler, _ := protegido(t)

	req := httptest.NewRequest(http.MethodOptions, "/vendas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminBloqueiaNaoAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(next)

	// Sem claim de admin no contexto: bloqueado.
	req := httptest.NewRequest(http.MethodPost, "/vendas/1/aprovar", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
