package notificacao

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnviarWebhookDecisaoEntregaPayload(t *testing.T) {
	var recebido map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &recebido)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	t.Setenv("WEBHOOK_DECISAO_URL", srv.URL)

	EnviarWebhookDecisao(42, "Recusada", "nota divergente")

	require.NotNil(t, recebido)
	assert.Equal(t, "42", recebido["vendaId"])
	assert.Equal(t, "Recusada", recebido["resultado"])
	assert.Equal(t, "nota divergente", recebido["motivo"])
}

func TestEnviarWebhookDecisaoNaoPropagaFalha(t *testing.T) {
	// Endpoint devolvendo 500: o envio é melhor esforço e retorna normalmente.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "indisponível", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("WEBHOOK_DECISAO_URL", srv.URL)

	assert.NotPanics(t, func() {
		EnviarWebhookDecisao(7, "Aprovada", "")
	})
}

func TestEnviarWebhookDecisaoComServidorFora(t *testing.T) {
	// URL de um servidor já derrubado: erro de conexão só é logado.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	t.Setenv("WEBHOOK_DECISAO_URL", url)

	assert.NotPanics(t, func() {
		EnviarWebhookDecisao(7, "Aprovada", "")
	})
}

func TestEnviarWebhookDecisaoSemURLConfigurada(t *testing.T) {
	chamado := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chamado = true
	}))
	defer srv.Close()
	t.Setenv("WEBHOOK_DECISAO_URL", "")

	EnviarWebhookDecisao(7, "Aprovada", "")

	assert.False(t, chamado)
}
