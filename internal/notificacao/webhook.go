package notificacao

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookDecisao avisa o sistema do consultor que uma venda recebeu
// decisão terminal. Melhor esforço: erro é só logado, nunca propaga — a
// decisão já foi confirmada no banco.
func EnviarWebhookDecisao(vendaID uint, resultado, motivo string) {
	url := os.Getenv("WEBHOOK_DECISAO_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":  "Venda recebeu decisão do aprovador",
		"vendaId":   fmt.Sprint(vendaID),
		"resultado": resultado,
		"motivo":    motivo,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de decisão: %v", err)
		return
	}
	defer resp.Body.Close()
}
