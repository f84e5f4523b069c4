// internal/aprovacao/workflow.go
package aprovacao

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VendaCerta/api-comissoes/internal/venda"
	"gorm.io/gorm"
)

// Erros do fluxo de aprovação. São os únicos erros de negócio que o motor
// levanta: cálculo puro nunca falha.
var (
	// ErrTransicaoInvalida indica tentativa de decidir uma venda que não está
	// mais Pendente (já aprovada ou já recusada).
	ErrTransicaoInvalida = errors.New("venda não está pendente: transição inválida")

	// ErrMotivoObrigatorio indica recusa sem motivo. O motivo é a única trilha
	// de auditoria de por que uma comissão calculada não foi honrada.
	ErrMotivoObrigatorio = errors.New("recusa exige motivo não vazio")
)

// Workflow conduz vendas de Pendente para um estado terminal.
//
// A transição é um check-and-set atômico: o UPDATE condicionado a
// status = 'Pendente' e a gravação da Decisao acontecem na mesma transação,
// então uma corrida entre aprovar e recusar resolve para exatamente um
// vencedor e o perdedor recebe ErrTransicaoInvalida. Vendas diferentes nunca
// disputam entre si.
type Workflow struct {
	Repo *venda.Repository
}

// NewWorkflow cria o workflow sobre o repositório de vendas.
func NewWorkflow(repo *venda.Repository) *Workflow {
	return &Workflow{Repo: repo}
}

// Aprovar transiciona a venda de Pendente para Aprovada e grava a decisão.
// Neste instante o detalhamento de comissão e o plano de parcelas gravados na
// venda passam a ser oficiais; mudanças posteriores de valores não disparam
// recálculo automático.
func (wf *Workflow) Aprovar(vendaID, aprovadorID uint) (*Decisao, error) {
	return wf.decidir(vendaID, aprovadorID, ResultadoAprovada, "")
}

// Recusar transiciona a venda de Pendente para Recusada. Motivo em branco ou
// só com espaços é rejeitado antes de tocar o banco.
func (wf *Workflow) Recusar(vendaID, aprovadorID uint, motivo string) (*Decisao, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return nil, ErrMotivoObrigatorio
	}
	return wf.decidir(vendaID, aprovadorID, ResultadoRecusada, motivo)
}

func (wf *Workflow) decidir(vendaID, aprovadorID uint, resultado, motivo string) (*Decisao, error) {
	var decisao *Decisao
	err := wf.Repo.DB.Transaction(func(tx *gorm.DB) error {
		// Distingue venda inexistente de venda já decidida.
		var atual venda.Venda
		if err := tx.First(&atual, vendaID).Error; err != nil {
			return err
		}

		novoStatus := venda.StatusAprovada
		extras := map[string]interface{}{}
		if resultado == ResultadoRecusada {
			novoStatus = venda.StatusRecusada
			extras["motivo_recusa"] = motivo
		}

		linhas, err := wf.Repo.AtualizarStatusSePendente(tx, vendaID, novoStatus, extras)
		if err != nil {
			return fmt.Errorf("atualizar status da venda: %w", err)
		}
		if linhas == 0 {
			return ErrTransicaoInvalida
		}

		decisao = &Decisao{
			VendaID:     vendaID,
			Resultado:   resultado,
			Motivo:      motivo,
			AprovadorID: aprovadorID,
			DataDecisao: time.Now(),
		}
		if err := tx.Create(decisao).Error; err != nil {
			return fmt.Errorf("gravar decisão: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decisao, nil
}
