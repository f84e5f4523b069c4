// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma parcela.
const (
	StatusPendente = "Pendente"
	StatusPaga     = "Paga"
)

// Parcela representa uma única obrigação de pagamento da comissão de uma
// venda. O plano é criado de uma vez só pelo gerador; depois disso a parcela
// só muda para registrar pagamento — nunca é renumerada nem reordenada.
type Parcela struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	VendaID        uint       `gorm:"not null;index" json:"vendaId"`
	Numero         int        `gorm:"not null" json:"numero"`
	Valor          float64    `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	Status         string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
