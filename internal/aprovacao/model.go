// internal/aprovacao/model.go
package aprovacao

import (
	"time"

	"gorm.io/gorm"
)

// Resultados possíveis de uma decisão.
const (
	ResultadoAprovada = "Aprovada"
	ResultadoRecusada = "Recusada"
)

// Decisao é o registro de auditoria de uma transição terminal do fluxo de
// aprovação. Existe no máximo uma por venda — o check-and-set do workflow
// garante um único vencedor mesmo sob corrida.
type Decisao struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VendaID     uint      `gorm:"not null;uniqueIndex" json:"vendaId"`
	Resultado   string    `gorm:"size:50;not null" json:"resultado"`
	Motivo      string    `gorm:"size:500" json:"motivo,omitempty"`
	AprovadorID uint      `gorm:"not null" json:"aprovadorId"`
	DataDecisao time.Time `gorm:"not null" json:"dataDecisao"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Decisao{})
}
