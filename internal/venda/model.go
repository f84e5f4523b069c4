// internal/venda/model.go
package venda

import (
	"time"

	"github.com/VendaCerta/api-comissoes/internal/parcela"
	"gorm.io/gorm"
)

// Status possíveis de uma venda.
// Pendente -> Aprovada | Recusada (terminais para o fluxo de aprovação).
// Parcial indica venda aprovada com pagamento de parcelas em andamento.
const (
	StatusPendente = "Pendente"
	StatusAprovada = "Aprovada"
	StatusRecusada = "Recusada"
	StatusParcial  = "Parcial"
)

// Métodos de pagamento aceitos.
const (
	PagamentoAVista    = "avista"
	PagamentoParcelado = "parcelado"
)

// Venda representa uma transação faturada aguardando (ou já submetida a)
// acerto de comissão. Vendas nunca são apagadas pelo fluxo de aprovação, só
// transicionadas de status; a recusa guarda o motivo para auditoria.
type Venda struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	NumeroNota      string    `gorm:"size:100;index" json:"numeroNota"`
	ValorTotal      float64   `gorm:"not null;default:0" json:"valorTotal"`
	ValorTabela     float64   `gorm:"not null;default:0" json:"valorTabela"`
	UF              string    `gorm:"size:2" json:"uf"`
	DataEmissao     time.Time `json:"dataEmissao"`
	MetodoPagamento string    `gorm:"size:50;not null;default:'avista'" json:"metodoPagamento"`
	QtdParcelas     int       `gorm:"not null;default:0" json:"qtdParcelas"`
	Status          string    `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	MotivoRecusa    string    `gorm:"size:500" json:"motivoRecusa,omitempty"`

	// Detalhamento da comissão. Recalculado enquanto a venda está Pendente;
	// depois da decisão terminal os valores gravados são os oficiais.
	SobrePreco      float64 `gorm:"not null;default:0" json:"sobrePreco"`
	ValorICMS       float64 `gorm:"not null;default:0" json:"valorIcms"`
	ValorPISCOFINS  float64 `gorm:"not null;default:0" json:"valorPisCofins"`
	ValorIRCSLL     float64 `gorm:"not null;default:0" json:"valorIrCsll"`
	ComissaoLiquida float64 `gorm:"not null;default:0" json:"comissaoLiquida"`

	Parcelas []parcela.Parcela `gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
