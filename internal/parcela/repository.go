// internal/parcela/repository.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateInBatch insere o plano inteiro de uma vez (ignora se vazio). O plano
// de uma venda nasce atômico: ou todas as parcelas entram, ou nenhuma.
func (r *Repository) CreateInBatch(db *gorm.DB, parcelas []*Parcela) error {
	if db == nil {
		db = r.DB
	}
	if len(parcelas) == 0 {
		return nil
	}
	return db.Create(parcelas).Error
}

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByVendaID busca todas as parcelas de uma venda, na ordem do plano.
func (r *Repository) ListByVendaID(vendaID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("venda_id = ?", vendaID).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// CountByVendaID conta as parcelas já geradas para uma venda.
func (r *Repository) CountByVendaID(vendaID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&Parcela{}).Where("venda_id = ?", vendaID).Count(&total).Error
	return total, err
}

// MarcarPaga registra o pagamento da parcela, carimbando data_pagamento.
// Check-and-set: só escreve se a parcela ainda não estiver paga, então dois
// pagamentos concorrentes resolvem para um único carimbo. Zero linhas
// afetadas significa parcela já paga (ou inexistente).
func (r *Repository) MarcarPaga(id uint, dataPagamento time.Time) (int64, error) {
	res := r.DB.Model(&Parcela{}).
		Where("id = ? AND status <> ?", id, StatusPaga).
		Updates(map[string]interface{}{
			"status":         StatusPaga,
			"data_pagamento": &dataPagamento,
		})
	return res.RowsAffected, res.Error
}

// CountPendentesByVendaID conta quantas parcelas da venda ainda não foram pagas.
func (r *Repository) CountPendentesByVendaID(vendaID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&Parcela{}).
		Where("venda_id = ? AND status <> ?", vendaID, StatusPaga).
		Count(&total).Error
	return total, err
}

// AtualizarProgressoPagamento marca a venda como "Parcial" quando o plano tem
// alguma parcela paga. Atualiza via nome de tabela para não importar o pacote
// venda (que já importa este).
func (r *Repository) AtualizarProgressoPagamento(vendaID uint) error {
	total, err := r.CountByVendaID(vendaID)
	if err != nil {
		return err
	}
	pendentes, err := r.CountPendentesByVendaID(vendaID)
	if err != nil {
		return err
	}
	if pendentes == total {
		// Nenhuma parcela paga ainda.
		return nil
	}
	return r.DB.Table("vendas").
		Where("id = ? AND status = ?", vendaID, "Aprovada").
		Update("status", "Parcial").Error
}
