// internal/venda/repository.go
package venda

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Venda.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova venda.
func (r *Repository) Create(v *Venda) error {
	return r.DB.Create(v).Error
}

// FindByID retorna uma venda pelo ID, com o plano de parcelas carregado.
func (r *Repository) FindByID(id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.Preload("Parcelas").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// List retorna as vendas, filtrando por status e/ou UF quando informados.
func (r *Repository) List(status, uf string) ([]Venda, error) {
	q := r.DB.Preload("Parcelas")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if uf != "" {
		q = q.Where("uf = ?", uf)
	}
	var list []Venda
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

// Update salva alterações em uma venda existente.
func (r *Repository) Update(v *Venda) error {
	return r.DB.Save(v).Error
}

// Delete remove uma venda (soft delete via gorm.DeletedAt).
func (r *Repository) Delete(v *Venda) error {
	return r.DB.Delete(v).Error
}

// AtualizarStatusSePendente faz o check-and-set atômico da transição de
// status: só escreve se a venda ainda estiver Pendente e devolve quantas
// linhas mudaram. Zero linhas significa que outro ator decidiu antes.
func (r *Repository) AtualizarStatusSePendente(db *gorm.DB, id uint, novoStatus string, extras map[string]interface{}) (int64, error) {
	if db == nil {
		db = r.DB
	}
	updates := map[string]interface{}{"status": novoStatus}
	for k, v := range extras {
		updates[k] = v
	}
	res := db.Model(&Venda{}).
		Where("id = ? AND status = ?", id, StatusPendente).
		Updates(updates)
	return res.RowsAffected, res.Error
}
