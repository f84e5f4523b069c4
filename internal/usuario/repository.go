// internal/usuario/repository.go
package usuario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Usuario.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo usuário.
func (r *Repository) Create(u *Usuario) error {
	return r.DB.Create(u).Error
}

// FindByEmail busca um usuário pelo e-mail.
func (r *Repository) FindByEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID busca um usuário pelo ID.
func (r *Repository) FindByID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
