// internal/usuario/model.go
package usuario

import "gorm.io/gorm"

// Usuario é quem opera o sistema: cadastra vendas e, se admin, decide sobre
// elas. A senha nunca sai em JSON.
type Usuario struct {
	gorm.Model
	Nome    string `json:"nome"`
	Email   string `json:"email" gorm:"unique"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
