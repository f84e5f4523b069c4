package aprovacao

import (
	"testing"

	"github.com/VendaCerta/api-comissoes/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Uma única conexão mantém o :memory: vivo para todo o teste.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, venda.Migrate(db))
	require.NoError(t, Migrate(db))
	return db
}

func criarVendaPendente(t *testing.T, db *gorm.DB) *venda.Venda {
	t.Helper()
	v := &venda.Venda{
		NumeroNota:      "NF-1001",
		ValorTotal:      23088.05,
		ValorTabela:     18500.00,
		UF:              "SP",
		Status:          venda.StatusPendente,
		ComissaoLiquida: 2053.15,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func contarDecisoes(t *testing.T, db *gorm.DB, vendaID uint) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.Model(&Decisao{}).Where("venda_id = ?", vendaID).Count(&total).Error)
	return total
}

func TestAprovarVendaPendente(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))
	v := criarVendaPendente(t, db)

	decisao, err := wf.Aprovar(v.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, v.ID, decisao.VendaID)
	assert.Equal(t, ResultadoAprovada, decisao.Resultado)
	assert.Equal(t, uint(7), decisao.AprovadorID)
	assert.Empty(t, decisao.Motivo)
	assert.False(t, decisao.DataDecisao.IsZero())

	var atual venda.Venda
	require.NoError(t, db.First(&atual, v.ID).Error)
	assert.Equal(t, venda.StatusAprovada, atual.Status)
}

func TestAprovarDuasVezesFalhaNaSegunda(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))
	v := criarVendaPendente(t, db)

	_, err := wf.Aprovar(v.ID, 7)
	require.NoError(t, err)

	_, err = wf.Aprovar(v.ID, 8)
	assert.ErrorIs(t, err, ErrTransicaoInvalida)

	// Exatamente uma decisão terminal por venda.
	assert.EqualValues(t, 1, contarDecisoes(t, db, v.ID))
}

func TestRecusarExigeMotivo(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))
	v := criarVendaPendente(t, db)

	for _, motivo := range []string{"", "   ", "\t\n"} {
		_, err := wf.Recusar(v.ID, 7, motivo)
		assert.ErrorIs(t, err, ErrMotivoObrigatorio)
	}

	// Nada foi gravado: a venda segue pendente e sem decisão.
	var atual venda.Venda
	require.NoError(t, db.First(&atual, v.ID).Error)
	assert.Equal(t, venda.StatusPendente, atual.Status)
	assert.EqualValues(t, 0, contarDecisoes(t, db, v.ID))
}

func TestRecusarComMotivo(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))
	v := criarVendaPendente(t, db)

	decisao, err := wf.Recusar(v.ID, 9, "  nota divergente da tabela  ")

	require.NoError(t, err)
	assert.Equal(t, ResultadoRecusada, decisao.Resultado)
	assert.Equal(t, "nota divergente da tabela", decisao.Motivo)

	var atual venda.Venda
	require.NoError(t, db.First(&atual, v.ID).Error)
	assert.Equal(t, venda.StatusRecusada, atual.Status)
	assert.Equal(t, "nota divergente da tabela", atual.MotivoRecusa)
}

func TestAprovarERecusarSaoMutuamenteExclusivos(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))

	v1 := criarVendaPendente(t, db)
	_, err := wf.Aprovar(v1.ID, 7)
	require.NoError(t, err)
	_, err = wf.Recusar(v1.ID, 8, "chegou tarde")
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
	assert.EqualValues(t, 1, contarDecisoes(t, db, v1.ID))

	v2 := criarVendaPendente(t, db)
	_, err = wf.Recusar(v2.ID, 8, "valor de tabela errado")
	require.NoError(t, err)
	_, err = wf.Aprovar(v2.ID, 7)
	assert.ErrorIs(t, err, ErrTransicaoInvalida)
	assert.EqualValues(t, 1, contarDecisoes(t, db, v2.ID))
}

func TestDecidirVendaInexistente(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))

	_, err := wf.Aprovar(9999, 7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = wf.Recusar(9999, 7, "qualquer motivo")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVendasDiferentesNaoDisputam(t *testing.T) {
	db := setupDB(t)
	wf := NewWorkflow(venda.NewRepository(db))

	v1 := criarVendaPendente(t, db)
	v2 := criarVendaPendente(t, db)

	_, err := wf.Aprovar(v1.ID, 7)
	require.NoError(t, err)
	_, err = wf.Recusar(v2.ID, 7, "fora da política")
	require.NoError(t, err)
}
