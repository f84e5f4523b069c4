package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/VendaCerta/api-comissoes/internal/aprovacao"
	"github.com/VendaCerta/api-comissoes/internal/auth"
	"github.com/VendaCerta/api-comissoes/internal/calendario"
	"github.com/VendaCerta/api-comissoes/internal/comissao"
	"github.com/VendaCerta/api-comissoes/internal/parcela"
	"github.com/VendaCerta/api-comissoes/internal/tributos"
	"github.com/VendaCerta/api-comissoes/internal/usuario"
	"github.com/VendaCerta/api-comissoes/internal/utils/db"
	"github.com/VendaCerta/api-comissoes/internal/venda"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := usuario.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := venda.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := parcela.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := aprovacao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Configuração imutável do motor: tabela de alíquotas e calendário são
	// montados uma vez aqui e injetados em quem precisa.
	calc := comissao.NewCalculadora(tributos.TabelaPadrao())
	gerador := parcela.NewGerador(calendario.FeriadosNacionais())

	// Repositórios e handlers
	vendaRepo := venda.NewRepository(database)
	parcelaRepo := parcela.NewRepository(database)
	usuarioRepo := usuario.NewRepository(database)

	vendaHandler := venda.NewHandler(vendaRepo, calc, gerador, parcelaRepo)
	parcelaHandler := parcela.NewHandler(parcelaRepo)
	aprovacaoHandler := aprovacao.NewHandler(aprovacao.NewWorkflow(vendaRepo))
	usuarioHandler := usuario.NewHandler(usuarioRepo)

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/vendas", vendaHandler.Create).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.List).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Get).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Update).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.Delete).Methods("DELETE")
	api.HandleFunc("/vendas/{id}/calculo", vendaHandler.Calculo).Methods("GET")
	api.HandleFunc("/vendas/{id}/parcelas", vendaHandler.GerarParcelas).Methods("POST")
	api.HandleFunc("/vendas/{id}/parcelas", parcelaHandler.List).Methods("GET")
	api.HandleFunc("/parcelas/{pid}/pagamento", parcelaHandler.MarcarPaga).Methods("PATCH")

	// Decisões e cadastro de usuários exigem admin
	admin := api.PathPrefix("/").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/vendas/{id}/aprovar", aprovacaoHandler.Aprovar).Methods("POST")
	admin.HandleFunc("/vendas/{id}/recusar", aprovacaoHandler.Recusar).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.Create).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
