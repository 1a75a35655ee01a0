package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/auth"
	"github.com/pluckapp/almox-api/internal/application/demanda"
	"github.com/pluckapp/almox-api/internal/application/estoque"
	"github.com/pluckapp/almox-api/internal/application/relatorio"
	"github.com/pluckapp/almox-api/internal/application/usecase"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
	"github.com/pluckapp/almox-api/internal/infrastructure/qrcode"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CentralUC         *usecase.CentralUseCase
	AlmoxarifadoUC    *usecase.AlmoxarifadoUseCase
	SubAlmoxarifadoUC *usecase.SubAlmoxarifadoUseCase
	SetorUC           *usecase.SetorUseCase
	HierarquiaUC      *usecase.HierarquiaUseCase
	CategoriaUC       *usecase.CategoriaUseCase
	ProdutoUC         *usecase.ProdutoUseCase
	LoteUC            *usecase.LoteUseCase
	UsuarioUC         *usecase.UsuarioUseCase
	MovimentacaoUC    *estoque.MovimentacaoUseCase
	ConsultaUC        *estoque.ConsultaUseCase
	DemandaUC         *demanda.UseCase
	RelatorioUC       *relatorio.UseCase
	AuthUC            *auth.UseCase
	Etiqueta          *qrcode.GeradorEtiqueta
	UsuarioRepo       repository.UsuarioRepository
	JWTSecret         string
	AllowLegacyHeader bool
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer token; X-User-Id legado enquanto o flag estiver ligado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AllowLegacyHeader, deps.UsuarioRepo))

	gestao := RequirePerfil(entity.PerfilAdminGeral, entity.PerfilGestorAlmoxarifado)
	admin := RequirePerfil(entity.PerfilAdminGeral)

	// Hierarquia
	centrais := protected.Group("/centrais")
	centralHandler := NewCentralHandler(deps.CentralUC)
	centrais.Post("/", gestao, centralHandler.Create)
	centrais.Get("/", centralHandler.List)
	centrais.Get("/:id", centralHandler.GetByID)
	centrais.Put("/:id", gestao, centralHandler.Update)
	centrais.Delete("/:id", admin, centralHandler.Delete)

	almoxarifados := protected.Group("/almoxarifados")
	almoxarifadoHandler := NewAlmoxarifadoHandler(deps.AlmoxarifadoUC)
	almoxarifados.Post("/", gestao, almoxarifadoHandler.Create)
	almoxarifados.Get("/", almoxarifadoHandler.List)
	almoxarifados.Get("/:id", almoxarifadoHandler.GetByID)
	almoxarifados.Put("/:id", gestao, almoxarifadoHandler.Update)
	almoxarifados.Delete("/:id", admin, almoxarifadoHandler.Delete)

	subAlmoxarifados := protected.Group("/sub_almoxarifados")
	subAlmoxarifadoHandler := NewSubAlmoxarifadoHandler(deps.SubAlmoxarifadoUC)
	subAlmoxarifados.Post("/", gestao, subAlmoxarifadoHandler.Create)
	subAlmoxarifados.Get("/", subAlmoxarifadoHandler.List)
	subAlmoxarifados.Get("/:id", subAlmoxarifadoHandler.GetByID)
	subAlmoxarifados.Put("/:id", gestao, subAlmoxarifadoHandler.Update)
	subAlmoxarifados.Delete("/:id", admin, subAlmoxarifadoHandler.Delete)

	setores := protected.Group("/setores")
	setorHandler := NewSetorHandler(deps.SetorUC)
	setores.Post("/", gestao, setorHandler.Create)
	setores.Get("/", setorHandler.List)
	setores.Get("/:id", setorHandler.GetByID)
	setores.Put("/:id", gestao, setorHandler.Update)
	setores.Delete("/:id", admin, setorHandler.Delete)

	hierarquiaHandler := NewHierarquiaHandler(deps.HierarquiaUC)
	protected.Get("/hierarquia/arvore", hierarquiaHandler.Arvore)

	// Catálogo
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", gestao, categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Put("/:id", gestao, categoriaHandler.Update)
	categorias.Delete("/:id", admin, categoriaHandler.Delete)

	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.LoteUC, deps.Etiqueta)
	produtos.Post("/", gestao, produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/search", produtoHandler.Search)
	produtos.Post("/gerar-codigo", gestao, produtoHandler.GerarCodigo)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", gestao, produtoHandler.Update)
	produtos.Delete("/:id", admin, produtoHandler.Delete)
	produtos.Get("/:id/etiqueta", produtoHandler.Etiqueta)
	produtos.Get("/:id/lotes", produtoHandler.Lotes)

	loteHandler := NewLoteHandler(deps.LoteUC)
	protected.Get("/lotes/:id", loteHandler.GetByID)

	// Estoque (consulta)
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.ConsultaUC)
	estoqueGroup.Get("/local", estoqueHandler.PorLocal)
	estoqueGroup.Get("/setor/:id", estoqueHandler.PorSetor)
	estoqueGroup.Get("/central/:id", estoqueHandler.PorCentral)
	estoqueGroup.Get("/hierarquia", estoqueHandler.Hierarquia)
	estoqueGroup.Get("/origens", estoqueHandler.Origens)

	// Movimentações (motor de estoque)
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	movimentacoes.Post("/entrada", gestao, movimentacaoHandler.Entrada)
	movimentacoes.Post("/distribuicao", gestao, movimentacaoHandler.Distribuicao)
	movimentacoes.Post("/estorno_distribuicao", gestao, movimentacaoHandler.EstornoDistribuicao)
	movimentacoes.Post("/saida_justificada", gestao, movimentacaoHandler.SaidaJustificada)
	movimentacoes.Post("/saida_setor", gestao, movimentacaoHandler.SaidaSetor)
	movimentacoes.Post("/consumo", movimentacaoHandler.Consumo)
	movimentacoes.Get("/", movimentacaoHandler.List)

	// Demandas
	demandas := protected.Group("/demandas")
	demandaHandler := NewDemandaHandler(deps.DemandaUC)
	demandas.Post("/", demandaHandler.Create)
	demandas.Get("/", demandaHandler.List)
	demandas.Get("/:id", demandaHandler.GetByID)
	demandas.Put("/:id/atender", gestao, demandaHandler.Atender)
	demandas.Get("/:id/origens", demandaHandler.Origens)

	// Relatórios e painel
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios := protected.Group("/relatorios")
	relatorios.Get("/consumo_setores", gestao, relatorioHandler.ConsumoSetores)
	relatorios.Get("/consumo_setores/pdf", gestao, relatorioHandler.ConsumoSetoresPDF)
	protected.Get("/dashboard/stats", relatorioHandler.Dashboard)

	// Usuários (admin)
	usuarios := protected.Group("/usuarios", admin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
