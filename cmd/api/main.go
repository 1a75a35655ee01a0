package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pluckapp/almox-api/internal/application/auth"
	appdemanda "github.com/pluckapp/almox-api/internal/application/demanda"
	appestoque "github.com/pluckapp/almox-api/internal/application/estoque"
	apprelatorio "github.com/pluckapp/almox-api/internal/application/relatorio"
	"github.com/pluckapp/almox-api/internal/application/usecase"
	infrapdf "github.com/pluckapp/almox-api/internal/infrastructure/pdf"
	"github.com/pluckapp/almox-api/internal/infrastructure/postgres"
	infraqrcode "github.com/pluckapp/almox-api/internal/infrastructure/qrcode"
	httpRouter "github.com/pluckapp/almox-api/internal/interfaces/http"
	"github.com/pluckapp/almox-api/pkg/config"
	"github.com/pluckapp/almox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	centralRepo := postgres.NewCentralRepository(pool)
	almoxRepo := postgres.NewAlmoxarifadoRepository(pool)
	subRepo := postgres.NewSubAlmoxarifadoRepository(pool)
	setorRepo := postgres.NewSetorRepository(pool)
	localRepo := postgres.NewLocalRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	demandaRepo := postgres.NewDemandaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	centralUC := usecase.NewCentralUseCase(centralRepo)
	almoxUC := usecase.NewAlmoxarifadoUseCase(almoxRepo, centralRepo)
	subUC := usecase.NewSubAlmoxarifadoUseCase(subRepo, almoxRepo)
	setorUC := usecase.NewSetorUseCase(setorRepo, almoxRepo, subRepo)
	hierarquiaUC := usecase.NewHierarquiaUseCase(centralRepo, almoxRepo, subRepo, setorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, categoriaRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, setorRepo)

	movimentacaoUC := appestoque.NewMovimentacaoUseCase(txRunner, produtoRepo, localRepo, movRepo)
	consultaUC := appestoque.NewConsultaUseCase(estoqueRepo, localRepo, produtoRepo)
	demandaUC := appdemanda.NewUseCase(demandaRepo, setorRepo, produtoRepo, estoqueRepo, localRepo, txRunner)

	// PDF: relatório de consumo por setor
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	relatorioUC := apprelatorio.NewUseCase(relatorioRepo, pdfGenerator)

	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pluck | Almox API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CentralUC:         centralUC,
		AlmoxarifadoUC:    almoxUC,
		SubAlmoxarifadoUC: subUC,
		SetorUC:           setorUC,
		HierarquiaUC:      hierarquiaUC,
		CategoriaUC:       categoriaUC,
		ProdutoUC:         produtoUC,
		LoteUC:            loteUC,
		UsuarioUC:         usuarioUC,
		MovimentacaoUC:    movimentacaoUC,
		ConsultaUC:        consultaUC,
		DemandaUC:         demandaUC,
		RelatorioUC:       relatorioUC,
		AuthUC:            authUC,
		Etiqueta:          infraqrcode.NewGeradorEtiqueta(),
		UsuarioRepo:       usuarioRepo,
		JWTSecret:         cfg.JWT.Secret,
		AllowLegacyHeader: cfg.Auth.AllowLegacyHeader,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
