package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"acionamento-system/internal/controllers"
	"acionamento-system/internal/repositories"
	"acionamento-system/internal/services"
	"acionamento-system/pkg/config"
	"acionamento-system/pkg/middleware"
	"acionamento-system/pkg/service"
)

// InitRouter monta toda a árvore de dependências e pendura os roteadores
// por área: /auth aberto, o resto atrás do middleware de autenticação.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	txManager := repositories.NewTxManager(dbConn)

	acionamentoRepo := repositories.NewAcionamentoRepository(dbConn)
	execucaoRepo := repositories.NewExecucaoRepository(dbConn)
	materiaisRepo := repositories.NewMateriaisRepository(dbConn)
	medicaoRepo := repositories.NewMedicaoRepository(dbConn)
	codigoMORepo := repositories.NewCodigoMORepository(dbConn)
	equipeRepo := repositories.NewEquipeRepository(dbConn)
	usuarioRepo := repositories.NewUsuarioRepository(dbConn)
	settingsRepo := repositories.NewSettingsRepository(dbConn)
	sessaoRepo := repositories.NewSessaoMedicaoRepository(redisClient, cfg.Medicao.SessaoTTL)
	cacheRepo := repositories.NewCacheRepository(redisClient, cfg.Medicao.ContadoresTTL)

	resolver := services.NewEquipeResolverService(equipeRepo, logger)
	authService := services.NewAuthService(usuarioRepo, jwtSvc, logger)
	acionamentoService := services.NewAcionamentoService(acionamentoRepo, execucaoRepo, materiaisRepo, equipeRepo, cacheRepo, logger)
	materiaisService := services.NewMateriaisService(materiaisRepo, acionamentoRepo, txManager, logger)
	execucaoService := services.NewExecucaoService(execucaoRepo, acionamentoRepo, cacheRepo, logger)
	codigoService := services.NewCodigoMOService(codigoMORepo, logger)
	medicaoService := services.NewMedicaoService(medicaoRepo, codigoMORepo, settingsRepo, sessaoRepo, acionamentoRepo, cacheRepo, resolver, logger)
	orcamentoService := services.NewOrcamentoService(acionamentoRepo, execucaoRepo, materiaisRepo, sessaoRepo, medicaoService, resolver, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	acionamentoCtrl := controllers.NewAcionamentoController(acionamentoService, materiaisService, logger)
	execucaoCtrl := controllers.NewExecucaoController(execucaoService, logger)
	medicaoCtrl := controllers.NewMedicaoController(medicaoService, codigoService, resolver, acionamentoService, logger)
	orcamentoCtrl := controllers.NewOrcamentoController(orcamentoService, logger)
	obraCtrl := controllers.NewObraController(acionamentoService, logger)

	runAuthRouter(api, authCtrl)

	secure := api.Group("", authMW.Auth)
	runAcionamentoRouter(secure, acionamentoCtrl, execucaoCtrl)
	runMedicaoRouter(secure, medicaoCtrl, orcamentoCtrl)
	runObraRouter(secure, obraCtrl)
}
