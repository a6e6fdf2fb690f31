package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acionamento-system/internal/routes"
	"acionamento-system/pkg/apperrors"
	"acionamento-system/pkg/config"
	"acionamento-system/pkg/database/postgresql"
	applogger "acionamento-system/pkg/logger"
	"acionamento-system/pkg/service"
	"acionamento-system/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pânico na requisição",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORS())
	e.Validator = utils.NewValidator(validator.New())

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	if err := postgresql.RunMigrations(dbConn); err != nil {
		logger.Fatal("falha ao aplicar migrações", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("não foi possível conectar ao Redis", zap.Error(err))
	}
	defer redisClient.Close()

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("servidor encerrado", zap.Error(err))
		}
	}()
	logger.Info("servidor iniciado", zap.String("porta", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("erro no desligamento gracioso", zap.Error(err))
	}
	logger.Info("servidor finalizado")
}
