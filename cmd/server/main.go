package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/L52103/appEscritorioControl/config"
	"github.com/L52103/appEscritorioControl/internal/api/handler"
	"github.com/L52103/appEscritorioControl/internal/api/router"
	"github.com/L52103/appEscritorioControl/internal/classifier"
	"github.com/L52103/appEscritorioControl/internal/repository"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/database"
	"github.com/L52103/appEscritorioControl/pkg/jwt"
	applogger "github.com/L52103/appEscritorioControl/pkg/logger"
	"github.com/L52103/appEscritorioControl/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar el logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("no se pudo obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("fallaron las migraciones", zap.Error(err))
	}

	// Redis es opcional: sin él se omite la lista negra de tokens.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis no disponible, se omite la lista negra de tokens", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	var summarizer classifier.Summarizer
	if cfg.Classifier.Enabled {
		summarizer = classifier.NewOpenAISummarizer(cfg.Classifier, logger)
		logger.Info("clasificador de mensajes habilitado",
			zap.String("model", cfg.Classifier.Model),
			zap.String("base_url", cfg.Classifier.BaseURL),
		)
	} else {
		logger.Info("clasificador de mensajes deshabilitado, se usará el mensaje original como resumen")
	}
	cls := classifier.New(summarizer)

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, cls, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("el servidor HTTP falló", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de apagado recibida, cerrando", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("error al apagar el servidor", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("servidor detenido")
}
