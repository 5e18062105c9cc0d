package main

import (
	"go-employee-directory/internal/app"
	"go-employee-directory/internal/bootstrap"
	"go-employee-directory/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	app.LoadEnv()
	logger, err := app.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	cfg := app.LoadStoreConfig()
	if err := app.BuildStoreApp(r, cfg, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	bootstrap.StartHTTPServer(
		r,
		bootstrap.DefaultServerConfig("employee-store", cfg.Port),
		bootstrap.NewStdoutAuditLogger(logger),
	)
}
