package app

import (
	"context"
	"net/http"
	"net/url"

	"go-employee-directory/internal/bootstrap"
	"go-employee-directory/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildStoreApp wires the upstream store service onto router.
func BuildStoreApp(router *gin.Engine, cfg StoreConfig, logger *zap.Logger) error {
	useCommonMiddleware(router, logger)
	registerStoreModules(router, cfg, logger)
	return nil
}

// BuildAPIApp wires the facade onto router after the upstream reports healthy.
func BuildAPIApp(ctx context.Context, router *gin.Engine, cfg APIConfig, logger *zap.Logger) error {
	client := &http.Client{Timeout: cfg.UpstreamTimeout}

	if err := bootstrap.WaitForUpstream(ctx, client, upstreamHealthURL(cfg.UpstreamBaseURL), cfg.UpstreamWait); err != nil {
		return err
	}

	useCommonMiddleware(router, logger)
	registerAPIModules(router, cfg, client, logger)
	return nil
}

func useCommonMiddleware(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// upstreamHealthURL derives http://host:port/healthz from the employee base URL.
func upstreamHealthURL(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	u.Path = "/healthz"
	u.RawQuery = ""
	return u.String()
}
