package app

import (
	"net/http"

	"go-employee-directory/internal/employee"
	"go-employee-directory/internal/employeestore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerStoreModules(
	router *gin.Engine,
	cfg StoreConfig,
	logger *zap.Logger,
) {
	generator := employeestore.NewFaker(cfg.Seed)

	// --- Repositories ---
	storeRepo := employeestore.NewRepository(generator.Employees(cfg.SeedCount)...)

	// --- Services ---
	storeService := employeestore.NewService(storeRepo, generator, logger)

	// --- Handlers ---
	storeHandler := employeestore.NewHandler(storeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employeestore.RegisterRoutes(api, storeHandler, employeestore.RateLimit{
			PerSecond: rate.Limit(cfg.RateLimitRPS),
			Burst:     cfg.RateLimitBurst,
		})
	}

	logger.Info("employee store seeded", zap.Int("employees", cfg.SeedCount))
}

func registerAPIModules(
	router *gin.Engine,
	cfg APIConfig,
	client *http.Client,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(cfg.UpstreamBaseURL, client, logger)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group(cfg.BasePath)
	{
		employee.RegisterRoutes(api, employeeHandler)
	}
}
