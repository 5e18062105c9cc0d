package employeestore

import (
	"go-employee-directory/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimit struct {
	PerSecond rate.Limit
	Burst     int
}

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	limit RateLimit,
) {
	employees := r.Group("/employee")
	employees.Use(middleware.RateLimitByIP(limit.PerSecond, limit.Burst))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/highestSalary", handler.HighestSalary)
		employees.GET("/topTenHighestEarningEmployeeNames", handler.TopTenHighestEarningNames)
		employees.GET("/search/:searchString", handler.Search)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.DELETE("", handler.DeleteByName)
		employees.DELETE("/:id", handler.DeleteByID)
	}
}
