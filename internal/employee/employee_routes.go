package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
) {
	employees := r.Group("/employee")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/search", handler.Search)
		employees.GET("/search/:searchString", handler.Search)
		employees.GET("/highestSalary", handler.HighestSalary)
		employees.GET("/topTenHighestEarningEmployeeNames", handler.TopTenHighestEarningNames)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.DELETE("/:id", handler.DeleteByID)
	}
}
