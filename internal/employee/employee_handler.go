package employee

import (
	"net/http"

	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	apperror.Init()
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	for k, v := range httpErr.Headers {
		c.Header(k, v)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetAll(c.Request.Context()))
}

func (h *Handler) Search(c *gin.Context) {
	fragment := c.Param("searchString")
	h.logger.Debug("http search employees", zap.String("fragment", fragment))
	c.JSON(http.StatusOK, h.service.SearchByName(c.Request.Context(), fragment))
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get employee by id", zap.String("employee_id", id))

	empl, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if empl == nil {
		h.writeServiceError(c, employeeerrors.ErrEmployeeNotFound)
		return
	}
	c.JSON(http.StatusOK, empl)
}

func (h *Handler) HighestSalary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.HighestSalary(c.Request.Context()))
}

func (h *Handler) TopTenHighestEarningNames(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TopTenHighestEarningNames(c.Request.Context()))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteByID answers 200 with a plain-text message for every outcome of the
// protocol; only a blank id is rejected with an error status.
func (h *Handler) DeleteByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete employee", zap.String("employee_id", id))

	result, err := h.service.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.String(http.StatusOK, result.Message)
}
