package employeestore

import (
	"errors"
	"net/http"

	employeestoreerrors "go-employee-directory/internal/employeestore/errors"
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
	l := zap.L().Named("employeestore.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeestore.handler")
	}
	apperror.Init()
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee store request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Failed(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	employees, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, employees)
}

func (h *Handler) GetByID(c *gin.Context) {
	empl, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, employeestoreerrors.ErrEmployeeNotFound) {
		response.Handled(c, http.StatusNotFound, nil)
		return
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, empl)
}

func (h *Handler) Search(c *gin.Context) {
	employees, err := h.service.SearchByNameFragment(c.Request.Context(), c.Param("searchString"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, employees)
}

func (h *Handler) HighestSalary(c *gin.Context) {
	highest, err := h.service.HighestSalary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, highest)
}

func (h *Handler) TopTenHighestEarningNames(c *gin.Context) {
	names, err := h.service.TopNByEarnings(c.Request.Context(), TopEarnersLimit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, names)
}

func (h *Handler) Create(c *gin.Context) {
	var input CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	empl, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, empl)
}

func (h *Handler) DeleteByName(c *gin.Context) {
	var input DeleteEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("http delete employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	deleted, err := h.service.DeleteByName(c.Request.Context(), input.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, deleted)
}

func (h *Handler) DeleteByID(c *gin.Context) {
	deleted, err := h.service.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Handled(c, http.StatusOK, deleted)
}
