package handlers

import (
	"errors"
	"net/http"

	request "autoflow/internal/adapter/http/dto/request"
	response "autoflow/internal/adapter/http/dto/response"
	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSalespersonPayload = pkg.NewDomainErrorSimple("INVALID_SALESPERSON_INPUT", "Invalid salesperson payload", http.StatusBadRequest)

// SalespersonHandler handles HTTP requests for dealership operators.

type SalespersonHandler struct {
	usecase usecase.ISalespersonUseCase
}

func NewSalespersonHandler(uc usecase.ISalespersonUseCase) *SalespersonHandler {
	return &SalespersonHandler{usecase: uc}
}

func (h *SalespersonHandler) Register(c *gin.Context) {
	var payload request.RegisterSalespersonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalespersonPayload.HTTPStatus, errInvalidSalespersonPayload.ToHTTPError())
		return
	}

	operator, err := h.usecase.Register(c.Request.Context(), usecase.RegisterSalespersonCommand{
		Username:    payload.Username,
		Password:    payload.Password,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		EmployeeRef: payload.EmployeeRef,
	})
	if err != nil {
		appErr := mapSalespersonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSalesperson(operator))
}

func (h *SalespersonHandler) GetByID(c *gin.Context) {
	operator, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSalespersonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalesperson(operator))
}

func (h *SalespersonHandler) List(c *gin.Context) {
	operators, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSalespersonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalespeople(operators))
}

func (h *SalespersonHandler) SetActive(c *gin.Context) {
	var payload request.SetActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Active == nil {
		c.JSON(errInvalidSalespersonPayload.HTTPStatus, errInvalidSalespersonPayload.ToHTTPError())
		return
	}

	operator, err := h.usecase.SetActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		appErr := mapSalespersonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSalesperson(operator))
}

func (h *SalespersonHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSalespersonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSalespersonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSalesperson):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameAlreadyTaken):
		return pkg.NewDomainErrorSimple("USERNAME_ALREADY_TAKEN", "Username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrSalespersonNotFound):
		return pkg.NewDomainErrorSimple("SALESPERSON_NOT_FOUND", "Salesperson not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
