package handlers

import (
	"errors"
	"net/http"

	request "autoflow/internal/adapter/http/dto/request"
	response "autoflow/internal/adapter/http/dto/response"
	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigurationPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)

// ConfigurationHandler handles vehicle configurations and the optional
// accessory catalog.

type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

func (h *ConfigurationHandler) Create(c *gin.Context) {
	var payload request.CreateConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.CreateConfiguration(c.Request.Context(), usecase.CreateConfigurationCommand{
		CustomerID:  payload.CustomerID,
		VehicleID:   payload.VehicleID,
		OptionalIDs: payload.OptionalIDs,
		Notes:       payload.Notes,
	})
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConfiguration(cfg))
}

func (h *ConfigurationHandler) GetByID(c *gin.Context) {
	cfg, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConfiguration(cfg))
}

func (h *ConfigurationHandler) ListByCustomerID(c *gin.Context) {
	cfgs, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConfigurations(cfgs))
}

func (h *ConfigurationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ConfigurationHandler) CreateOptional(c *gin.Context) {
	var payload request.CreateOptionalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigurationPayload.HTTPStatus, errInvalidConfigurationPayload.ToHTTPError())
		return
	}

	opt, err := h.usecase.CreateOptional(c.Request.Context(), entities.OptionalAccessory{
		Code:        payload.Code,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
	})
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOptional(opt))
}

func (h *ConfigurationHandler) ListOptionals(c *gin.Context) {
	opts, err := h.usecase.ListOptionals(c.Request.Context())
	if err != nil {
		appErr := mapConfigurationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOptionals(opts))
}

func mapConfigurationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfigID), errors.Is(err, usecase.ErrInvalidOptional):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Configuration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionalNotFound):
		return pkg.NewDomainErrorSimple("OPTIONAL_NOT_FOUND", "Optional accessory not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleUnavailable):
		return pkg.NewDomainErrorSimple("VEHICLE_UNAVAILABLE", "Vehicle is not available for sale", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
