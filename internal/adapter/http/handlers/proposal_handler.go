package handlers

import (
	"context"
	"errors"
	"net/http"

	request "autoflow/internal/adapter/http/dto/request"
	response "autoflow/internal/adapter/http/dto/response"
	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)

// ProposalHandler handles HTTP requests for sales proposals.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) Create(c *gin.Context) {
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.CreateProposal(c.Request.Context(), usecase.CreateProposalCommand{
		CustomerID:      payload.CustomerID,
		SalespersonID:   payload.SalespersonID,
		ConfigurationID: payload.ConfigurationID,
		ProposedPrice:   payload.ProposedPrice,
		Status:          entities.ProposalStatus(payload.Status),
		CustomerNotes:   payload.CustomerNotes,
		InternalNotes:   payload.InternalNotes,
		ExpiresAt:       payload.ExpiresAt,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

func (h *ProposalHandler) GetByID(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) List(c *gin.Context) {
	proposals, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) ListByCustomerID(c *gin.Context) {
	proposals, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) ListBySalespersonID(c *gin.Context) {
	proposals, err := h.usecase.ListBySalespersonID(c.Request.Context(), c.Param("salesperson_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

func (h *ProposalHandler) Accept(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Accept)
}

func (h *ProposalHandler) Reject(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Reject)
}

func (h *ProposalHandler) Cancel(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Cancel)
}

func (h *ProposalHandler) Expire(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Expire)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposedPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorizedOperator):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED_OPERATOR", "Operator not authorized", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidConfiguration):
		return pkg.NewDomainErrorSimple("INVALID_CONFIGURATION", "Configuration invalid for this customer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrVehicleUnavailable):
		return pkg.NewDomainErrorSimple("VEHICLE_UNAVAILABLE", "Vehicle is not available for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalTerminal):
		return pkg.NewDomainErrorSimple("PROPOSAL_TERMINAL", "Proposal is already in a terminal status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
