package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	response "autoflow/internal/adapter/http/dto/response"
	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice issuance, retrieval and PDF download.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateFromProposal issues the invoice for an accepted proposal.
func (h *InvoiceHandler) CreateFromProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	log.Printf("[invoice][handler] issue start proposal_id=%s", proposalID)

	invoice, err := h.usecase.CreateFromProposal(c.Request.Context(), proposalID)
	if err != nil {
		log.Printf("[invoice][handler] issue failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] issue success proposal_id=%s invoice_id=%s number=%s", proposalID, invoice.ID, invoice.Number)

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetByID(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	invoice, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) ListByCustomerID(c *gin.Context) {
	invoices, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// DownloadPdf streams the invoice PDF inline.
func (h *InvoiceHandler) DownloadPdf(c *gin.Context) {
	id := c.Param("id")
	data, fileName, err := h.usecase.GetInvoicePdf(c.Request.Context(), id)
	if err != nil {
		log.Printf("[invoice][handler] pdf failed invoice_id=%s err=%v", id, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	// 422, not 409: only a duplicate issuance is a retryable conflict.
	case errors.Is(err, usecase.ErrProposalNotConfirmed):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_ACCEPTED", "Proposal not accepted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists for this proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Invoice document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRenderingFailed):
		return pkg.NewDomainError("RENDERING_FAILURE", "Invoice rendering failed", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStorageFailed):
		return pkg.NewDomainError("STORAGE_FAILURE", "Invoice document storage failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
