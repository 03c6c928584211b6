package routes

import (
	"autoflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
	PathInvoices  = "/invoices"
)

func addSalesRoutes(
	rg *gin.RouterGroup,
	proposalHandler *handlers.ProposalHandler,
	invoiceHandler *handlers.InvoiceHandler,
	invoicePaymentHandler *handlers.InvoicePaymentHandler,
) {
	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.Create)
		proposals.GET("", proposalHandler.List)
		proposals.GET("/:id", proposalHandler.GetByID)
		proposals.GET("/customer/:customer_id", proposalHandler.ListByCustomerID)
		proposals.GET("/salesperson/:salesperson_id", proposalHandler.ListBySalespersonID)
		proposals.PATCH("/:id/accept", proposalHandler.Accept)
		proposals.PATCH("/:id/reject", proposalHandler.Reject)
		proposals.PATCH("/:id/cancel", proposalHandler.Cancel)
		proposals.PATCH("/:id/expire", proposalHandler.Expire)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/proposal/:proposal_id", invoiceHandler.CreateFromProposal)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.GET("/number/:number", invoiceHandler.GetByNumber)
		invoices.GET("/customer/:customer_id", invoiceHandler.ListByCustomerID)
		invoices.GET("/:id/pdf", invoiceHandler.DownloadPdf)
		invoices.POST("/:id/payments", invoicePaymentHandler.RegisterPayment)
	}
}
