package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/The0ne18/jobsbreeze-api/internal/adapter/http/handlers"
)

const (
	PathEstimates = "/estimates"
	PathClients   = "/clients"
	PathInvoices  = "/invoices"
	PathSettings  = "/settings"
	PathAuth      = "/auth"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, invoiceHandler *handlers.InvoiceHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.PATCH("/:id/status", estimateHandler.PatchEstimateStatus)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)

		// Converts an approved estimate into an invoice.
		estimates.POST("/:id/invoice", invoiceHandler.CreateInvoiceFromEstimate)
	}
}

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payments", invoiceHandler.CreatePayment)
		invoices.GET("/:id/payments", invoiceHandler.ListPayments)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}
