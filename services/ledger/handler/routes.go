package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the ledger routes on the authenticated API group
func RegisterRoutes(g *echo.Group, contactHandler *ContactHandler, txnHandler *TransactionHandler, settingsHandler *SettingsHandler) {
	contacts := g.Group("/contacts")
	contacts.GET("", contactHandler.ListContacts)
	contacts.POST("", contactHandler.CreateContact)
	contacts.GET("/:id", contactHandler.GetContact)
	contacts.PUT("/:id", contactHandler.UpdateContact)
	contacts.DELETE("/:id", contactHandler.DeleteContact)
	contacts.POST("/:id/recalculate", contactHandler.RecalculateContact)

	transactions := g.Group("/transactions")
	transactions.GET("", txnHandler.ListTransactions)
	transactions.POST("", txnHandler.RecordTransaction)
	transactions.GET("/:id", txnHandler.GetTransaction)
	transactions.PUT("/:id", txnHandler.UpdateTransaction)
	transactions.DELETE("/:id", txnHandler.DeleteTransaction)

	g.GET("/event-settings", settingsHandler.ListEventSettings)
}
