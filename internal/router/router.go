package router

import (
	"net/http"

	"github.com/nsien-prestige/Eventful-Backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	PaystackWebhook(c *ginext.Context)
	Checkout(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	GetTicket(c *ginext.Context)
	ScanTicket(c *ginext.Context)
	ListUnadmitted(c *ginext.Context)
}

// InitRouter wires the routes. auth guards everything under /api; the
// webhook authenticates itself by signature.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.POST("/webhooks/paystack", h.PaystackWebhook)

	api := router.Group("/api", auth)
	{
		// Payments
		api.POST("/events/:id/checkout", h.Checkout)
		api.GET("/payments/:reference", h.VerifyPayment)

		// Tickets
		api.GET("/events/:id/ticket", h.GetTicket)
		api.POST("/events/:id/scan", h.ScanTicket)

		// Admin
		admin := api.Group("/admin", middleware.RequireRole(middleware.RoleAdmin))
		admin.GET("/settlements/unadmitted", h.ListUnadmitted)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
