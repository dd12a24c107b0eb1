package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-engine/internal/application/billing"
)

// Roles con acceso al motor de facturación.
var billingRoles = []string{"admin", "vendedor"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Preview   *billing.PreviewUseCase
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token y rol de facturación)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(billingRoles...))

	invoiceHandler := NewInvoiceHandler(deps.Preview)

	invoices := protected.Group("/invoices")
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/submission", invoiceHandler.Submission)
	invoices.Post("/lines", invoiceHandler.NewLine)

	pos := protected.Group("/pos")
	pos.Post("/cart/preview", invoiceHandler.CartPreview)
}
