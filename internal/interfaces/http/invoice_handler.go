package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-engine/internal/application/billing"
	"github.com/jhoicas/invoice-engine/internal/application/dto"
	"github.com/jhoicas/invoice-engine/internal/domain"
)

// InvoiceHandler expone el motor de precios al editor de facturas y al POS (protegido).
type InvoiceHandler struct {
	uc *billing.PreviewUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.PreviewUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func companyOrAbort(c *fiber.Ctx) (string, bool) {
	companyID := GetCompanyID(c)
	if companyID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
		return "", false
	}
	return companyID, true
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// Preview recalcula la factura completa.
// @Summary      Vista previa de factura
// @Description  Calcula líneas, totales y asientos débito/crédito. Los valores fuera de rango se corrigen y se reportan en warnings.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PreviewRequest  true  "Estado del editor"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	companyID, ok := companyOrAbort(c)
	if !ok {
		return nil
	}
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Preview(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submission arma el payload de envío.
// @Summary      Payload de envío de factura
// @Description  Devuelve las líneas redondeadas para la API de creación. ready=false si falta una cuenta obligatoria.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.PreviewRequest  true  "Estado del editor"
// @Success      200   {object}  dto.SubmissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/submission [post]
func (h *InvoiceHandler) Submission(c *fiber.Ctx) error {
	companyID, ok := companyOrAbort(c)
	if !ok {
		return nil
	}
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Submission(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// NewLine devuelve la línea inicial para un producto agregado al pedido.
// @Summary      Nueva línea desde producto
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.NewLineRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.LineRequest
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/lines [post]
func (h *InvoiceHandler) NewLine(c *fiber.Ctx) error {
	companyID, ok := companyOrAbort(c)
	if !ok {
		return nil
	}
	var in dto.NewLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.NewLine(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CartPreview recalcula el carrito del POS (siempre en moneda local).
// @Summary      Vista previa del carrito POS
// @Tags         pos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CartPreviewRequest  true  "Carrito"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/preview [post]
func (h *InvoiceHandler) CartPreview(c *fiber.Ctx) error {
	companyID, ok := companyOrAbort(c)
	if !ok {
		return nil
	}
	var in dto.CartPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CartPreview(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
