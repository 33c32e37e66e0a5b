package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain"
	"github.com/jhoicas/infostock-dashboard/internal/infrastructure/backend"
)

// errorMapping errores de dominio → status y code.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrEmptyCart, fiber.StatusBadRequest, "EMPTY_CART"},
	{domain.ErrClientRequired, fiber.StatusBadRequest, "CLIENT_REQUIRED"},
	{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
	{domain.ErrInvalidOrigin, fiber.StatusBadRequest, "INVALID_ORIGIN"},
	{domain.ErrInvalidProduct, fiber.StatusBadRequest, "INVALID_PRODUCT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInvoiceNoItems, fiber.StatusUnprocessableEntity, "SALE_WITHOUT_ITEMS"},
	{domain.ErrInvoiceMissing, fiber.StatusNotFound, "INVOICE_NOT_FOUND"},
	{domain.ErrSaleMissing, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAccessKeyMismatch, fiber.StatusBadGateway, "ACCESS_KEY_MISMATCH"},
	{domain.ErrUnreadableResponse, fiber.StatusBadGateway, "BACKEND_UNREADABLE"},
	{domain.ErrSessionExpired, fiber.StatusUnauthorized, "SESSION_EXPIRED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError traduce err a {"code","message"}. Un rechazo del backend conserva su status
// (4xx) y su mensaje; fallos de transporte o 5xx del backend responden 502.
func writeError(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	return c.Status(status).JSON(body)
}

func classify(err error) (int, dto.ErrorResponse) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return m.status, dto.ErrorResponse{Code: m.code, Message: err.Error()}
		}
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status, dto.ErrorResponse{Code: "BACKEND_" + strconv.Itoa(apiErr.Status), Message: apiErr.Message}
		}
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: apiErr.Message}
	}

	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

func isBackendError(err error) bool {
	var apiErr *backend.APIError
	return errors.As(err, &apiErr)
}

func parseID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

func noSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: domain.ErrSessionExpired.Error()})
}

func attachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(data)
}
