package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/afrilink/platform_be/internal/ledger"
	"github.com/afrilink/platform_be/internal/models"
)

type PaymentHandler struct {
	Ledger *ledger.Ledger
}

func NewPaymentHandler(l *ledger.Ledger) *PaymentHandler {
	return &PaymentHandler{Ledger: l}
}

// Transactions handles GET /payments/transactions?q=&type=&status=.
func (h *PaymentHandler) Transactions(c *fiber.Ctx) error {
	list := h.Ledger.Search(ledger.Criteria{
		Text:   strings.TrimSpace(c.Query("q")),
		Type:   models.TransactionType(c.Query("type")),
		Status: models.TransactionStatus(c.Query("status")),
	})
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"transactions": list,
			"total":        len(list),
		},
	})
}

// Summary is computed over the whole ledger, never the filtered view.
func (h *PaymentHandler) Summary(c *fiber.Ctx) error {
	return ok(c, h.Ledger.Summary())
}
