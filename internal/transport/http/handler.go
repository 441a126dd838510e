package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_inventory/internal/domain"
	"github.com/Gunvolt24/wb_inventory/internal/ports"
	"github.com/Gunvolt24/wb_inventory/pkg/httpx"
	"github.com/Gunvolt24/wb_inventory/pkg/validate"
)

const (
	defaultItemsLimit = 100
	maxItemsLimit     = 1000
)

type Handler struct {
	products ports.ProductReadService
	items    ports.ItemService
	log      ports.Logger
	timeout  time.Duration
}

// NewHandler — timeout ограничивает каждый запрос к сервисам (0 — без ограничения).
func NewHandler(products ports.ProductReadService, items ports.ItemService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{products: products, items: items, log: log, timeout: timeout}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) getProduct(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	code := c.Param("code")
	def, err := h.products.GetProduct(ctx, code)
	if err != nil {
		h.writeError(c, "GetProduct", code, err)
		return
	}
	if def == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, def)
}

func (h *Handler) listItems(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	code := c.Param("product_code")
	limit, offset := httpx.ParseLimitOffset(c, defaultItemsLimit, maxItemsLimit)

	items, err := h.items.ListItems(ctx, code, limit, offset)
	if err != nil {
		h.writeError(c, "ListItems", code, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// importItems — тело: JSON-массив серийных кодов.
func (h *Handler) importItems(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	code := c.Param("product_code")
	var codes []string
	if err := c.ShouldBindJSON(&codes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a JSON array of item codes"})
		return
	}

	if _, err := h.items.ImportItems(ctx, code, codes); err != nil {
		h.writeError(c, "ImportItems", code, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) exportItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	code := c.Param("product_code")
	if _, err := h.items.ExportItem(ctx, code); err != nil {
		h.writeError(c, "ExportItem", code, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError — доменные ошибки в HTTP-статусы; неизвестные логируются как 500.
func (h *Handler) writeError(c *gin.Context, op, code string, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidItemCodes):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
	case errors.Is(err, domain.ErrItemNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrItemNotAvailable.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(c.Request.Context(), "%s timed out code=%s", op, code)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timeout"})
	default:
		h.log.Errorf(c.Request.Context(), "%s failed code=%s err=%v", op, code, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
