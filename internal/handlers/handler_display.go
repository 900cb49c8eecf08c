package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/dual_currency_display/internal/core/domain"
	portssvc "github.com/SscSPs/dual_currency_display/internal/core/ports/services"
	"github.com/SscSPs/dual_currency_display/internal/dto"
	"github.com/SscSPs/dual_currency_display/internal/middleware"
	"github.com/SscSPs/dual_currency_display/internal/utils"
	"github.com/gin-gonic/gin"
)

// displayHandler serves the storefront's dual-currency price fragments.
type displayHandler struct {
	settingsService portssvc.SettingsReaderSvc
	displayService  portssvc.DisplaySvc
	cartService     portssvc.CartSvc
}

func newDisplayHandler(ss portssvc.SettingsReaderSvc, ds portssvc.DisplaySvc, cs portssvc.CartSvc) *displayHandler {
	return &displayHandler{
		settingsService: ss,
		displayService:  ds,
		cartService:     cs,
	}
}

// registerDisplayRoutes registers the public display routes.
func registerDisplayRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, rateLimit string) error {
	h := newDisplayHandler(services.Settings, services.Display, services.Cart)

	ipLimiter, err := middleware.NewMemoryLimiter(rateLimit)
	if err != nil {
		return err
	}

	display := rg.Group("/display", middleware.RateLimit(ipLimiter))
	{
		display.GET("/products/:itemID", h.productDisplay)
		display.POST("/cart", h.cartDisplay)
		display.POST("/order", h.orderDisplay)
	}
	return nil
}

// displayConfig loads the settings snapshot every formatting call of one request works with.
func (h *displayHandler) displayConfig(c *gin.Context) (domain.DisplayConfig, bool) {
	cfg, err := h.settingsService.DisplayConfig(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load display config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load display settings"})
		return domain.DisplayConfig{}, false
	}
	return cfg, true
}

// productDisplay godoc
// @Summary Price fragment of one product
// @Tags display
// @Produce json
// @Param itemID path int true "Product ID"
// @Success 200 {object} dto.PriceDisplayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /display/products/{itemID} [get]
func (h *displayHandler) productDisplay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID must be a positive integer"})
		return
	}

	cfg, ok := h.displayConfig(c)
	if !ok {
		return
	}

	display, err := h.displayService.ProductDisplayByID(c.Request.Context(), cfg, itemID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			c.JSON(status, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("Failed to build product display", slog.Int64("item_id", itemID), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to build product display"})
		return
	}

	c.JSON(http.StatusOK, dto.PriceDisplayResponse{Display: display, HTML: utils.RenderPriceHTML(display)})
}

// cartDisplay godoc
// @Summary Price fragments of a cart
// @Tags display
// @Accept json
// @Produce json
// @Param cart body dto.CartRequest true "Cart in the active currency"
// @Success 200 {object} dto.CartDisplayResponse
// @Failure 400 {object} ErrorResponse
// @Router /display/cart [post]
func (h *displayHandler) cartDisplay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, ok := h.displayConfig(c)
	if !ok {
		return
	}

	display, err := h.cartService.CartDisplay(c.Request.Context(), cfg, req.Cart)
	if err != nil {
		logger.Error("Failed to build cart display", slog.String("error", err.Error()))
		c.JSON(statusForError(err), gin.H{"error": "Failed to build cart display"})
		return
	}

	c.JSON(http.StatusOK, dto.CartDisplayResponse{
		Display:      *display,
		Lines:        renderLines(display.Lines),
		SubtotalHTML: utils.RenderPriceHTML(display.Subtotal),
		TotalHTML:    utils.RenderPriceHTML(display.Total),
		HideSubtotal: display.HideSubtotal,
	})
}

// orderDisplay godoc
// @Summary Price fragments of a placed order
// @Tags display
// @Accept json
// @Produce json
// @Param order body dto.OrderRequest true "Order in its own currency"
// @Success 200 {object} dto.OrderDisplayResponse
// @Failure 400 {object} ErrorResponse
// @Router /display/order [post]
func (h *displayHandler) orderDisplay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, ok := h.displayConfig(c)
	if !ok {
		return
	}

	display, err := h.cartService.OrderDisplay(c.Request.Context(), cfg, req.Order)
	if err != nil {
		logger.Error("Failed to build order display", slog.String("error", err.Error()))
		c.JSON(statusForError(err), gin.H{"error": "Failed to build order display"})
		return
	}

	c.JSON(http.StatusOK, dto.OrderDisplayResponse{
		Display:      *display,
		Lines:        renderLines(display.Lines),
		TotalHTML:    utils.RenderPriceHTML(display.Total),
		HideSubtotal: display.HideSubtotal,
	})
}

func renderLines(lines []domain.LineDisplay) []dto.LineDisplayResponse {
	out := make([]dto.LineDisplayResponse, 0, len(lines))
	for _, l := range lines {
		resp := dto.LineDisplayResponse{
			ItemID:       l.ItemID,
			Quantity:     l.Quantity,
			SubtotalHTML: utils.RenderPriceHTML(l.Subtotal),
		}
		if l.Price != nil {
			resp.PriceHTML = utils.RenderPriceHTML(*l.Price)
		}
		out = append(out, resp)
	}
	return out
}
