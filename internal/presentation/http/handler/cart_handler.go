package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/request"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles retrieving the current cart with computed totals
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cart)
}

// AddItem handles adding a weighed amount of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), productID, req.WeightGrams)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", item)
}

// RemoveItem handles removing a product's line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := ParseIDParam(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.cartService.RemoveFromCart(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", nil)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared", nil)
}
