package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/request"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/response"
)

// DiscountHandler handles discount tier HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// List handles listing discount tiers
func (h *DiscountHandler) List(c *gin.Context) {
	tiers, err := h.discountService.ListTiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount tiers retrieved successfully", tiers)
}

// Replace handles replacing the whole discount tier table
func (h *DiscountHandler) Replace(c *gin.Context) {
	var req request.ReplaceDiscountTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inputs := make([]service.DiscountTierInput, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		inputs = append(inputs, service.DiscountTierInput{
			Threshold:  t.Threshold,
			Percentage: t.Percentage,
		})
	}

	tiers, err := h.discountService.ReplaceTiers(c.Request.Context(), inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount tiers updated successfully", tiers)
}
