package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/request"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/response"
	"github.com/rgusain/tarazu-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	billingService *service.BillingService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(billingService *service.BillingService) *SaleHandler {
	return &SaleHandler{billingService: billingService}
}

// Finalize handles committing the current cart as a paid sale
func (h *SaleHandler) Finalize(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.billingService.FinalizeSale(c.Request.Context(), &service.FinalizeSaleInput{
		CashierID:     *userID,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}

// List handles listing sales newest first
func (h *SaleHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.billingService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.billingService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// ClearAll handles wiping the whole sales history
func (h *SaleHandler) ClearAll(c *gin.Context) {
	if err := h.billingService.ClearSales(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales history cleared", nil)
}
