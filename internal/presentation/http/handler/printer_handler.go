package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// Status handles the printer status check
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.GetStatus())
}

// TestPrint handles printing a test page
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint(c.Request.Context())
	if err != nil {
		// Return the formatted receipt anyway so the client can show it
		response.OK(c, "Printer unavailable, returning receipt data", receipt)
		return
	}

	response.OK(c, "Test page printed", receipt)
}

// PrintReceipt handles printing a sale's invoice
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	saleID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.receiptService.PrintSaleReceipt(c.Request.Context(), saleID)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, returning receipt data", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", receipt)
}
