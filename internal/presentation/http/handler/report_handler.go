package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles the overall sales summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}

// SalesOverTime handles the bucketed sales series
func (h *ReportHandler) SalesOverTime(c *gin.Context) {
	period := service.ReportPeriod(c.DefaultQuery("timeframe", string(service.PeriodDaily)))

	points, err := h.reportService.GetSalesOverTime(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales over time retrieved successfully", points)
}

// Export streams the sales history as an xlsx download
func (h *ReportHandler) Export(c *gin.Context) {
	buf, err := h.reportService.ExportSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
