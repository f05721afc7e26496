package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// ReportPeriod selects the bucket size for sales-over-time charts
type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

// IsValid checks if the report period is valid
func (p ReportPeriod) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// ReportService provides sales statistics and exports
type ReportService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *ReportService {
	return &ReportService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// SalesSummary represents overall sales statistics
type SalesSummary struct {
	TotalSales       int64   `json:"total_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalDiscount    float64 `json:"total_discount"`
	TotalWeightKg    float64 `json:"total_weight_kg"`
	AverageSale      float64 `json:"average_sale"`
	LowStockCount    int64   `json:"low_stock_count"`
	CashSalesCount   int64   `json:"cash_sales_count"`
	OnlineSalesCount int64   `json:"online_sales_count"`
}

// SalesPoint represents one bucket in a sales-over-time series
type SalesPoint struct {
	Label   string  `json:"label"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// GetSummary returns overall sales statistics
func (s *ReportService) GetSummary(ctx context.Context) (*SalesSummary, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{}
	var totalGrams int64

	for i := range sales {
		sale := &sales[i]
		summary.TotalSales++
		summary.TotalRevenue += float64(sale.FinalTotal) / 100
		summary.TotalDiscount += float64(sale.Discount) / 100
		if sale.PaymentMethod == enum.PaymentCash {
			summary.CashSalesCount++
		} else {
			summary.OnlineSalesCount++
		}
		for j := range sale.Items {
			totalGrams += int64(sale.Items[j].WeightGrams)
		}
	}

	summary.TotalWeightKg = float64(totalGrams) / 1000
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalSales)
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	summary.LowStockCount = int64(len(lowStock))

	return summary, nil
}

// GetSalesOverTime buckets sales by day, week or month and returns the
// series in chronological order
func (s *ReportService) GetSalesOverTime(ctx context.Context, period ReportPeriod) ([]SalesPoint, error) {
	if !period.IsValid() {
		return nil, apperror.NewBadRequestError("Period must be daily, weekly or monthly")
	}

	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		start   time.Time
		count   int64
		revenue float64
	}
	buckets := make(map[time.Time]*bucket)

	for i := range sales {
		sale := &sales[i]
		start := bucketStart(sale.CreatedAt, period)
		b, ok := buckets[start]
		if !ok {
			b = &bucket{start: start}
			buckets[start] = b
		}
		b.count++
		b.revenue += float64(sale.FinalTotal) / 100
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].start.Before(ordered[j].start)
	})

	points := make([]SalesPoint, 0, len(ordered))
	for _, b := range ordered {
		points = append(points, SalesPoint{
			Label:   bucketLabel(b.start, period),
			Count:   b.count,
			Revenue: b.revenue,
		})
	}

	return points, nil
}

func bucketStart(t time.Time, period ReportPeriod) time.Time {
	t = t.Local()
	switch period {
	case PeriodWeekly:
		// Weeks start on Monday
		offset := (int(t.Weekday()) + 6) % 7
		t = t.AddDate(0, 0, -offset)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func bucketLabel(start time.Time, period ReportPeriod) string {
	switch period {
	case PeriodMonthly:
		return start.Format("Jan 2006")
	case PeriodWeekly:
		return "Wk of " + start.Format("Jan 2")
	default:
		return start.Format("Jan 2")
	}
}

// ExportSales renders the full sales history as an xlsx workbook
func (s *ReportService) ExportSales(ctx context.Context) (*bytes.Buffer, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Invoice No", "Date", "Payment", "Sub Total", "Discount", "Final Total", "Items", "Weight (kg)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetRowStyle(sheet, 1, 1, headerStyle)
	}

	for row, sale := range sales {
		var grams int
		for j := range sale.Items {
			grams += sale.Items[j].WeightGrams
		}

		values := []interface{}{
			sale.InvoiceNo,
			sale.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(sale.PaymentMethod),
			float64(sale.SubTotal) / 100,
			float64(sale.Discount) / 100,
			float64(sale.FinalTotal) / 100,
			len(sale.Items),
			float64(grams) / 1000,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
