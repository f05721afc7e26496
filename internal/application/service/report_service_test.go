package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSale(sales *memSaleRepo, createdAt time.Time, finalTotal int64, grams int, method enum.PaymentMethod) {
	sales.sales = append(sales.sales, entity.Sale{
		ID:            uuid.New(),
		InvoiceNo:     "INV-" + uuid.New().String()[:8],
		CashierID:     uuid.New(),
		SubTotal:      finalTotal,
		FinalTotal:    finalTotal,
		PaymentMethod: method,
		CreatedAt:     createdAt,
		Items: []entity.SaleItem{
			{Name: "Produce", WeightGrams: grams, Total: finalTotal},
		},
	})
}

func newReportFixture() (*ReportService, *memSaleRepo, *memProductRepo) {
	products := newMemProductRepo()
	cart := newMemCartRepo()
	sales := newMemSaleRepo(products, cart)
	return NewReportService(sales, products), sales, products
}

func TestGetSummary(t *testing.T) {
	svc, sales, products := newReportFixture()
	now := time.Now()

	seedSale(sales, now, 10000, 500, enum.PaymentCash)    // 100.00
	seedSale(sales, now, 20000, 1500, enum.PaymentOnline) // 200.00

	products.seed(entity.Product{Name: "Low", StockGrams: 100, StockAlertGrams: 200})
	products.seed(entity.Product{Name: "Fine", StockGrams: 5000, StockAlertGrams: 200})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.TotalSales)
	assert.InDelta(t, 300.0, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 2.0, summary.TotalWeightKg, 1e-9)
	assert.InDelta(t, 150.0, summary.AverageSale, 1e-9)
	assert.Equal(t, int64(1), summary.LowStockCount)
	assert.Equal(t, int64(1), summary.CashSalesCount)
	assert.Equal(t, int64(1), summary.OnlineSalesCount)
}

func TestGetSummary_Empty(t *testing.T) {
	svc, _, _ := newReportFixture()

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.AverageSale)
}

func TestGetSalesOverTime_DailyBuckets(t *testing.T) {
	svc, sales, _ := newReportFixture()

	day1 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 3, 18, 30, 0, 0, time.Local)

	seedSale(sales, day1, 5000, 500, enum.PaymentCash)
	seedSale(sales, day1, 7000, 700, enum.PaymentCash)
	seedSale(sales, day2, 4000, 400, enum.PaymentOnline)

	points, err := svc.GetSalesOverTime(context.Background(), PeriodDaily)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "Mar 2", points[0].Label)
	assert.Equal(t, int64(2), points[0].Count)
	assert.InDelta(t, 120.0, points[0].Revenue, 1e-9)

	assert.Equal(t, "Mar 3", points[1].Label)
	assert.Equal(t, int64(1), points[1].Count)
}

func TestGetSalesOverTime_WeeklyBucketsStartMonday(t *testing.T) {
	svc, sales, _ := newReportFixture()

	// 2026-03-02 is a Monday; the 4th falls in the same week
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	wednesday := time.Date(2026, 3, 4, 9, 0, 0, 0, time.Local)
	nextWeek := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)

	seedSale(sales, monday, 5000, 500, enum.PaymentCash)
	seedSale(sales, wednesday, 5000, 500, enum.PaymentCash)
	seedSale(sales, nextWeek, 5000, 500, enum.PaymentCash)

	points, err := svc.GetSalesOverTime(context.Background(), PeriodWeekly)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(2), points[0].Count)
	assert.Equal(t, "Wk of Mar 2", points[0].Label)
}

func TestGetSalesOverTime_RejectsUnknownPeriod(t *testing.T) {
	svc, _, _ := newReportFixture()

	_, err := svc.GetSalesOverTime(context.Background(), ReportPeriod("hourly"))
	assert.Error(t, err)
}

func TestExportSales_ProducesWorkbook(t *testing.T) {
	svc, sales, _ := newReportFixture()
	seedSale(sales, time.Now(), 12345, 800, enum.PaymentCash)

	buf, err := svc.ExportSales(context.Background())
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
