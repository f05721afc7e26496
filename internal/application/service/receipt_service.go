package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rgusain/tarazu-api/internal/domain/entity"
	"github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/pkg/apperror"
	"github.com/rgusain/tarazu-api/pkg/i18n"
	"github.com/rgusain/tarazu-api/pkg/printer"
)

// ReceiptService handles invoice formatting and thermal printing.
type ReceiptService struct {
	printer      printer.Printer
	saleRepo     repository.SaleRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	translator   *i18n.Translator
	printerType  string
	paperWidth   int
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	translator *i18n.Translator,
	printerType string,
	paperWidth int,
) *ReceiptService {
	return &ReceiptService{
		printer:      p,
		saleRepo:     saleRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		translator:   translator,
		printerType:  printerType,
		paperWidth:   paperWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *ReceiptService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Cashier:   "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", WeightGrams: 500, PricePerKg: 20.00, Total: 10.00},
			{Name: "Test Item 2", WeightGrams: 250, PricePerKg: 40.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Discount: 0.00,
		Total:    20.00,
	}

	data := s.formatReceipt(receipt, s.language(ctx))
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleReceipt fetches a sale (with items) and prints its invoice.
func (s *ReceiptService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lang := "en"
	storeName := "Store"
	qrCodeURL := ""
	if settings != nil {
		storeName = settings.SiteName
		lang = settings.Language
		if settings.QRCodeURL != nil {
			qrCodeURL = *settings.QRCodeURL
		}
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: storeName,
		},
		InvoiceNo: sale.InvoiceNo,
		Date:      sale.CreatedAt.Local().Format("2006-01-02 15:04"),
		Payment:   string(sale.PaymentMethod),
		SubTotal:  float64(sale.SubTotal) / 100,
		Discount:  float64(sale.Discount) / 100,
		Total:     float64(sale.FinalTotal) / 100,
		QRCodeURL: qrCodeURL,
		Footer:    s.translator.T(lang, "receipt.footer", nil),
	}

	cashier, err := s.userRepo.GetByID(ctx, sale.CashierID)
	if err != nil {
		return nil, err
	}
	if cashier != nil {
		receipt.Cashier = cashier.Name
	}

	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:        item.Name,
			WeightGrams: item.WeightGrams,
			PricePerKg:  float64(item.PricePerKg) / 100,
			Total:       float64(item.Total) / 100,
		})
	}

	data := s.formatReceipt(receipt, lang)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *ReceiptService) language(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return "en"
	}
	return settings.Language
}

// formatReceipt converts a Receipt into ESC/POS bytes.
func (s *ReceiptService) formatReceipt(r *entity.Receipt, lang string) []byte {
	t := func(key string) string { return s.translator.T(lang, key, nil) }

	doc := printer.NewDocument(s.paperWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue(t("receipt.invoice")+":", r.InvoiceNo).
		KeyValue(t("receipt.date")+":", r.Date)

	if r.Cashier != "" {
		doc.KeyValue(t("receipt.cashier")+":", r.Cashier)
	}
	if r.Payment != "" {
		doc.KeyValue(t("receipt.payment")+":", r.Payment)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.WeightLine(item.Name, item.WeightGrams, fmt.Sprintf("%.2f", item.Total))
		doc.TextF("  @ %.2f/kg", item.PricePerKg)
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue(t("receipt.subtotal")+":", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue(t("receipt.discount")+":", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.SetBold(true).
		KeyValue(t("receipt.total")+":", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed()

	if r.QRCodeURL != "" {
		doc.Text(t("receipt.scan_to_pay")).
			Text(r.QRCodeURL)
	}

	doc.Text(r.Footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
