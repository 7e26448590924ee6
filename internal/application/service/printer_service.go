package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
	"github.com/fng-app/fng-sales-api/pkg/money"
	"github.com/fng-app/fng-sales-api/pkg/printer"
)

// receiptDateLayout is how dates appear on paper
const receiptDateLayout = "02/01/2006 15:04"

// PrinterOptions controls how receipts look
type PrinterOptions struct {
	Store    entity.StoreHeader
	Width    int
	Location *time.Location // nil uses the server's local zone
}

// PrinterService composes sale receipts and kitchen tickets and sends them
// to the thermal printer.
type PrinterService struct {
	printer   printer.Printer
	saleRepo  repository.SaleRepository
	orderRepo repository.OrderRepository
	opts      PrinterOptions
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	orderRepo repository.OrderRepository,
	opts PrinterOptions,
) *PrinterService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &PrinterService{
		printer:   p,
		saleRepo:  saleRepo,
		orderRepo: orderRepo,
		opts:      opts,
	}
}

// PrinterStatus describes the configured printer
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus reports whether the printer is configured and reachable
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != "none",
		Connected:  s.printer.Ready(ctx),
		Type:       kind,
		Width:      printer.NewDocument(s.opts.Width).Width(),
	}
}

// SaleReceipt builds the receipt for a stored sale without printing it
func (s *PrinterService) SaleReceipt(ctx context.Context, saleID string) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	receipt := &entity.Receipt{
		Store:         s.opts.Store,
		InvoiceNumber: sale.InvoiceNumber,
		ReceiptNumber: sale.Payment.ReceiptNumber,
		Date:          s.formatDate(sale.SaleDate, sale.CreatedAt),
		Cashier:       sale.Cashier,
		Customer:      sale.Customer,
		Total:         sale.TotalAmount,
		PaymentMethod: string(sale.Payment.Method),
		PaymentStatus: string(sale.Payment.Status),
		AmountPaid:    sale.Payment.AmountPaid,
		Remaining:     sale.Payment.RemainingAmount,
		Notes:         sale.Notes,
		Lines:         make([]entity.ReceiptLine, 0, len(sale.Items)),
	}
	for _, item := range sale.Items {
		name := item.Product
		if item.Temperature != "" {
			name += " (" + item.Temperature + ")"
		}
		receipt.Lines = append(receipt.Lines, entity.ReceiptLine{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.ItemTotal,
			Notes:     item.Notes,
		})
	}
	return receipt, nil
}

// PrintSaleReceipt builds and prints a sale receipt. The receipt is returned
// even when the printer fails so the caller can show it on screen.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, saleID string) (*entity.Receipt, error) {
	receipt, err := s.SaleReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(ctx, FormatReceipt(receipt, s.opts.Width)); err != nil {
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// KitchenTicket builds the ticket for a stored kitchen order
func (s *PrinterService) KitchenTicket(ctx context.Context, orderID string) (*entity.KitchenTicket, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	ticket := &entity.KitchenTicket{
		Store:         s.opts.Store,
		OrderNumber:   order.OrderNumber,
		OrderType:     order.OrderType,
		Customer:      order.CustomerName,
		Date:          s.formatDate(order.CreatedAt),
		Total:         order.TotalAmount,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaymentMethod: order.PaymentMethod,
		Notes:         order.Notes,
		Lines:         make([]entity.ReceiptLine, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		name := item.Name
		if item.Temperature != "" {
			name += " (" + item.Temperature + ")"
		}
		ticket.Lines = append(ticket.Lines, entity.ReceiptLine{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     money.LineTotal(item.Price, item.Quantity),
			Notes:     item.Notes,
		})
	}
	return ticket, nil
}

// PrintKitchenTicket builds and prints a kitchen ticket
func (s *PrinterService) PrintKitchenTicket(ctx context.Context, orderID string) (*entity.KitchenTicket, error) {
	ticket, err := s.KitchenTicket(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.printer.Print(ctx, FormatKitchenTicket(ticket, s.opts.Width)); err != nil {
		return ticket, fmt.Errorf("failed to print ticket: %w", err)
	}
	return ticket, nil
}

// formatDate uses the first non-zero time
func (s *PrinterService) formatDate(times ...time.Time) string {
	for _, t := range times {
		if !t.IsZero() {
			return t.In(s.opts.Location).Format(receiptDateLayout)
		}
	}
	return ""
}

// FormatReceipt renders a sale receipt as ESC/POS bytes
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)
	storeHeader(doc, r.Store)

	doc.Row("Invoice:", r.InvoiceNumber)
	if r.ReceiptNumber != "" {
		doc.Row("Receipt:", r.ReceiptNumber)
	}
	doc.Row("Date:", r.Date).
		Row("Cashier:", r.Cashier).
		Row("Customer:", r.Customer).
		Rule('-')

	printLines(doc, r.Lines)

	doc.Rule('-').
		Bold(true).
		Row("TOTAL", money.Rupiah(r.Total)).
		Bold(false).
		Row("Payment:", r.PaymentMethod).
		Row("Status:", r.PaymentStatus).
		Row("Paid:", money.Rupiah(r.AmountPaid))
	if r.Remaining > 0 {
		doc.Row("Remaining:", money.Rupiah(r.Remaining))
	}
	if r.Notes != "" {
		doc.Rule('-').Wrap(r.Notes)
	}

	doc.Rule('-').
		Align(printer.AlignCenter).
		Line("Terima kasih!").
		Align(printer.AlignLeft).
		Cut()

	return doc.Bytes()
}

// FormatKitchenTicket renders a kitchen order ticket as ESC/POS bytes
func FormatKitchenTicket(t *entity.KitchenTicket, width int) []byte {
	doc := printer.NewDocument(width)
	storeHeader(doc, t.Store)

	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeTall).
		Line("Order: "+t.OrderNumber).
		Size(printer.SizeNormal).
		Bold(false).
		Align(printer.AlignLeft).
		Row("Customer:", t.Customer).
		Row("Type:", strings.ToUpper(t.OrderType)).
		Row("Date:", t.Date).
		Rule('-')

	printLines(doc, t.Lines)

	doc.Rule('-').
		Bold(true).
		Row("TOTAL", money.Rupiah(t.Total)).
		Bold(false).
		Row("Status:", t.Status).
		Row("Payment:", fmt.Sprintf("%s (%s)", t.PaymentStatus, t.PaymentMethod))
	if t.Notes != "" {
		doc.Rule('-').Wrap(t.Notes)
	}

	doc.Cut()
	return doc.Bytes()
}

func storeHeader(doc *printer.Document, store entity.StoreHeader) {
	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.SizeDouble).
		Line(store.Name).
		Size(printer.SizeNormal).
		Bold(false)
	if store.Address != "" {
		doc.Wrap(store.Address)
	}
	if store.Phone != "" {
		doc.Line(store.Phone)
	}
	doc.Align(printer.AlignLeft).Rule('=')
}

func printLines(doc *printer.Document, lines []entity.ReceiptLine) {
	for _, line := range lines {
		doc.Row(fmt.Sprintf("%dx %s", line.Quantity, line.Name), money.Rupiah(line.Total))
		if line.Quantity > 1 {
			doc.Line("   @ " + money.Rupiah(line.UnitPrice))
		}
		if line.Notes != "" {
			doc.Wrap("   * " + line.Notes)
		}
	}
}
