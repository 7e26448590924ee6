package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fng-app/fng-sales-api/internal/application/service"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt and printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus(c.Request.Context()))
}

// SaleReceipt returns the receipt of a sale without printing it
func (h *PrinterHandler) SaleReceipt(c *gin.Context) {
	receipt, err := h.printerService.SaleReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt generated successfully", receipt)
}

// PrintSale prints the receipt of a sale
func (h *PrinterHandler) PrintSale(c *gin.Context) {
	receipt, err := h.printerService.PrintSaleReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		// Built but not printed: hand the receipt back for on-screen display
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{"receipt": receipt})
}

// PrintOrder prints the kitchen ticket of an order
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	ticket, err := h.printerService.PrintKitchenTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		if ticket != nil {
			response.OK(c, "Ticket generated but printing failed", gin.H{
				"ticket":  ticket,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen ticket printed successfully", gin.H{"ticket": ticket})
}
