package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fng-app/fng-sales-api/internal/application/service"
	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/dto/response"
	"github.com/fng-app/fng-sales-api/pkg/pagination"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales with optional filters and pagination
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context(), saleFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if params, ok := paginationParams(c); ok {
		response.SuccessWithPagination(c, 200, "Sales retrieved successfully", pagination.Paginate(sales, params))
		return
	}
	response.OK(c, "Sales retrieved successfully", sales)
}

// Summary handles aggregating the filtered sales
func (h *SaleHandler) Summary(c *gin.Context) {
	summary, err := h.saleService.GetSummary(c.Request.Context(), saleFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var body entity.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		Body:    body,
		Cashier: GetUserName(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("Sale saved successfully (%d items)", sale.ItemCount), sale)
}

// Get handles getting a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.saleService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Update handles partial updates of a sale
func (h *SaleHandler) Update(c *gin.Context) {
	var patch entity.Record
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles deleting a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

func saleFilter(c *gin.Context) *repository.SaleFilter {
	return &repository.SaleFilter{
		Status:   c.Query("status"),
		Method:   c.Query("method"),
		Customer: c.Query("customer"),
		Date:     c.Query("date"),
		Search:   c.Query("search"),
	}
}
