package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fng-app/fng-sales-api/internal/application/service"
	"github.com/fng-app/fng-sales-api/internal/presentation/http/dto/response"
)

// MenuHandler serves the menu catalog
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing menu items, optionally by category
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListMenu(c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", items)
}
