package service

import (
	"strings"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
)

var menuCatalog = []entity.MenuItem{
	{Name: "Tora Bika Cappuccino", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "Milo", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "Good Day Cappuccino", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "ABC Iced Klepon", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "Max Tea Tarik", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "Good Day Freeze", Price: 6000, Category: entity.MenuCategoryDrink},
	{Name: "Energen Jahe", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Kopi Susu ABC", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Luwak White Koffie", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Tora Bika Susu", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Good Day Latte", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Kapal Api Special Mix", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Tora Bika Moka", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Energen Coklat", Price: 5000, Category: entity.MenuCategoryDrink},
	{Name: "Mie Instant (All varian)", Price: 7000, Category: entity.MenuCategoryFood},
	{Name: "Dumpling Keju (3 pcs)", Price: 6000, Category: entity.MenuCategoryFood},
	{Name: "Dumpling Ayam (3 pcs)", Price: 6000, Category: entity.MenuCategoryFood},
	{Name: "Sosis Besar Jumbo (1 pcs)", Price: 5000, Category: entity.MenuCategoryFood},
	{Name: "Nugget Double (2 pcs)", Price: 5000, Category: entity.MenuCategoryFood},
	{Name: "Cikuwa + Jamur (3 pcs)", Price: 5000, Category: entity.MenuCategoryFood},
	{Name: "Odeng Double (2 pcs)", Price: 3000, Category: entity.MenuCategoryFood},
	{Name: "Tofu Special (3 pcs)", Price: 3000, Category: entity.MenuCategoryFood},
	{Name: "Bakso Bakar (3 pcs)", Price: 3000, Category: entity.MenuCategoryFood},
	{Name: "Tempura (3 pcs)", Price: 3000, Category: entity.MenuCategoryFood},
	{Name: "Sosis Merah (1 pcs)", Price: 3000, Category: entity.MenuCategoryFood},
}

// MenuService serves the outlet's fixed menu
type MenuService struct {
	items []entity.MenuItem
}

// NewMenuService creates a menu service over the built-in catalog
func NewMenuService() *MenuService {
	return &MenuService{items: menuCatalog}
}

// ListMenu returns the catalog, optionally narrowed to one category
func (s *MenuService) ListMenu(category string) ([]entity.MenuItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		out := make([]entity.MenuItem, len(s.items))
		copy(out, s.items)
		return out, nil
	}
	if category != entity.MenuCategoryDrink && category != entity.MenuCategoryFood {
		return nil, apperror.NewBadRequestError("Unknown menu category")
	}

	out := make([]entity.MenuItem, 0)
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}
