package entity

// Menu categories
const (
	MenuCategoryDrink = "minuman"
	MenuCategoryFood  = "makanan"
)

// MenuItem is an entry of the outlet's menu catalog
type MenuItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}
