package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

func product(sku, name, brand, price string) domain.Product {
	return domain.Product{
		SKU:      sku,
		Name:     name,
		Brand:    brand,
		Price:    decimal.RequireFromString(price),
		Currency: "AED",
	}
}

// DefaultProducts is the retail seed catalog.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		// Dairy
		product("1001", "Fresh Milk 1L", "DairyCo", "6.50"),
		product("1004", "Low Fat Milk 1L", "DairyCo", "6.25"),
		product("1005", "Yogurt Plain 1kg", "DairyCo", "9.90"),
		product("1006", "Cheddar Cheese 200g", "CheeseLand", "10.75"),

		// Bakery
		product("1002", "Brown Bread 600g", "BakeHouse", "5.00"),
		product("1007", "White Bread 600g", "BakeHouse", "4.50"),
		product("1008", "Croissant 4pcs", "BakeHouse", "7.50"),

		// Eggs
		product("1003", "Eggs 30pcs", "FarmFresh", "18.90"),
		product("1009", "Eggs 12pcs", "FarmFresh", "8.25"),

		// Beverages
		product("1010", "Pepsi Can 330ml", "Pepsi", "2.50"),
		product("1011", "Water 1.5L", "AquaPure", "1.50"),
		product("1012", "Orange Juice 1L", "Juicy", "7.90"),

		// Pantry
		product("1013", "Basmati Rice 5kg", "Royal", "39.90"),
		product("1014", "Pasta Spaghetti 500g", "Italia", "6.75"),
		product("1017", "Sunflower Oil 1.8L", "Golden", "18.50"),
		product("1018", "Sugar 2kg", "Sweet", "7.25"),
		product("1019", "Tea Bags 100pcs", "TeaTime", "12.90"),

		// Snacks
		product("1015", "Potato Chips 150g", "Crunchy", "5.25"),
		product("1016", "Milk Chocolate Bar 90g", "Choco", "4.00"),
		product("1020", "Mixed Nuts 200g", "Nutty", "14.50"),

		// Household
		product("1021", "Dishwashing Liquid 750ml", "CleanPro", "9.75"),
		product("1022", "Laundry Detergent 2.5kg", "FreshWash", "29.90"),
		product("1023", "Tissues 5 Boxes", "Softy", "12.50"),
	}
}
