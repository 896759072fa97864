package models

import (
	"github.com/app-sre/invprobe/pkg/inventory"
)

func price(p float64) *float64 {
	return &p
}

// DemoCatalog returns three warehouses with a handful of beverage items,
// one of them below its reorder threshold in each warehouse.
func DemoCatalog() *Catalog {
	warehouses := []inventory.Warehouse{
		{ID: "warehouse-ca-001", Name: "West Coast Distribution", Location: "Los Angeles, CA", State: "California", Active: true},
		{ID: "warehouse-tx-001", Name: "Central Distribution Hub", Location: "Austin, TX", State: "Texas", Active: true},
		{ID: "warehouse-nv-001", Name: "Desert Springs Depot", Location: "Las Vegas, NV", State: "Nevada", Active: true},
	}

	items := []inventory.Item{
		{ID: "item-ca-001", WarehouseID: "warehouse-ca-001", Name: "Premium Cola Classic", SKU: "COLA-PREM-001", Category: "Soft Drinks", Quantity: 150, MinStockLevel: 50, Price: price(2.99)},
		{ID: "item-ca-002", WarehouseID: "warehouse-ca-001", Name: "Craft IPA Selection", SKU: "BEER-IPA-001", Category: "Alcoholic Beverages", Quantity: 45, MinStockLevel: 25, Price: price(8.99)},
		{ID: "item-ca-003", WarehouseID: "warehouse-ca-001", Name: "Sparkling Water Lemon", SKU: "WATER-SPARK-001", Category: "Water", Quantity: 30, MinStockLevel: 50, Price: price(1.99)},
		{ID: "item-ca-004", WarehouseID: "warehouse-ca-001", Name: "Organic Green Tea", SKU: "TEA-GREEN-001", Category: "Tea", Quantity: 80, MinStockLevel: 40, Price: price(4.99)},

		{ID: "item-tx-001", WarehouseID: "warehouse-tx-001", Name: "Sweet Tea Southern Style", SKU: "TEA-SWEET-001", Category: "Tea", Quantity: 120, MinStockLevel: 60, Price: price(2.49)},
		{ID: "item-tx-002", WarehouseID: "warehouse-tx-001", Name: "Sports Hydration Blue", SKU: "SPORTS-HYD-001", Category: "Sports Drinks", Quantity: 180, MinStockLevel: 80, Price: price(2.79)},
		{ID: "item-tx-003", WarehouseID: "warehouse-tx-001", Name: "BBQ Cola Limited", SKU: "COLA-BBQ-001", Category: "Soft Drinks", Quantity: 25, MinStockLevel: 30, Price: price(4.49)},

		{ID: "item-nv-001", WarehouseID: "warehouse-nv-001", Name: "Desert Spring Water", SKU: "WATER-SPRING-001", Category: "Water", Quantity: 300, MinStockLevel: 100, Price: price(1.49)},
		{ID: "item-nv-002", WarehouseID: "warehouse-nv-001", Name: "Premium Mixer Tonic", SKU: "MIXER-TONIC-001", Category: "Mixers", Quantity: 75, MinStockLevel: 35, Price: price(5.99)},
		{ID: "item-nv-003", WarehouseID: "warehouse-nv-001", Name: "Casino Energy Rush", SKU: "ENERGY-CASINO-001", Category: "Energy Drinks", Quantity: 15, MinStockLevel: 25, Price: price(4.99)},
	}

	return NewCatalog(warehouses, items)
}
