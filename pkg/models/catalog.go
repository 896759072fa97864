package models

import (
	"github.com/app-sre/invprobe/pkg/inventory"
)

// Catalog is the static inventory served by the fixture server. It is not
// modified after construction.
type Catalog struct {
	warehouses []inventory.Warehouse
	items      map[string][]inventory.Item
}

func NewCatalog(warehouses []inventory.Warehouse, items []inventory.Item) *Catalog {
	c := &Catalog{
		warehouses: append([]inventory.Warehouse{}, warehouses...),
		items:      make(map[string][]inventory.Item, len(warehouses)),
	}
	for _, item := range items {
		c.items[item.WarehouseID] = append(c.items[item.WarehouseID], item)
	}
	return c
}

func (c *Catalog) Warehouses() []inventory.Warehouse {
	return append([]inventory.Warehouse{}, c.warehouses...)
}

// FindByState returns the first warehouse whose state matches exactly.
func (c *Catalog) FindByState(state string) (inventory.Warehouse, bool) {
	for _, w := range c.warehouses {
		if w.State == state {
			return w, true
		}
	}
	return inventory.Warehouse{}, false
}

func (c *Catalog) Inventory(w inventory.Warehouse) inventory.WarehouseInventory {
	items := append([]inventory.Item{}, c.items[w.ID]...)

	low := []inventory.Item{}
	for i := range items {
		if items[i].IsLow() {
			low = append(low, items[i])
		}
	}

	return inventory.WarehouseInventory{
		Warehouse:     w,
		Items:         items,
		TotalItems:    len(items),
		LowStockItems: low,
	}
}

func (c *Catalog) AllInventory() []inventory.WarehouseInventory {
	all := make([]inventory.WarehouseInventory, 0, len(c.warehouses))
	for _, w := range c.warehouses {
		all = append(all, c.Inventory(w))
	}
	return all
}

// LowStock lists only the warehouses holding at least one low stock item.
func (c *Catalog) LowStock() []inventory.LowStockWarehouse {
	low := []inventory.LowStockWarehouse{}
	for _, w := range c.warehouses {
		var items []inventory.Item
		for _, item := range c.items[w.ID] {
			if item.IsLow() {
				item.WarehouseName = w.Name
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			low = append(low, inventory.LowStockWarehouse{Warehouse: w.Name, LowStockItems: items})
		}
	}
	return low
}
