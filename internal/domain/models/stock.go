package models

import "time"

// StockRecord is one lot-level stock line returned by the /stock endpoints.
type StockRecord struct {
	WarehouseID    int    `json:"warehouse_id"`
	WarehouseName  string `json:"warehouse_name"`
	ProductID      int    `json:"product_id"`
	ProductName    string `json:"product_name"`
	SKU            string `json:"sku"`
	Lot            string `json:"lot"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	Quantity       int    `json:"quantity"`
}

// StockSummary aggregates stock for a product within a warehouse.
type StockSummary struct {
	ProductID     int    `json:"product_id"`
	WarehouseID   int    `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// StockHistory is one movement record as returned by the history endpoints.
// This is the reducer's input shape.
type StockHistory struct {
	MoveID      int       `json:"move_id"`
	CreatedAt   time.Time `json:"created_at"`
	MoveType    string    `json:"move_type"`
	WarehouseID int       `json:"warehouse_id"`
	ProductID   int       `json:"product_id"`
	SKU         string    `json:"sku"`
	Lot         string    `json:"lot"`
	Quantity    int       `json:"quantity"`
	UserName    string    `json:"user_name"`
}

// StockSemaphore is the expiration traffic light used on the dashboard.
type StockSemaphore struct {
	NoExpiration int `json:"no_expiration"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// StockByWarehouse is the total stock grouped by warehouse.
type StockByWarehouse struct {
	WarehouseID   int    `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// StockByProduct is the per-product stock within a warehouse or category.
type StockByProduct struct {
	ProductID     int    `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// StockByCategory is the total stock grouped by product category.
type StockByCategory struct {
	CategoryID    int    `json:"category_id"`
	CategoryName  string `json:"category_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// AvailableLot is one pickable lot for a product/warehouse pair.
type AvailableLot struct {
	Lot            string `json:"lot"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	Quantity       int    `json:"quantity"`
}

// ExpirationFilters narrows the /stock/product/expiration listing. Preset and
// the date range are mutually exclusive; preset wins when both are set.
type ExpirationFilters struct {
	Preset   string
	FromDate string
	ToDate   string
}
